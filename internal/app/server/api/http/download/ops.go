package download

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) downloadOp() huma.Operation {
	return huma.Operation{
		OperationID: "submissions-download",
		Method:      http.MethodGet,
		Path:        "/api/download",
		Summary:     "Выгрузить все анкеты файлом",
		Description: "Streams the full submission list as an attachment. Requires the download key via ?key= or the X-Download-Key header.",
		Tags:        []string{"download"},
		Middlewares: h.middleware,
	}
}
