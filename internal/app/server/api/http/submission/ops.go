package submission

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) submitOp() huma.Operation {
	return huma.Operation{
		OperationID: "submissions-submit",
		Method:      http.MethodPost,
		Path:        "/api/submit",
		Summary:     "Принять заполненную анкету",
		Description: "Validates the payload, appends it to the canonical list and rebuilds the CSV/XLSX export files.",
		Tags:        []string{"submissions"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "submissions-list",
		Method:      http.MethodGet,
		Path:        "/api/submissions",
		Summary:     "Список анкет с пагинацией",
		Tags:        []string{"submissions"},
		Middlewares: h.middleware,
	}
}
