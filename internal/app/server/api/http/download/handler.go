package download

import (
	"context"
	"errors"

	"wingmann/internal/domain/submission"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	csvFilename  = "wingmann_all_submissions.csv"
	xlsxFilename = "wingmann_all_submissions.xlsx"

	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	service    submission.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service submission.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.downloadOp(), h.download)
}

func (h *Handler) download(ctx context.Context, input *downloadInput) (*downloadOutput, error) {
	// Any format other than xlsx serves csv.
	format := submission.FormatCSV
	if input.Format == submission.FormatXLSX {
		format = submission.FormatXLSX
	}

	data, err := h.service.Export(ctx, format)
	if err != nil {
		if errors.Is(err, submission.ErrNoSubmissions) {
			return nil, huma.Error404NotFound("No submissions found")
		}
		h.log.Error("download failed", "format", format, "error", err)
		return nil, huma.Error500InternalServerError("Error downloading file")
	}

	out := &downloadOutput{Body: data}
	if format == submission.FormatXLSX {
		out.ContentType = xlsxContentType
		out.ContentDisposition = "attachment; filename=" + xlsxFilename
	} else {
		out.ContentType = csvContentType
		out.ContentDisposition = "attachment; filename=" + csvFilename
	}

	return out, nil
}
