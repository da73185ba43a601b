package health

import (
	"context"
	"time"

	"wingmann/internal/domain/submission"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    submission.Servicer
	storage    string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service submission.Servicer, storage string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		storage:    storage,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status:           "ok",
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
			TotalSubmissions: h.service.Count(ctx),
			Storage:          h.storage,
		},
	}, nil
}
