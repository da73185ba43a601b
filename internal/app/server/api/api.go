//POST /api/submit       # Принять анкету (публичный)
//GET  /api/submissions  # Список анкет с пагинацией (публичный)
//GET  /api/download     # Выгрузка CSV/XLSX (download key)
//GET  /api/health       # Проверка состояния (публичный)

package api

import (
	downloadAPI "wingmann/internal/app/server/api/http/download"
	healthAPI "wingmann/internal/app/server/api/http/health"
	"wingmann/internal/app/server/api/http/middleware/downloadkey"
	"wingmann/internal/app/server/api/http/middleware/logger"
	submissionAPI "wingmann/internal/app/server/api/http/submission"
	"wingmann/internal/config"
	"wingmann/internal/domain/submission"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health     *healthAPI.Handler
	Submission *submissionAPI.Handler
	Download   *downloadAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(svc submission.Servicer, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Wingmann API", "1.0.0")
	API := humachi.New(mux, humaConfig)

	h := handlers(svc, cfg, log)
	h.Health.SetupRoutes(API)
	h.Submission.SetupRoutes(API)
	h.Download.SetupRoutes(API)

	return mux
}

func handlers(svc submission.Servicer, cfg *config.Config, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	gateMW := downloadkey.New(cfg.Download.Key, log)

	healthHandler := healthAPI.NewHandler(svc, cfg.Storage.Backend, log, huma.Middlewares{loggerMW.Middleware()})
	submissionHandler := submissionAPI.NewHandler(svc, log, huma.Middlewares{loggerMW.Middleware()})
	downloadHandler := downloadAPI.NewHandler(svc, log, huma.Middlewares{gateMW.Middleware(), loggerMW.Middleware()})

	return &Handlers{
		Health:     healthHandler,
		Submission: submissionHandler,
		Download:   downloadHandler,
	}
}
