package downloadkey

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

var (
	ErrMissingKey = errors.New("download key required")
	ErrInvalidKey = errors.New("invalid download key")
)

// Gate protects the bulk-export path with a shared secret. A missing key and
// a wrong key are distinct outcomes: 401 versus 403.
type Gate struct {
	key string
	log *slog.Logger
}

func New(key string, log *slog.Logger) *Gate {
	return &Gate{
		key: key,
		log: log.With(slog.String("component", "download_gate")),
	}
}

// Check compares the supplied key against the configured secret. Exact
// string comparison, no hashing, no rate limiting.
func (g *Gate) Check(provided string) error {
	if provided == "" {
		return ErrMissingKey
	}
	if provided != g.key {
		return ErrInvalidKey
	}
	return nil
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (g *Gate) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		u := ctx.URL()
		provided := u.Query().Get("key")
		if provided == "" {
			provided = ctx.Header("X-Download-Key")
		}

		switch err := g.Check(provided); {
		case errors.Is(err, ErrMissingKey):
			g.log.Info("download denied: no key provided")
			writeError(ctx, http.StatusUnauthorized, "Unauthorized",
				"Download key required. Use ?key=your-secret-key or set X-Download-Key header.")
			return
		case errors.Is(err, ErrInvalidKey):
			g.log.Info("download denied: invalid key")
			writeError(ctx, http.StatusForbidden, "Forbidden", "Invalid download key.")
			return
		}

		next(ctx)
	}
}

func writeError(ctx huma.Context, status int, title, message string) {
	ctx.SetStatus(status)
	ctx.SetHeader("Content-Type", "application/json")

	w := ctx.BodyWriter()
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   title,
		"message": message,
	})
}
