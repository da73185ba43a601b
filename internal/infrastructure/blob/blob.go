package blob

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"wingmann/internal/config"
)

// Store is byte-oriented persistence for named blobs. Absence of a blob is
// not an error: Read reports it through the ok flag.
type Store interface {
	Read(ctx context.Context, name string) (data []byte, ok bool, err error)
	Write(ctx context.Context, name string, data []byte, contentType string) error
}

// New selects the backend from configuration. The rest of the application
// only ever sees the Store interface.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendLocal:
		return NewLocal(cfg.Storage.DataDir, log), nil
	case config.BackendGCS:
		return NewGCS(ctx, cfg.Storage.Bucket, log)
	case config.BackendMinIO:
		return NewMinIO(cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
