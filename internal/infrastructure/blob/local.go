package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"
)

// Local stores blobs as plain files under a data directory.
type Local struct {
	dir string
	log *slog.Logger
}

func NewLocal(dir string, log *slog.Logger) *Local {
	return &Local{
		dir: dir,
		log: log.With("component", "blob_local"),
	}
}

func (l *Local) Read(_ context.Context, name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", name, err)
	}
	return data, true, nil
}

func (l *Local) Write(_ context.Context, name string, data []byte, _ string) error {
	path := filepath.Join(l.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	l.log.Debug("blob written", "path", path, "size", len(data))
	return nil
}
