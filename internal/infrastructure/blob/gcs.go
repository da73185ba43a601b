package blob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"golang.org/x/exp/slog"
)

// GCS stores blobs as objects in a Cloud Storage bucket. Credentials come
// from Application Default Credentials or GOOGLE_APPLICATION_CREDENTIALS.
type GCS struct {
	bucket *storage.BucketHandle
	log    *slog.Logger
}

func NewGCS(ctx context.Context, bucket string, log *slog.Logger) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	log.Info("cloud storage initialized", "bucket", bucket)

	return &GCS{
		bucket: client.Bucket(bucket),
		log:    log.With("component", "blob_gcs"),
	}, nil
}

func (g *GCS) Read(ctx context.Context, name string) ([]byte, bool, error) {
	r, err := g.bucket.Object(name).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", name, err)
	}
	return data, true, nil
}

func (g *GCS) Write(ctx context.Context, name string, data []byte, contentType string) error {
	w := g.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}

	g.log.Debug("blob written", "object", name, "size", len(data))
	return nil
}
