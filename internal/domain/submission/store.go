package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"wingmann/internal/infrastructure/blob"
)

// DataBlobName is the canonical JSON array of submissions. The full list is
// rewritten on every append; this is O(n) per write and is the accepted
// ceiling for the volumes this service targets.
const DataBlobName = "wingmann_submissions.json"

// Store owns the canonical submission list.
type Store struct {
	blobs blob.Store
	log   *slog.Logger

	// Serializes read-compute-write so sequential ids stay contiguous
	// within this process. A second process writing the same blob still
	// races (last write wins).
	mu sync.Mutex
}

func NewStore(blobs blob.Store, log *slog.Logger) *Store {
	return &Store{
		blobs: blobs,
		log:   log.With("component", "submission_store"),
	}
}

// Init writes an empty list if the canonical blob does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	_, ok, err := s.blobs.Read(ctx, DataBlobName)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if ok {
		return nil
	}
	return s.write(ctx, []Submission{})
}

// ReadAll returns every stored submission. An absent blob is an empty list.
// Corrupt content is also treated as an empty list rather than surfaced --
// availability over strict error reporting, inherited behavior that is
// flagged here rather than silently changed.
func (s *Store) ReadAll(ctx context.Context) []Submission {
	data, ok, err := s.blobs.Read(ctx, DataBlobName)
	if err != nil {
		s.log.Error("failed to read submissions", "error", err)
		return []Submission{}
	}
	if !ok {
		return []Submission{}
	}

	var records []Submission
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Error("corrupt submissions blob, treating as empty", "error", err)
		return []Submission{}
	}
	return records
}

// Append assigns the next sequential id and server timestamps, persists the
// whole list, and returns the stored submission plus the post-append list.
// On write failure nothing is durable and ErrStorageWrite is returned.
func (s *Store) Append(ctx context.Context, rec Submission) (Submission, []Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.ReadAll(ctx)

	now := time.Now().UTC().Format(time.RFC3339)
	rec.ID = len(records) + 1
	rec.CreatedAt = now
	if rec.SubmissionDate == "" {
		rec.SubmissionDate = now
	}

	records = append(records, rec)
	if err := s.write(ctx, records); err != nil {
		s.log.Error("failed to write submissions", "error", err)
		return Submission{}, nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	return rec, records, nil
}

// Count reports the current number of submissions.
func (s *Store) Count(ctx context.Context) int {
	return len(s.ReadAll(ctx))
}

func (s *Store) write(ctx context.Context, records []Submission) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal submissions: %w", err)
	}
	return s.blobs.Write(ctx, DataBlobName, data, "application/json")
}
