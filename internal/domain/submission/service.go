package submission

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	DefaultPage  = 1
	DefaultLimit = 100
)

// Exporter derives the delimited-text and spreadsheet representations of the
// record list. Build is pure; Regenerate persists both derived blobs.
type Exporter interface {
	Build(records []Submission, format string) ([]byte, error)
	Regenerate(ctx context.Context, records []Submission) error
}

type Servicer interface {
	Submit(ctx context.Context, req CreateRequest) (Submission, error)
	List(ctx context.Context, page, limit int) (ListResponse, error)
	Export(ctx context.Context, format string) ([]byte, error)
	Count(ctx context.Context) int
}

type Service struct {
	store    *Store
	exporter Exporter
	log      *slog.Logger
}

func NewService(store *Store, exporter Exporter, log *slog.Logger) *Service {
	return &Service{
		store:    store,
		exporter: exporter,
		log:      log.With("component", "submission_service"),
	}
}

// Submit validates the payload, appends it to the canonical list, and
// regenerates both derived exports. A failed export regeneration does not
// fail the submission: the canonical write already succeeded, and the files
// catch up on the next write.
func (s *Service) Submit(ctx context.Context, req CreateRequest) (Submission, error) {
	if err := validate(req); err != nil {
		return Submission{}, err
	}

	rec := Submission{
		Name:           req.PersonalInfo.Name,
		Age:            req.PersonalInfo.Age,
		Gender:         req.PersonalInfo.Gender,
		City:           req.PersonalInfo.City,
		Contact:        req.PersonalInfo.Contact,
		Answer1:        req.Answers.Question1,
		Answer2:        req.Answers.Question2,
		Answer3:        req.Answers.Question3,
		Answer4:        req.Answers.Question4,
		SubmissionDate: req.SubmissionDate,
	}

	stored, all, err := s.store.Append(ctx, rec)
	if err != nil {
		return Submission{}, err
	}

	if err := s.exporter.Regenerate(ctx, all); err != nil {
		s.log.Error("failed to regenerate export files", "error", err)
	}

	s.log.Info("new submission received", "id", stored.ID, "name", stored.Name)

	return stored, nil
}

// List returns one page of submissions, most recent first.
func (s *Service) List(ctx context.Context, page, limit int) (ListResponse, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	records := s.store.ReadAll(ctx)
	total := len(records)
	SortByCreatedAtDesc(records)

	offset := (page - 1) * limit
	end := offset + limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	return ListResponse{
		Records: records[offset:end],
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

// Export builds the requested derived representation from the current list.
func (s *Service) Export(ctx context.Context, format string) ([]byte, error) {
	records := s.store.ReadAll(ctx)
	if len(records) == 0 {
		return nil, ErrNoSubmissions
	}

	data, err := s.exporter.Build(records, format)
	if err != nil {
		s.log.Error("failed to build export", "format", format, "error", err)
		return nil, fmt.Errorf("build %s export: %w", format, err)
	}
	return data, nil
}

func (s *Service) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}

func validate(req CreateRequest) error {
	fields := []string{
		req.PersonalInfo.Name,
		req.PersonalInfo.Age,
		req.PersonalInfo.Gender,
		req.PersonalInfo.City,
		req.PersonalInfo.Contact,
		req.Answers.Question1,
		req.Answers.Question2,
		req.Answers.Question3,
		req.Answers.Question4,
	}
	for _, f := range fields {
		if f == "" {
			return ErrMissingFields
		}
	}
	return nil
}
