// Package export derives the delimited-text and spreadsheet representations
// of the submission list. Both builders are pure functions of the record
// list: same input, same bytes. They always rebuild in full so the derived
// files can never drift from the canonical data.
package export

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/slog"

	"wingmann/internal/domain/submission"
	"wingmann/internal/infrastructure/blob"
)

const (
	CSVBlobName  = "wingmann_submissions.csv"
	XLSXBlobName = "wingmann_submissions.xlsx"

	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// columnLabels are the 12 fixed export headers. Order matters: every row is
// emitted in exactly this order in both formats.
var columnLabels = []string{
	"ID",
	"Name",
	"Age",
	"Gender",
	"City",
	"Contact (Email/Mobile)",
	"Perfect First Date",
	"Random Thing That Makes You Laugh",
	"Describe Your Vibe",
	"Biggest Ick",
	"Submission Date",
	"Created At",
}

func rowValues(s submission.Submission) []string {
	return []string{
		strconv.Itoa(s.ID),
		s.Name,
		s.Age,
		s.Gender,
		s.City,
		s.Contact,
		s.Answer1,
		s.Answer2,
		s.Answer3,
		s.Answer4,
		s.SubmissionDate,
		s.CreatedAt,
	}
}

// sorted returns a copy ordered most recent first, leaving the caller's
// slice untouched so the builders stay side-effect free.
func sorted(records []submission.Submission) []submission.Submission {
	out := make([]submission.Submission, len(records))
	copy(out, records)
	submission.SortByCreatedAtDesc(out)
	return out
}

// Generator persists both derived representations under their fixed names.
type Generator struct {
	blobs blob.Store
	log   *slog.Logger
}

func NewGenerator(blobs blob.Store, log *slog.Logger) *Generator {
	return &Generator{
		blobs: blobs,
		log:   log.With("component", "export_generator"),
	}
}

// Build returns the requested representation of the record list.
func (g *Generator) Build(records []submission.Submission, format string) ([]byte, error) {
	switch format {
	case submission.FormatXLSX:
		return BuildXLSX(records)
	case submission.FormatCSV:
		return BuildCSV(records), nil
	default:
		return nil, fmt.Errorf("%w: %q", submission.ErrUnknownFormat, format)
	}
}

// Regenerate rebuilds and persists both derived files from the given list.
// Each file is attempted even if the other fails; the joined error reports
// everything that went wrong.
func (g *Generator) Regenerate(ctx context.Context, records []submission.Submission) error {
	var errs []error

	if err := g.blobs.Write(ctx, CSVBlobName, BuildCSV(records), csvContentType); err != nil {
		errs = append(errs, fmt.Errorf("update csv: %w", err))
	} else {
		g.log.Debug("csv file updated", "records", len(records))
	}

	data, err := BuildXLSX(records)
	if err != nil {
		errs = append(errs, fmt.Errorf("build xlsx: %w", err))
	} else if err := g.blobs.Write(ctx, XLSXBlobName, data, xlsxContentType); err != nil {
		errs = append(errs, fmt.Errorf("update xlsx: %w", err))
	} else {
		g.log.Debug("excel file updated", "records", len(records))
	}

	return errors.Join(errs...)
}
