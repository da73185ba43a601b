package download

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"wingmann/internal/domain/submission"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Submit(ctx context.Context, req submission.CreateRequest) (submission.Submission, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(submission.Submission), args.Error(1)
}

func (m *MockService) List(ctx context.Context, page, limit int) (submission.ListResponse, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).(submission.ListResponse), args.Error(1)
}

func (m *MockService) Export(ctx context.Context, format string) ([]byte, error) {
	args := m.Called(ctx, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockService) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func TestHandler_Download(t *testing.T) {
	t.Run("DefaultsToCSV", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Export", mock.Anything, submission.FormatCSV).Return([]byte("csv-bytes"), nil)
		h := NewHandler(svc, slog.Default(), nil)

		output, err := h.download(context.Background(), &downloadInput{})

		require.NoError(t, err)
		assert.Equal(t, []byte("csv-bytes"), output.Body)
		assert.Equal(t, csvContentType, output.ContentType)
		assert.Equal(t, "attachment; filename="+csvFilename, output.ContentDisposition)
		svc.AssertExpectations(t)
	})

	t.Run("XLSX", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Export", mock.Anything, submission.FormatXLSX).Return([]byte("xlsx-bytes"), nil)
		h := NewHandler(svc, slog.Default(), nil)

		output, err := h.download(context.Background(), &downloadInput{Format: "xlsx"})

		require.NoError(t, err)
		assert.Equal(t, xlsxContentType, output.ContentType)
		assert.Equal(t, "attachment; filename="+xlsxFilename, output.ContentDisposition)
	})

	t.Run("UnknownFormatServesCSV", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Export", mock.Anything, submission.FormatCSV).Return([]byte("csv-bytes"), nil)
		h := NewHandler(svc, slog.Default(), nil)

		output, err := h.download(context.Background(), &downloadInput{Format: "pdf"})

		require.NoError(t, err)
		assert.Equal(t, csvContentType, output.ContentType)
	})

	t.Run("NoData_404", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Export", mock.Anything, submission.FormatCSV).
			Return(nil, submission.ErrNoSubmissions)
		h := NewHandler(svc, slog.Default(), nil)

		_, err := h.download(context.Background(), &downloadInput{})

		require.Error(t, err)
		var statusErr huma.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 404, statusErr.GetStatus())
	})
}
