package export

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"wingmann/internal/domain/submission"
)

type memBlob struct {
	data     map[string][]byte
	types    map[string]string
	failName string
}

func newMemBlob() *memBlob {
	return &memBlob{data: map[string][]byte{}, types: map[string]string{}}
}

func (m *memBlob) Read(_ context.Context, name string) ([]byte, bool, error) {
	data, ok := m.data[name]
	return data, ok, nil
}

func (m *memBlob) Write(_ context.Context, name string, data []byte, contentType string) error {
	if name == m.failName {
		return errors.New("write refused")
	}
	m.data[name] = data
	m.types[name] = contentType
	return nil
}

func TestGenerator_RegenerateWritesBothFiles(t *testing.T) {
	blobs := newMemBlob()
	gen := NewGenerator(blobs, slog.Default())

	err := gen.Regenerate(context.Background(), []submission.Submission{sampleRecord()})

	require.NoError(t, err)
	assert.Contains(t, blobs.data, CSVBlobName)
	assert.Contains(t, blobs.data, XLSXBlobName)
	assert.Equal(t, "text/csv; charset=utf-8", blobs.types[CSVBlobName])
	assert.Equal(t, xlsxContentType, blobs.types[XLSXBlobName])
}

func TestGenerator_RegenerateContinuesPastCSVFailure(t *testing.T) {
	blobs := newMemBlob()
	blobs.failName = CSVBlobName
	gen := NewGenerator(blobs, slog.Default())

	err := gen.Regenerate(context.Background(), []submission.Submission{sampleRecord()})

	require.Error(t, err)
	assert.NotContains(t, blobs.data, CSVBlobName)
	assert.Contains(t, blobs.data, XLSXBlobName)
}

func TestGenerator_Build(t *testing.T) {
	gen := NewGenerator(newMemBlob(), slog.Default())
	records := []submission.Submission{sampleRecord()}

	csvData, err := gen.Build(records, submission.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, BuildCSV(records), csvData)

	xlsxData, err := gen.Build(records, submission.FormatXLSX)
	require.NoError(t, err)
	assert.NotEmpty(t, xlsxData)

	_, err = gen.Build(records, "pdf")
	assert.ErrorIs(t, err, submission.ErrUnknownFormat)
}
