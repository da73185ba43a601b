package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wingmann/internal/domain/submission"
)

func sampleRecord() submission.Submission {
	return submission.Submission{
		ID:             1,
		Name:           "Ana",
		Age:            "25",
		Gender:         "F",
		City:           "Pune",
		Contact:        "ana@x.com",
		Answer1:        "A",
		Answer2:        "B",
		Answer3:        "C",
		Answer4:        "D",
		SubmissionDate: "2024-05-01T10:00:00Z",
		CreatedAt:      "2024-05-01T10:00:00Z",
	}
}

func TestBuildCSV_HeaderAndBOM(t *testing.T) {
	data := string(BuildCSV(nil))

	require.True(t, strings.HasPrefix(data, utf8BOM))
	assert.Equal(t,
		"ID,Name,Age,Gender,City,Contact (Email/Mobile),"+
			"Perfect First Date,Random Thing That Makes You Laugh,"+
			"Describe Your Vibe,Biggest Ick,Submission Date,Created At",
		strings.TrimPrefix(data, utf8BOM))
}

func TestBuildCSV_Row(t *testing.T) {
	data := string(BuildCSV([]submission.Submission{sampleRecord()}))

	lines := strings.Split(strings.TrimPrefix(data, utf8BOM), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "1,Ana,25,F,Pune,ana@x.com,A,B,C,D,"))
	assert.False(t, strings.HasSuffix(data, "\n"))
}

func TestBuildCSV_SortsDescendingWithoutMutating(t *testing.T) {
	older := sampleRecord()
	older.ID = 1
	older.Name = "older"
	older.CreatedAt = "2024-01-01T00:00:00Z"

	newer := sampleRecord()
	newer.ID = 2
	newer.Name = "newer"
	newer.CreatedAt = "2024-06-01T00:00:00Z"

	records := []submission.Submission{older, newer}
	data := string(BuildCSV(records))

	lines := strings.Split(strings.TrimPrefix(data, utf8BOM), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "2,newer,"))
	assert.True(t, strings.HasPrefix(lines[2], "1,older,"))

	// The input slice keeps its original order.
	assert.Equal(t, "older", records[0].Name)
}

func TestBuildCSV_Deterministic(t *testing.T) {
	records := []submission.Submission{sampleRecord(), sampleRecord()}

	assert.Equal(t, BuildCSV(records), BuildCSV(records))
}

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain", value: "hello", want: "hello"},
		{name: "empty", value: "", want: ""},
		{name: "comma", value: "a,b", want: `"a,b"`},
		{name: "newline", value: "a\nb", want: "\"a\nb\""},
		{name: "quote", value: `a"b`, want: `"a""b"`},
		{name: "comma and quote", value: `a,b"c`, want: `"a,b""c"`},
		{name: "leading space stays bare", value: " a", want: " a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeCSV(tt.value))
		})
	}
}

func TestBuildCSV_EscapedField(t *testing.T) {
	rec := sampleRecord()
	rec.Answer1 = `a,b"c`

	data := string(BuildCSV([]submission.Submission{rec}))

	assert.Contains(t, data, `,"a,b""c",`)
}
