package export

import (
	"strings"

	"wingmann/internal/domain/submission"
)

// utf8BOM makes spreadsheet tools pick the right encoding when the CSV is
// opened directly.
const utf8BOM = "\ufeff"

// BuildCSV renders the record list as comma-separated text: a BOM, the 12
// fixed headers, then one row per record, most recent first. Rows are joined
// with a bare \n and there is no trailing newline.
//
// encoding/csv is deliberately not used here: its writer quotes fields with
// leading spaces and terminates rows with \r\n, which would change the bytes
// of an already-published file format.
func BuildCSV(records []submission.Submission) []byte {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(columnLabels, ","))

	for _, rec := range sorted(records) {
		fields := rowValues(rec)
		for i, f := range fields {
			fields[i] = escapeCSV(f)
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return []byte(utf8BOM + strings.Join(lines, "\n"))
}

// escapeCSV wraps a field in double quotes, doubling any embedded quote, but
// only when the field contains a comma, newline, or quote.
func escapeCSV(value string) string {
	if !strings.ContainsAny(value, ",\n\"") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
