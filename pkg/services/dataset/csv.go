package dataset

import (
	"strings"

	"github.com/de-tools/data-probe/pkg/models/domain"
)

// parseCSV splits the text on newlines with naive comma splitting: no quoted
// commas, no escaped delimiters. That matches the upstream behavior this
// service reproduces and is a documented simplification, not a bug. A line
// whose field count differs from the header is dropped silently; the drop is
// surfaced through Dataset.SkippedRows.
func parseCSV(text string) (*Dataset, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrNoData
	}

	header := splitFields(lines[0])

	ds := &Dataset{Columns: header}
	for _, line := range lines[1:] {
		fields := splitFields(line)
		if len(fields) != len(header) {
			ds.SkippedRows++
			continue
		}
		rec := make(domain.Record, len(header))
		for i, col := range header {
			rec[col] = fields[i]
		}
		ds.Records = append(ds.Records, rec)
	}

	if len(ds.Records) == 0 {
		return nil, ErrNoData
	}
	return ds, nil
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = cleanField(p)
	}
	return fields
}

// cleanField trims whitespace and strips one pair of surrounding double quotes.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	return s
}
