package summary

import (
	"fmt"
	"strings"

	"github.com/de-tools/data-probe/pkg/models/domain"
)

// renderSample renders up to maxSample rows as a compact pipe-separated table
// suitable for inclusion in a prompt.
func renderSample(rows []domain.Record, columns []string, maxSample int) string {
	if maxSample > len(rows) {
		maxSample = len(rows)
	}

	var b strings.Builder
	b.WriteString(strings.Join(columns, " | "))
	b.WriteString("\n")
	for _, row := range rows[:maxSample] {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = safeCell(row[col])
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

func safeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "/")
}

func buildPrompt(rows []domain.Record, columns []string, maxSample int) string {
	return fmt.Sprintf(
		"Describe this dataset in 2-3 plain sentences: what the columns appear to represent "+
			"and what kind of records it holds. Do not list statistics.\n\n"+
			"Columns: %s\nSample rows (%d shown):\n%s",
		strings.Join(columns, ", "), min(maxSample, len(rows)), renderSample(rows, columns, maxSample))
}
