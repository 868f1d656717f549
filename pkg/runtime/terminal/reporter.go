package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/data-probe/pkg/models/domain"
)

// Reporter outputs quality reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
Quality report for {{.FileName}}
Rows: {{.TotalRows}}  Columns: {{.TotalColumns}}{{if .SkippedRows}}  (skipped {{.SkippedRows}} malformed lines){{end}}
Overall score: {{.OverallScore}}/100

{{.Summary}}
{{if .Issues}}
Issues:
{{range .Issues}}
[{{.Severity}}] {{.Column}}: {{.Description}}
  {{.Explanation}}
  Recommendation: {{.Recommendation}}
{{end}}
{{else}}
No issues detected.
{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
