package fixgen

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/de-tools/data-probe/pkg/models/domain"
)

// Generator renders remediation snippets for quality issues. It is a pure
// templating component: deterministic, no I/O, safe for concurrent use.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

type snippetData struct {
	Column string
	Input  string
	Output string
	Table  string
}

// Generate returns a remediation snippet for the issue against the named
// file. The issue type picks the template; a ".csv" extension selects the
// tabular script over the SQL statement, except for outliers (always tabular)
// and the generic fallback. Unknown issue types fall through to the fallback
// rather than failing.
func (g *Generator) Generate(issue domain.Issue, fileName string) (string, error) {
	if issue.Column == "" {
		return "", errors.New("issue column is required")
	}
	if fileName == "" {
		fileName = "data.csv"
	}

	tabular := strings.EqualFold(filepath.Ext(fileName), ".csv")
	data := snippetData{
		Column: issue.Column,
		Input:  fileName,
		Table:  tableName(fileName),
	}

	var tmpl *template.Template
	switch issue.Type {
	case domain.IssueMissingValues:
		data.Output = derivedName(fileName, "_cleaned")
		tmpl = missingSQL
		if tabular {
			tmpl = missingCSV
		}
	case domain.IssueDuplicateValues:
		data.Output = derivedName(fileName, "_deduped")
		tmpl = duplicatesSQL
		if tabular {
			tmpl = duplicatesCSV
		}
	case domain.IssueOutliers:
		data.Output = derivedName(fileName, "_outliers_fixed")
		tmpl = outliersCSV
	default:
		tmpl = genericCSV
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// derivedName replaces a trailing ".csv" with suffix + ".csv"; names without
// the extension get the suffix appended.
func derivedName(fileName, suffix string) string {
	base := fileName
	if strings.EqualFold(filepath.Ext(fileName), ".csv") {
		base = fileName[:len(fileName)-len(".csv")]
	}
	return base + suffix + ".csv"
}

var unsafeTableChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// tableName derives a SQL-safe table name from the file name.
func tableName(fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	name := unsafeTableChars.ReplaceAllString(base, "_")
	if name == "" {
		return "my_table"
	}
	return name
}
