package dataset

import (
	"path/filepath"
	"strings"

	"github.com/de-tools/data-probe/pkg/models/domain"
)

// Dataset is an ordered set of parsed rows. Columns preserves the order in
// which column names first appear in row 0: the header for CSV, document key
// order for JSON.
type Dataset struct {
	Records []domain.Record
	Columns []string
	// SkippedRows counts CSV lines dropped because their field count did not
	// match the header.
	SkippedRows int
}

// Sample returns up to n leading rows.
func (d *Dataset) Sample(n int) []domain.Record {
	if n > len(d.Records) {
		n = len(d.Records)
	}
	return d.Records[:n]
}

// Parse converts raw file content into a Dataset. The file name is used only
// to pick the format: ".csv" and ".json" are supported, anything else returns
// ErrUnsupportedFormat. Parsing is all-or-nothing; there is no row-level error
// reporting.
func Parse(content []byte, fileName string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return parseCSV(string(content))
	case ".json":
		return parseJSON(content)
	default:
		return nil, ErrUnsupportedFormat
	}
}
