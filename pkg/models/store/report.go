package store

import (
	"encoding/json"
	"time"
)

// QualityReport is the persisted shape of an analysis result. Only the report
// output is stored; the uploaded rows never are.
type QualityReport struct {
	ID           string
	FileName     string
	TotalRows    int
	TotalColumns int
	SkippedRows  int
	OverallScore int
	Summary      string
	Issues       json.RawMessage
	CreatedAt    time.Time
}
