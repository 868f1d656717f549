package domain

// IssueType identifies the detector that produced an issue.
type IssueType string

const (
	IssueMissingValues   IssueType = "missing_values"
	IssueDuplicateValues IssueType = "duplicate_values"
	IssueOutliers        IssueType = "outliers"
	IssueOther           IssueType = "other"
)

// Severity classifies how urgently an issue should be addressed.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Issue is one data-quality finding for a single column.
type Issue struct {
	Column         string    `json:"column"`
	Type           IssueType `json:"type"`
	Severity       Severity  `json:"severity"`
	Count          int       `json:"count"`
	Percentage     float64   `json:"percentage"`
	Description    string    `json:"description"`
	Explanation    string    `json:"explanation"`
	Recommendation string    `json:"recommendation"`
	FixCode        string    `json:"fixCode,omitempty"`
}
