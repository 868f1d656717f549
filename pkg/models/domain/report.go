package domain

// Report is the result of one dataset analysis.
type Report struct {
	ID           string `json:"id"`
	FileName     string `json:"fileName"`
	Summary      string `json:"summary"`
	TotalRows    int    `json:"totalRows"`
	TotalColumns int    `json:"totalColumns"`
	// SkippedRows counts CSV lines dropped for a column-count mismatch,
	// so that totalRows undercounts are visible to the caller.
	SkippedRows  int     `json:"skippedRows"`
	Issues       []Issue `json:"issues"`
	OverallScore int     `json:"overallScore"`
}

// WithFix returns a copy of the issue list with the generated fix attached to
// the issue matching the (column, type) pair. Matching is by key, not identity;
// the original list is left untouched. The second return reports whether a
// matching issue was found.
func (r *Report) WithFix(column string, issueType IssueType, fixCode string) ([]Issue, bool) {
	issues := make([]Issue, len(r.Issues))
	copy(issues, r.Issues)

	for i := range issues {
		if issues[i].Column == column && issues[i].Type == issueType {
			issues[i].FixCode = fixCode
			return issues, true
		}
	}
	return issues, false
}
