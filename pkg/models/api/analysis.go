package api

// AnalyzeRequest carries one dataset upload. The file name is used only to
// pick CSV vs JSON parsing.
type AnalyzeRequest struct {
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}

type Issue struct {
	Column         string  `json:"column"`
	Type           string  `json:"type"`
	Severity       string  `json:"severity"`
	Count          int     `json:"count"`
	Percentage     float64 `json:"percentage"`
	Description    string  `json:"description"`
	Explanation    string  `json:"explanation"`
	Recommendation string  `json:"recommendation"`
	FixCode        string  `json:"fixCode,omitempty"`
}

type Report struct {
	ID           string  `json:"id"`
	FileName     string  `json:"fileName"`
	Summary      string  `json:"summary"`
	TotalRows    int     `json:"totalRows"`
	TotalColumns int     `json:"totalColumns"`
	SkippedRows  int     `json:"skippedRows"`
	Issues       []Issue `json:"issues"`
	OverallScore int     `json:"overallScore"`
}

type FixRequest struct {
	Issue    Issue  `json:"issue"`
	FileName string `json:"fileName"`
}

type FixResponse struct {
	FixCode string `json:"fixCode"`
}

// ReportSummary is one entry in the stored report history; issues are
// included only when fetching a single report.
type ReportSummary struct {
	ID           string `json:"id"`
	FileName     string `json:"fileName"`
	TotalRows    int    `json:"totalRows"`
	TotalColumns int    `json:"totalColumns"`
	SkippedRows  int    `json:"skippedRows"`
	OverallScore int    `json:"overallScore"`
	Summary      string `json:"summary"`
	CreatedAt    string `json:"createdAt"`
}

type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error Error `json:"error"`
}
