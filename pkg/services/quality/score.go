package quality

import "github.com/de-tools/data-probe/pkg/models/domain"

// Score aggregates issue severities into a single dataset quality score:
// 100 minus 20 per critical and 10 per warning issue, clamped to [0, 100].
func Score(issues []domain.Issue) int {
	score := 100
	for _, issue := range issues {
		switch issue.Severity {
		case domain.SeverityCritical:
			score -= 20
		case domain.SeverityWarning:
			score -= 10
		}
	}
	if score < 0 {
		return 0
	}
	return score
}
