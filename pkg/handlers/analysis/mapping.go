package analysis

import (
	"time"

	"github.com/de-tools/data-probe/pkg/models/api"
	"github.com/de-tools/data-probe/pkg/models/domain"
	"github.com/de-tools/data-probe/pkg/models/store"
)

func toAPIReport(rep *domain.Report) api.Report {
	issues := make([]api.Issue, 0, len(rep.Issues))
	for _, issue := range rep.Issues {
		issues = append(issues, api.Issue{
			Column:         issue.Column,
			Type:           string(issue.Type),
			Severity:       string(issue.Severity),
			Count:          issue.Count,
			Percentage:     issue.Percentage,
			Description:    issue.Description,
			Explanation:    issue.Explanation,
			Recommendation: issue.Recommendation,
			FixCode:        issue.FixCode,
		})
	}
	return api.Report{
		ID:           rep.ID,
		FileName:     rep.FileName,
		Summary:      rep.Summary,
		TotalRows:    rep.TotalRows,
		TotalColumns: rep.TotalColumns,
		SkippedRows:  rep.SkippedRows,
		Issues:       issues,
		OverallScore: rep.OverallScore,
	}
}

func toAPISummary(rep store.QualityReport) api.ReportSummary {
	return api.ReportSummary{
		ID:           rep.ID,
		FileName:     rep.FileName,
		TotalRows:    rep.TotalRows,
		TotalColumns: rep.TotalColumns,
		SkippedRows:  rep.SkippedRows,
		OverallScore: rep.OverallScore,
		Summary:      rep.Summary,
		CreatedAt:    rep.CreatedAt.Format(time.RFC3339),
	}
}
