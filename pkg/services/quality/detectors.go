package quality

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/de-tools/data-probe/pkg/models/domain"
	"github.com/de-tools/data-probe/pkg/services/dataset"
	"github.com/de-tools/data-probe/pkg/services/profile"
)

// Detect runs the three detectors over every column. Issues are grouped by
// detector, columns in first-row order within each detector. Detection never
// fails: a column with no usable values simply produces no duplicate or
// outlier findings.
func Detect(ds *dataset.Dataset) []domain.Issue {
	profiles := make([]domain.ColumnProfile, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		profiles = append(profiles, profile.Column(ds.Records, col))
	}

	var issues []domain.Issue
	for _, p := range profiles {
		if issue, ok := detectMissing(p); ok {
			issues = append(issues, issue)
		}
	}
	for _, p := range profiles {
		if issue, ok := detectDuplicates(p); ok {
			issues = append(issues, issue)
		}
	}
	for _, p := range profiles {
		if issue, ok := detectOutliers(p); ok {
			issues = append(issues, issue)
		}
	}
	return issues
}

func detectMissing(p domain.ColumnProfile) (domain.Issue, bool) {
	if p.MissingCount == 0 || p.TotalRows == 0 {
		return domain.Issue{}, false
	}

	pct := 100 * float64(p.MissingCount) / float64(p.TotalRows)

	severity := domain.SeverityInfo
	switch {
	case pct > 20:
		severity = domain.SeverityCritical
	case pct > 5:
		severity = domain.SeverityWarning
	}

	recommendation := "The gap rate is low; monitor the column and backfill values at the source where possible."
	if pct > 10 {
		recommendation = "Impute the gaps (median for numeric columns, mode for categorical) or drop the affected rows before analysis."
	}

	return domain.Issue{
		Column:      p.Name,
		Type:        domain.IssueMissingValues,
		Severity:    severity,
		Count:       p.MissingCount,
		Percentage:  pct,
		Description: fmt.Sprintf("%d missing values (%.1f%% of %d rows)", p.MissingCount, pct, p.TotalRows),
		Explanation: fmt.Sprintf("Column %q has gaps that can bias aggregates and break downstream joins or model training.",
			p.Name),
		Recommendation: recommendation,
	}, true
}

// detectDuplicates only evaluates columns whose name looks like an identifier.
func detectDuplicates(p domain.ColumnProfile) (domain.Issue, bool) {
	if !strings.Contains(strings.ToLower(p.Name), "id") {
		return domain.Issue{}, false
	}

	dups := len(p.Values) - p.DistinctValues()
	if dups == 0 || p.TotalRows == 0 {
		return domain.Issue{}, false
	}

	pct := 100 * float64(dups) / float64(p.TotalRows)

	return domain.Issue{
		Column:      p.Name,
		Type:        domain.IssueDuplicateValues,
		Severity:    domain.SeverityCritical,
		Count:       dups,
		Percentage:  pct,
		Description: fmt.Sprintf("%d duplicate values in identifier column (%.1f%% of %d rows)", dups, pct, p.TotalRows),
		Explanation: fmt.Sprintf("Values in %q look like identifiers but repeat across rows, so records cannot be uniquely addressed.",
			p.Name),
		Recommendation: "Deduplicate keeping the first occurrence of each value, or enforce a uniqueness constraint at the source.",
	}, true
}

func detectOutliers(p domain.ColumnProfile) (domain.Issue, bool) {
	if len(p.Numbers) == 0 {
		return domain.Issue{}, false
	}

	sorted := make([]float64, len(p.Numbers))
	copy(sorted, p.Numbers)
	sort.Float64s(sorted)

	q1 := nearestRank(sorted, 0.25)
	q3 := nearestRank(sorted, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	count := 0
	for _, v := range sorted {
		if v < lower || v > upper {
			count++
		}
	}
	if count == 0 {
		return domain.Issue{}, false
	}

	pct := 100 * float64(count) / float64(len(p.Numbers))

	severity := domain.SeverityInfo
	if pct > 10 {
		severity = domain.SeverityWarning
	}

	return domain.Issue{
		Column:      p.Name,
		Type:        domain.IssueOutliers,
		Severity:    severity,
		Count:       count,
		Percentage:  pct,
		Description: fmt.Sprintf("%d values outside the interquartile bounds (%.1f%% of %d numeric values)", count, pct, len(p.Numbers)),
		Explanation: fmt.Sprintf("Extreme values in %q fall outside Tukey's fences and can distort means and standard deviations.",
			p.Name),
		Recommendation: "Inspect the flagged rows; clip them into the interquartile bounds, or remove them if they are data-entry errors.",
	}, true
}

// nearestRank picks the quantile value at index floor(q*n) of the sorted
// slice. This is deliberately not the interpolated quantile method: the
// nearest-rank rule keeps outlier bounds bit-compatible with the upstream
// implementation.
func nearestRank(sorted []float64, q float64) float64 {
	idx := int(math.Floor(q * float64(len(sorted))))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
