package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_WithFix(t *testing.T) {
	report := &Report{
		Issues: []Issue{
			{Column: "age", Type: IssueMissingValues},
			{Column: "id", Type: IssueDuplicateValues},
		},
	}

	t.Run("attaches the fix to the matching (column, type) pair", func(t *testing.T) {
		issues, ok := report.WithFix("id", IssueDuplicateValues, "snippet")
		require.True(t, ok)

		assert.Equal(t, "snippet", issues[1].FixCode)
		assert.Empty(t, issues[0].FixCode)
		// The original list stays untouched.
		assert.Empty(t, report.Issues[1].FixCode)
	})

	t.Run("column alone is not enough to match", func(t *testing.T) {
		_, ok := report.WithFix("id", IssueOutliers, "snippet")
		assert.False(t, ok)
	})
}
