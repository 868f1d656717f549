package fixgen

import (
	"testing"

	"github.com/de-tools/data-probe/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator()

	t.Run("missing values - csv fills with the median", func(t *testing.T) {
		code, err := g.Generate(domain.Issue{Column: "age", Type: domain.IssueMissingValues}, "users.csv")
		require.NoError(t, err)

		assert.Contains(t, code, `df["age"].median()`)
		assert.Contains(t, code, "users_cleaned.csv")
		assert.Contains(t, code, "mode fill")
		assert.Contains(t, code, "forward fill")
	})

	t.Run("missing values - other extensions get SQL", func(t *testing.T) {
		code, err := g.Generate(domain.Issue{Column: "age", Type: domain.IssueMissingValues}, "users.json")
		require.NoError(t, err)

		assert.Contains(t, code, "UPDATE users")
		assert.Contains(t, code, "AVG(age)")
		assert.Contains(t, code, "IS NULL")
	})

	t.Run("duplicates - csv keeps the first occurrence", func(t *testing.T) {
		code, err := g.Generate(domain.Issue{Column: "user_id", Type: domain.IssueDuplicateValues}, "users.csv")
		require.NoError(t, err)

		assert.Contains(t, code, `drop_duplicates(subset=["user_id"], keep="first")`)
		assert.Contains(t, code, "users_deduped.csv")
	})

	t.Run("duplicates - sql ranks and deletes past rank 1", func(t *testing.T) {
		code, err := g.Generate(domain.Issue{Column: "user_id", Type: domain.IssueDuplicateValues}, "users.json")
		require.NoError(t, err)

		assert.Contains(t, code, "ROW_NUMBER() OVER (PARTITION BY user_id")
		assert.Contains(t, code, "rn > 1")
	})

	t.Run("outliers - always the tabular IQR script", func(t *testing.T) {
		for _, name := range []string{"data.csv", "data.json", "data.parquet", "data"} {
			code, err := g.Generate(domain.Issue{Column: "amount", Type: domain.IssueOutliers}, name)
			require.NoError(t, err)

			assert.Contains(t, code, "IQR", "file %s", name)
			assert.Contains(t, code, "quantile(0.25)")
			assert.Contains(t, code, "clip(lower=lower, upper=upper)")
		}
	})

	t.Run("outliers - derived name replaces the csv suffix", func(t *testing.T) {
		code, err := g.Generate(domain.Issue{Column: "amount", Type: domain.IssueOutliers}, "data.csv")
		require.NoError(t, err)

		assert.Contains(t, code, "data_outliers_fixed.csv")
	})

	t.Run("unknown types fall through to the inspection script", func(t *testing.T) {
		code, err := g.Generate(domain.Issue{Column: "city", Type: "weird_type"}, "data.csv")
		require.NoError(t, err)

		assert.Contains(t, code, "describe()")
		assert.Contains(t, code, "str.strip()")
		assert.Contains(t, code, "str.lower()")
	})

	t.Run("other type gets the inspection script regardless of extension", func(t *testing.T) {
		code, err := g.Generate(domain.Issue{Column: "city", Type: domain.IssueOther}, "data.json")
		require.NoError(t, err)

		assert.Contains(t, code, "describe()")
		assert.NotContains(t, code, "UPDATE")
	})

	t.Run("error - column is required", func(t *testing.T) {
		_, err := g.Generate(domain.Issue{Type: domain.IssueMissingValues}, "data.csv")
		assert.Error(t, err)
	})
}
