package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/de-tools/data-probe/pkg/models/domain"
)

// Static produces a deterministic summary without any external call. Used by
// the terminal runtime and as a test double for the analysis pipeline.
type Static struct{}

func NewStatic() Static { return Static{} }

func (Static) Summarize(_ context.Context, rows []domain.Record, columns []string, maxSample int) (string, error) {
	shown := min(maxSample, len(rows))
	return fmt.Sprintf("Dataset with %d sampled rows across %d columns: %s.",
		shown, len(columns), strings.Join(columns, ", ")), nil
}
