package summary

import (
	"context"

	"github.com/de-tools/data-probe/pkg/models/domain"
)

// Summarizer produces a natural-language description of a dataset from a
// small prefix of its rows. It is an injected capability: the hosted
// text-generation service is possibly slow and out of this module's control,
// so analysis code depends on this interface, never on a concrete client.
type Summarizer interface {
	Summarize(ctx context.Context, rows []domain.Record, columns []string, maxSample int) (string, error)
}
