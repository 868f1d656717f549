package quality

import (
	"context"
	"encoding/json"
	"time"

	"github.com/de-tools/data-probe/pkg/models/domain"
	"github.com/de-tools/data-probe/pkg/models/store"
	"github.com/de-tools/data-probe/pkg/services/dataset"
	"github.com/de-tools/data-probe/pkg/services/summary"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// summarySampleSize is the number of leading rows handed to the summarizer.
const summarySampleSize = 5

// Analyzer runs the full analysis pipeline for one dataset upload. Each call
// builds its own working set; an Analyzer is safe for concurrent use.
type Analyzer interface {
	Analyze(ctx context.Context, content []byte, fileName string) (*domain.Report, error)
}

// ReportSink receives finished reports for history keeping. Persistence is
// best-effort: a sink failure is logged, never surfaced to the caller.
type ReportSink interface {
	Add(ctx context.Context, rep store.QualityReport) error
}

type analyzer struct {
	summarizer summary.Summarizer
	reports    ReportSink
}

// NewAnalyzer wires the pipeline. The sink may be nil when no history is kept.
func NewAnalyzer(summarizer summary.Summarizer, reports ReportSink) Analyzer {
	return &analyzer{
		summarizer: summarizer,
		reports:    reports,
	}
}

func (a *analyzer) Analyze(ctx context.Context, content []byte, fileName string) (*domain.Report, error) {
	ds, err := dataset.Parse(content, fileName)
	if err != nil {
		return nil, err
	}

	issues := Detect(ds)

	text, err := a.summarizer.Summarize(ctx, ds.Sample(summarySampleSize), ds.Columns, summarySampleSize)
	if err != nil {
		return nil, &GenerationError{Stage: "summary", Err: err}
	}

	rep := &domain.Report{
		ID:           uuid.NewString(),
		FileName:     fileName,
		Summary:      text,
		TotalRows:    len(ds.Records),
		TotalColumns: len(ds.Columns),
		SkippedRows:  ds.SkippedRows,
		Issues:       issues,
		OverallScore: Score(issues),
	}

	if a.reports != nil {
		if err := a.reports.Add(ctx, toStoreReport(rep)); err != nil {
			zerolog.Ctx(ctx).Warn().
				Err(err).
				Str("report_id", rep.ID).
				Msg("failed to persist quality report")
		}
	}
	return rep, nil
}

func toStoreReport(rep *domain.Report) store.QualityReport {
	issues, _ := json.Marshal(rep.Issues)
	return store.QualityReport{
		ID:           rep.ID,
		FileName:     rep.FileName,
		TotalRows:    rep.TotalRows,
		TotalColumns: rep.TotalColumns,
		SkippedRows:  rep.SkippedRows,
		OverallScore: rep.OverallScore,
		Summary:      rep.Summary,
		Issues:       issues,
		CreatedAt:    time.Now().UTC(),
	}
}
