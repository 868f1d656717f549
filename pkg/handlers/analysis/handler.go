package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/data-probe/pkg/models/api"
	"github.com/de-tools/data-probe/pkg/models/domain"
	"github.com/de-tools/data-probe/pkg/services/dataset"
	"github.com/de-tools/data-probe/pkg/services/fixgen"
	"github.com/de-tools/data-probe/pkg/services/quality"
	"github.com/de-tools/data-probe/pkg/store/duckdb/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const defaultHistoryLimit = 20

type Handler struct {
	analyzer quality.Analyzer
	fixer    *fixgen.Generator
	reports  report.Store
}

// NewHandler builds the analysis handler. The report store may be nil when no
// history is kept; the history endpoints then answer 404.
func NewHandler(analyzer quality.Analyzer, fixer *fixgen.Generator, reports report.Store) *Handler {
	return &Handler{
		analyzer: analyzer,
		fixer:    fixer,
		reports:  reports,
	}
}

func (h *Handler) AnalyzeDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed_input", "request body is not valid JSON")
		return
	}
	if req.FileName == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "fileName is required")
		return
	}

	rep, err := h.analyzer.Analyze(ctx, []byte(req.Content), req.FileName)
	if err != nil {
		status, kind := classify(err)
		logger.Warn().
			Err(err).
			Str("file", req.FileName).
			Str("kind", kind).
			Msg("analysis failed")
		writeError(w, status, kind, err.Error())
		return
	}

	writeJSON(w, logger, toAPIReport(rep))
}

func (h *Handler) GenerateFix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.FixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed_input", "request body is not valid JSON")
		return
	}

	issue := domain.Issue{
		Column: req.Issue.Column,
		Type:   domain.IssueType(req.Issue.Type),
	}
	fixCode, err := h.fixer.Generate(issue, req.FileName)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, logger, api.FixResponse{FixCode: fixCode})
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.reports == nil {
		writeError(w, http.StatusNotFound, "not_found", "report history is not enabled")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	stored, err := h.reports.List(ctx, limit)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list reports")
		writeError(w, http.StatusInternalServerError, "internal", "failed to list reports")
		return
	}

	resp := make([]api.ReportSummary, 0, len(stored))
	for _, rep := range stored {
		resp = append(resp, toAPISummary(rep))
	}
	writeJSON(w, logger, resp)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	if h.reports == nil {
		writeError(w, http.StatusNotFound, "not_found", "report history is not enabled")
		return
	}

	rep, err := h.reports.Get(ctx, id)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "report not found")
			return
		}
		logger.Error().Err(err).Str("report_id", id).Msg("failed to load report")
		writeError(w, http.StatusInternalServerError, "internal", "failed to load report")
		return
	}

	writeJSON(w, logger, struct {
		api.ReportSummary
		Issues json.RawMessage `json:"issues"`
	}{
		ReportSummary: toAPISummary(*rep),
		Issues:        rep.Issues,
	})
}

func classify(err error) (int, string) {
	var malformed *dataset.MalformedInputError
	var generation *quality.GenerationError
	switch {
	case errors.Is(err, dataset.ErrNoData), errors.Is(err, dataset.ErrUnsupportedFormat):
		// An unsupported format produces zero rows, so callers see it as the
		// same no-data condition.
		return http.StatusBadRequest, "no_data"
	case errors.As(err, &malformed):
		return http.StatusBadRequest, "malformed_input"
	case errors.As(err, &generation):
		return http.StatusBadGateway, "generation_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: api.Error{Kind: kind, Message: msg}})
}
