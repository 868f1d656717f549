package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/data-probe/pkg/models/api"
	"github.com/de-tools/data-probe/pkg/models/domain"
	"github.com/de-tools/data-probe/pkg/models/store"
	"github.com/de-tools/data-probe/pkg/services/dataset"
	"github.com/de-tools/data-probe/pkg/services/fixgen"
	"github.com/de-tools/data-probe/pkg/services/quality"
	"github.com/de-tools/data-probe/pkg/store/duckdb/report"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Analyze(ctx context.Context, content []byte, fileName string) (*domain.Report, error) {
	args := m.Called(ctx, content, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

type mockReportStore struct {
	mock.Mock
}

func (m *mockReportStore) Add(ctx context.Context, rep store.QualityReport) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *mockReportStore) List(ctx context.Context, limit int) ([]store.QualityReport, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.QualityReport), args.Error(1)
}

func (m *mockReportStore) Get(ctx context.Context, id string) (*store.QualityReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.QualityReport), args.Error(1)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandler_AnalyzeDataset(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		analyzer := &mockAnalyzer{}
		analyzer.On("Analyze", mock.Anything, []byte("id\n1\n"), "data.csv").
			Return(&domain.Report{
				ID:           "r1",
				FileName:     "data.csv",
				Summary:      "tiny dataset",
				TotalRows:    1,
				TotalColumns: 1,
				OverallScore: 100,
			}, nil)

		h := NewHandler(analyzer, fixgen.NewGenerator(), nil)
		rec := postJSON(t, h.AnalyzeDataset, "/api/v1/datasets/analyze",
			api.AnalyzeRequest{FileName: "data.csv", Content: "id\n1\n"})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.Report
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "r1", resp.ID)
		assert.Equal(t, 100, resp.OverallScore)
		assert.Equal(t, "tiny dataset", resp.Summary)
		analyzer.AssertExpectations(t)
	})

	t.Run("empty input maps to no_data", func(t *testing.T) {
		analyzer := &mockAnalyzer{}
		analyzer.On("Analyze", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, dataset.ErrNoData)

		h := NewHandler(analyzer, fixgen.NewGenerator(), nil)
		rec := postJSON(t, h.AnalyzeDataset, "/api/v1/datasets/analyze",
			api.AnalyzeRequest{FileName: "data.csv", Content: ""})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "no_data", decodeError(t, rec).Error.Kind)
	})

	t.Run("unsupported format also maps to no_data", func(t *testing.T) {
		analyzer := &mockAnalyzer{}
		analyzer.On("Analyze", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, dataset.ErrUnsupportedFormat)

		h := NewHandler(analyzer, fixgen.NewGenerator(), nil)
		rec := postJSON(t, h.AnalyzeDataset, "/api/v1/datasets/analyze",
			api.AnalyzeRequest{FileName: "data.xlsx", Content: "x"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "no_data", decodeError(t, rec).Error.Kind)
	})

	t.Run("invalid JSON content maps to malformed_input", func(t *testing.T) {
		analyzer := &mockAnalyzer{}
		analyzer.On("Analyze", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &dataset.MalformedInputError{Format: "json", Reason: "invalid JSON text"})

		h := NewHandler(analyzer, fixgen.NewGenerator(), nil)
		rec := postJSON(t, h.AnalyzeDataset, "/api/v1/datasets/analyze",
			api.AnalyzeRequest{FileName: "data.json", Content: "{"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "malformed_input", decodeError(t, rec).Error.Kind)
	})

	t.Run("summarizer failure maps to generation_failed", func(t *testing.T) {
		analyzer := &mockAnalyzer{}
		analyzer.On("Analyze", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &quality.GenerationError{Stage: "summary", Err: errors.New("timeout")})

		h := NewHandler(analyzer, fixgen.NewGenerator(), nil)
		rec := postJSON(t, h.AnalyzeDataset, "/api/v1/datasets/analyze",
			api.AnalyzeRequest{FileName: "data.csv", Content: "id\n1\n"})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "generation_failed", decodeError(t, rec).Error.Kind)
	})

	t.Run("missing file name is rejected", func(t *testing.T) {
		h := NewHandler(&mockAnalyzer{}, fixgen.NewGenerator(), nil)
		rec := postJSON(t, h.AnalyzeDataset, "/api/v1/datasets/analyze",
			api.AnalyzeRequest{Content: "id\n1\n"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_request", decodeError(t, rec).Error.Kind)
	})

	t.Run("malformed request body", func(t *testing.T) {
		h := NewHandler(&mockAnalyzer{}, fixgen.NewGenerator(), nil)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets/analyze", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		h.AnalyzeDataset(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "malformed_input", decodeError(t, rec).Error.Kind)
	})
}

func TestHandler_GenerateFix(t *testing.T) {
	h := NewHandler(&mockAnalyzer{}, fixgen.NewGenerator(), nil)

	t.Run("success", func(t *testing.T) {
		rec := postJSON(t, h.GenerateFix, "/api/v1/issues/fix", api.FixRequest{
			Issue:    api.Issue{Column: "amount", Type: "outliers"},
			FileName: "data.csv",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.FixResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp.FixCode, "IQR")
	})

	t.Run("unknown issue types do not fail", func(t *testing.T) {
		rec := postJSON(t, h.GenerateFix, "/api/v1/issues/fix", api.FixRequest{
			Issue:    api.Issue{Column: "city", Type: "no_such_type"},
			FileName: "data.csv",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.FixResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp.FixCode, "describe()")
	})

	t.Run("missing column is rejected", func(t *testing.T) {
		rec := postJSON(t, h.GenerateFix, "/api/v1/issues/fix", api.FixRequest{
			Issue:    api.Issue{Type: "outliers"},
			FileName: "data.csv",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_request", decodeError(t, rec).Error.Kind)
	})
}

func TestHandler_Reports(t *testing.T) {
	stored := store.QualityReport{
		ID:           "r1",
		FileName:     "data.csv",
		TotalRows:    3,
		TotalColumns: 2,
		OverallScore: 60,
		Summary:      "summary",
		Issues:       json.RawMessage(`[{"column":"age","type":"missing_values"}]`),
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("list", func(t *testing.T) {
		reports := &mockReportStore{}
		reports.On("List", mock.Anything, 20).Return([]store.QualityReport{stored}, nil)

		h := NewHandler(&mockAnalyzer{}, fixgen.NewGenerator(), reports)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
		rec := httptest.NewRecorder()
		h.ListReports(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []api.ReportSummary
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "r1", resp[0].ID)
		assert.Equal(t, "2025-06-01T12:00:00Z", resp[0].CreatedAt)
	})

	t.Run("get by id includes issues", func(t *testing.T) {
		reports := &mockReportStore{}
		reports.On("Get", mock.Anything, "r1").Return(&stored, nil)

		router := chi.NewRouter()
		h := NewHandler(&mockAnalyzer{}, fixgen.NewGenerator(), reports)
		router.Get("/api/v1/reports/{id}", h.GetReport)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/r1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"missing_values"`)
	})

	t.Run("get unknown id", func(t *testing.T) {
		reports := &mockReportStore{}
		reports.On("Get", mock.Anything, "missing").Return(nil, report.ErrNotFound)

		router := chi.NewRouter()
		h := NewHandler(&mockAnalyzer{}, fixgen.NewGenerator(), reports)
		router.Get("/api/v1/reports/{id}", h.GetReport)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("history disabled", func(t *testing.T) {
		h := NewHandler(&mockAnalyzer{}, fixgen.NewGenerator(), nil)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
		rec := httptest.NewRecorder()
		h.ListReports(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
