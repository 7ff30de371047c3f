// ABOUTME: HTTP handlers for pipeline runs and stored snapshot retrieval
// ABOUTME: Exposes update, snapshot, stats, and industries endpoints

package handlers

import (
	"context"
	"net/http"
	"strings"

	"news-intel-api/api/dto/responses"
	"news-intel-api/core/interfaces"
	"news-intel-api/core/pipeline"
)

// PipelineRunner runs one collection and analysis pass for an industry key
type PipelineRunner interface {
	RunOnce(ctx context.Context, industryKey string) (*pipeline.RunResult, error)
}

// NewsHandler serves the news intelligence endpoints
type NewsHandler struct {
	runner PipelineRunner
	store  interfaces.SnapshotStorage
	logger interfaces.Logger
}

// NewNewsHandler creates a handler backed by a pipeline runner and a store
func NewNewsHandler(runner PipelineRunner, store interfaces.SnapshotStorage, logger interfaces.Logger) *NewsHandler {
	return &NewsHandler{
		runner: runner,
		store:  store,
		logger: logger,
	}
}

// HandleUpdate runs the full pipeline for the requested industry.
// POST /api/update?industry=banking
func (h *NewsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	industry := strings.TrimSpace(r.URL.Query().Get("industry"))
	if industry == "" {
		writeBadRequest(w, "industry query parameter is required")
		return
	}

	result, err := h.runner.RunOnce(r.Context(), industry)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.UpdateResponse{
		Status:      result.Status,
		Industry:    result.Industry,
		Articles:    len(result.Articles),
		StoredCount: result.StoredCount,
		Report:      result.Report,
		DurationMS:  result.FinishedAt.Sub(result.StartedAt).Milliseconds(),
	})
}

// HandleSnapshot returns the stored snapshot for an industry.
// GET /api/snapshot?industry=banking
func (h *NewsHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	industry := strings.TrimSpace(r.URL.Query().Get("industry"))
	if industry == "" {
		writeBadRequest(w, "industry query parameter is required")
		return
	}

	articles, err := h.store.GetArticles(r.Context(), industry)
	if err != nil {
		writeError(w, err)
		return
	}

	if len(articles) == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: "no snapshot stored for industry " + industry,
		})
		return
	}

	writeJSON(w, http.StatusOK, responses.SnapshotResponse{
		Industry: industry,
		Count:    len(articles),
		Articles: responses.FromArticles(articles),
	})
}

// HandleStats returns aggregate stats for every stored industry.
// GET /api/stats
func (h *NewsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.FromStats(stats))
}

// HandleIndustries lists every industry with a stored snapshot.
// GET /api/industries
func (h *NewsHandler) HandleIndustries(w http.ResponseWriter, r *http.Request) {
	industries, err := h.store.ListIndustries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.IndustriesResponse{Industries: industries})
}
