// Package api exposes HTTP handlers for the insights service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/seawatts/nugget/internal/achievements"
	"github.com/seawatts/nugget/internal/analytics"
	"github.com/seawatts/nugget/internal/auth"
	"github.com/seawatts/nugget/internal/domain"
	"github.com/seawatts/nugget/internal/insights"
)

// Handler coordinates HTTP requests with the insights service.
type Handler struct {
	service *insights.Service
}

// NewHandler builds a Handler.
func NewHandler(service *insights.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/babies/", h.babyResource)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) babyResource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopeInsightsRead) {
		writeError(w, http.StatusForbidden, "forbidden", "scope insights:read required")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/babies/")
	babyID, resource, _ := strings.Cut(rest, "/")
	if babyID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing baby id")
		return
	}

	switch resource {
	case "streaks":
		h.streaks(w, r, babyID)
	case "trends":
		h.trends(w, r, babyID)
	case "heatmap":
		h.heatmap(w, r, babyID)
	case "patterns":
		h.patterns(w, r, babyID)
	case "stats":
		h.stats(w, r, babyID)
	case "achievements":
		h.achievements(w, r, babyID)
	case "achievements/daily":
		h.dailyAchievements(w, r, babyID)
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown resource")
	}
}

func (h *Handler) streaks(w http.ResponseWriter, r *http.Request, babyID string) {
	streaks, err := h.service.Streaks(r.Context(), babyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := StreaksResponse{Streaks: make(map[string]analytics.Streak, len(streaks))}
	for behavior, streak := range streaks {
		resp.Streaks[string(behavior)] = streak
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) trends(w http.ResponseWriter, r *http.Request, babyID string) {
	rng := analytics.Range(r.URL.Query().Get("range"))
	if _, err := analytics.RangePointCount(rng); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	kind := domain.Kind(r.URL.Query().Get("kind"))

	points, err := h.service.Trend(r.Context(), babyID, kind, rng)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TrendResponse{Range: string(rng), Kind: string(kind), Points: points})
}

func (h *Handler) heatmap(w http.ResponseWriter, r *http.Request, babyID string) {
	rng := analytics.Range(r.URL.Query().Get("range"))
	if rng == "" {
		rng = analytics.Range2Weeks
	}
	if _, err := analytics.RangePointCount(rng); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	cells, err := h.service.Heatmap(r.Context(), babyID, rng)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HeatmapResponse{Range: string(rng), Cells: cells})
}

func (h *Handler) patterns(w http.ResponseWriter, r *http.Request, babyID string) {
	summary, err := h.service.Patterns(r.Context(), babyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request, babyID string) {
	period := analytics.Period(r.URL.Query().Get("period"))
	if _, err := analytics.ResolvePeriod(period, time.Now()); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	pivot := analytics.Pivot(r.URL.Query().Get("pivot"))
	if pivot == "" {
		pivot = analytics.PivotTotal
	}
	switch pivot {
	case analytics.PivotTotal, analytics.PivotPerDay, analytics.PivotPerWeek, analytics.PivotPerMonth, analytics.PivotPerHour:
	default:
		writeError(w, http.StatusBadRequest, "validation_failed", "unknown pivot")
		return
	}

	stats, err := h.service.Stats(r.Context(), babyID, period, pivot)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) achievements(w http.ResponseWriter, r *http.Request, babyID string) {
	report, err := h.service.Achievements(r.Context(), babyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) dailyAchievements(w http.ResponseWriter, r *http.Request, babyID string) {
	results, err := h.service.DailyAchievements(r.Context(), babyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DailyAchievementsResponse{Items: results})
}

// StreaksResponse maps each tracked behavior to its streak pair.
type StreaksResponse struct {
	Streaks map[string]analytics.Streak `json:"streaks"`
}

// TrendResponse packages a fixed-length trend series.
type TrendResponse struct {
	Range  string                 `json:"range"`
	Kind   string                 `json:"kind,omitempty"`
	Points []analytics.TrendPoint `json:"points"`
}

// HeatmapResponse packages the 168-cell frequency grid.
type HeatmapResponse struct {
	Range string                  `json:"range"`
	Cells []analytics.HeatmapCell `json:"cells"`
}

// DailyAchievementsResponse packages today's checklist evaluation.
type DailyAchievementsResponse struct {
	Items []achievements.DailyResult `json:"items"`
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, insights.ErrBabyNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "baby not found")
		return
	}
	writeError(w, http.StatusInternalServerError, "server_error", err.Error())
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
