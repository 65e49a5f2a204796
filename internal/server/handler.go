// Package server exposes the learning core over a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Gopirudra-hub/MindMark/internal/analytics"
	"github.com/Gopirudra-hub/MindMark/internal/insights"
	"github.com/Gopirudra-hub/MindMark/internal/quiz"
	"github.com/Gopirudra-hub/MindMark/internal/review"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

const defaultTrendDays = 30

// Handler serves the quiz, review, analytics and insight endpoints.
type Handler struct {
	quiz       *quiz.Service
	scheduler  *review.Scheduler
	aggregator *analytics.Aggregator
	engine     *insights.Engine
	logger     *slog.Logger
}

func NewHandler(
	quizService *quiz.Service,
	scheduler *review.Scheduler,
	aggregator *analytics.Aggregator,
	engine *insights.Engine,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		quiz:       quizService,
		scheduler:  scheduler,
		aggregator: aggregator,
		engine:     engine,
		logger:     logger,
	}
}

// Register mounts every route on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/attempts", h.submitAttempt)
	mux.HandleFunc("GET /api/reviews/due", h.dueBookmarks)
	mux.HandleFunc("GET /api/reviews/weakest", h.weakestBookmarks)
	mux.HandleFunc("GET /api/reviews/daily", h.dailyReviewSet)
	mux.HandleFunc("GET /api/analytics", h.globalAnalytics)
	mux.HandleFunc("GET /api/analytics/categories/{id}", h.categoryAnalytics)
	mux.HandleFunc("GET /api/analytics/bookmarks/{id}", h.bookmarkAnalytics)
	mux.HandleFunc("GET /api/analytics/trend", h.performanceTrend)
	mux.HandleFunc("GET /api/insights", h.insights)
	mux.HandleFunc("GET /api/insights/categories/{id}", h.categoryInsights)
	mux.HandleFunc("GET /api/insights/bookmarks/{id}", h.bookmarkInsights)
}

type submitAttemptRequest struct {
	BookmarkID       int64                  `json:"bookmarkId"`
	Answers          []quiz.SubmittedAnswer `json:"answers"`
	TimeTakenSeconds int                    `json:"timeTakenSeconds"`
}

func (h *Handler) submitAttempt(w http.ResponseWriter, r *http.Request) {
	var req submitAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, validationErr("decode request body", err))
		return
	}

	result, err := h.quiz.SubmitAttempt(r.Context(), req.BookmarkID, req.Answers, req.TimeTakenSeconds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) dueBookmarks(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	bookmarks, err := h.scheduler.DueBookmarks(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, bookmarkList(bookmarks))
}

func (h *Handler) weakestBookmarks(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	bookmarks, err := h.scheduler.WeakestBookmarks(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, bookmarkList(bookmarks))
}

type dailyReviewSetResponse struct {
	Bookmarks []store.Bookmark `json:"bookmarks"`
	Questions []store.Question `json:"questions"`
	TotalDue  int              `json:"totalDue"`
}

func (h *Handler) dailyReviewSet(w http.ResponseWriter, r *http.Request) {
	set, err := h.scheduler.BuildDailyReviewSet(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dailyReviewSetResponse{
		Bookmarks: emptyIfNil(set.Bookmarks),
		Questions: emptyIfNil(set.Questions),
		TotalDue:  set.TotalDue,
	})
}

func (h *Handler) globalAnalytics(w http.ResponseWriter, r *http.Request) {
	result, err := h.aggregator.GlobalAnalytics(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) categoryAnalytics(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.aggregator.CategoryAnalytics(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) bookmarkAnalytics(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.aggregator.BookmarkAnalytics(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

type performanceTrendResponse struct {
	Days  int                  `json:"days"`
	Trend []analytics.DayScore `json:"trend"`
}

func (h *Handler) performanceTrend(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", defaultTrendDays)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	trend, err := h.aggregator.PerformanceTrend(r.Context(), days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, performanceTrendResponse{Days: days, Trend: emptyIfNil(trend)})
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.Insights(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, insightList(result))
}

func (h *Handler) categoryInsights(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.engine.CategoryInsights(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, insightList(result))
}

func (h *Handler) bookmarkInsights(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.engine.BookmarkInsights(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, insightList(result))
}

type bookmarksResponse struct {
	Bookmarks []store.Bookmark `json:"bookmarks"`
}

func bookmarkList(bookmarks []store.Bookmark) bookmarksResponse {
	return bookmarksResponse{Bookmarks: emptyIfNil(bookmarks)}
}

type insightsResponse struct {
	Insights []insights.Insight `json:"insights"`
}

func insightList(list []insights.Insight) insightsResponse {
	return insightsResponse{Insights: emptyIfNil(list)}
}

// emptyIfNil keeps list responses as JSON arrays instead of null.
func emptyIfNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, validationErr("parse id", err)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validationErr("parse "+name, err)
	}
	return value, nil
}

func validationErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, store.ErrValidation)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrValidation):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		h.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
