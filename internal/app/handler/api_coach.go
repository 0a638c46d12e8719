package handler

import (
	"errors"
	"net/http"
	"strings"

	"healthtracker/internal/app/pkg/coach"

	"github.com/gin-gonic/gin"
)

func (h *Handler) coachStatus(err error) int {
	if errors.Is(err, coach.ErrNotConfigured) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

// POST /api/coach/advice
func (h *Handler) ApiCoachAdvice(ctx *gin.Context) {
	var req struct {
		Query string `json:"query"`
		coach.Metrics
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("query must not be empty"))
		return
	}
	if h.Coach == nil {
		h.errorHandler(ctx, http.StatusServiceUnavailable, coach.ErrNotConfigured)
		return
	}

	rec, err := h.Coach.Advice(ctx.Request.Context(), strings.TrimSpace(req.Query), req.Metrics)
	if err != nil {
		h.errorHandler(ctx, h.coachStatus(err), err)
		return
	}
	jsonResponse(ctx, rec, 1, gin.H{})
}

// POST /api/coach/recommendations
func (h *Handler) ApiCoachRecommendations(ctx *gin.Context) {
	var m coach.Metrics
	if err := ctx.ShouldBindJSON(&m); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if h.Coach == nil {
		h.errorHandler(ctx, http.StatusServiceUnavailable, coach.ErrNotConfigured)
		return
	}

	recs, err := h.Coach.Insights(ctx.Request.Context(), m)
	if err != nil {
		h.errorHandler(ctx, h.coachStatus(err), err)
		return
	}
	jsonResponse(ctx, recs, int64(len(recs)), gin.H{})
}
