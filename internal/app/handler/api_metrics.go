package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"healthtracker/internal/app/pkg/fitness"

	"github.com/gin-gonic/gin"
)

// GET /api/metrics?days=N
func (h *Handler) ApiGetMetrics(ctx *gin.Context) {
	days := fitness.DefaultDays
	if h.Config != nil && h.Config.Fitness.Days > 0 && h.Config.Fitness.Days <= fitness.MaxDays {
		days = h.Config.Fitness.Days
	}
	if raw := ctx.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > fitness.MaxDays {
			h.errorHandler(ctx, http.StatusBadRequest, fmt.Errorf("days must be between 1 and %d", fitness.MaxDays))
			return
		}
		days = n
	}

	series := h.Metrics.Daily(ctx.Request.Context(), days)
	jsonResponse(ctx, series, int64(len(series.Days)), gin.H{"days": days})
}
