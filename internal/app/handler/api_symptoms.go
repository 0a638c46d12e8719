package handler

import (
	"errors"
	"net/http"
	"strings"

	"healthtracker/internal/app/analysis"

	"github.com/gin-gonic/gin"
)

// POST /api/symptoms/analyze
func (h *Handler) ApiAnalyzeSymptoms(ctx *gin.Context) {
	var req struct {
		Symptoms string              `json:"symptoms"`
		Vitals   *analysis.VitalSigns `json:"vitals"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("please describe your symptoms"))
		return
	}

	report := analysis.Analyze(req.Symptoms, req.Vitals)
	jsonResponse(ctx, report, int64(len(report.PossibleConditions)), gin.H{})
}

// GET /api/symptoms/conditions
func (h *Handler) ApiListConditions(ctx *gin.Context) {
	conditions := analysis.Conditions()
	jsonResponse(ctx, conditions, int64(len(conditions)), gin.H{})
}
