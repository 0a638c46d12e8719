package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Health tracker API is running"})
}

func (h *Handler) ApiTest(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "API is working"})
}

func (h *Handler) Health(ctx *gin.Context) {
	ctx.String(http.StatusOK, "ok")
}
