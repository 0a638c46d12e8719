package handler

import (
	"context"
	"mime/multipart"
	"net/http"

	"healthtracker/internal/app/config"
	"healthtracker/internal/app/pkg/coach"
	"healthtracker/internal/app/pkg/fitness"
	"healthtracker/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ImageStorage реализуется storage.MinIO
type ImageStorage interface {
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (key string, publicURL string, err error)
	DeleteImage(ctx context.Context, key string) error
	PublicURL(key string) string
}

type Handler struct {
	Repository *repository.Repository
	Config     *config.Config
	Storage    ImageStorage
	Metrics    *fitness.Service
	Coach      *coach.Coach
}

func NewHandler(r *repository.Repository, cfg *config.Config, storage ImageStorage, metrics *fitness.Service, c *coach.Coach) *Handler {
	return &Handler{
		Repository: r,
		Config:     cfg,
		Storage:    storage,
		Metrics:    metrics,
		Coach:      c,
	}
}

// RegisterHandler Функция, в которой мы отдельно регистрируем маршруты
func (h *Handler) RegisterHandler(router *gin.Engine) {
	router.GET("/", h.Index)
	router.GET("/healthz", h.Health)

	api := router.Group("/api")
	api.GET("/test", h.ApiTest)

	api.GET("/medications", h.ApiListMedications)
	api.GET("/medications/:id", h.ApiGetMedication)
	api.POST("/medications", h.ApiCreateMedication)
	api.PUT("/medications/:id", h.ApiUpdateMedication)
	api.PUT("/medications/:id/take", h.ApiTakeMedication)
	api.DELETE("/medications/:id", h.ApiDeleteMedication)
	api.POST("/medications/:id/image", h.ApiUploadMedicationImage)

	api.POST("/symptoms/analyze", h.ApiAnalyzeSymptoms)
	api.GET("/symptoms/conditions", h.ApiListConditions)

	api.GET("/metrics", h.ApiGetMetrics)

	api.POST("/coach/advice", h.ApiCoachAdvice)
	api.POST("/coach/recommendations", h.ApiCoachRecommendations)

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
}

// errorHandler для более удобного вывода ошибок
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.WithFields(logrus.Fields{
		"method": ctx.Request.Method,
		"path":   ctx.Request.URL.Path,
		"status": errorStatusCode,
	}).Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

// jsonResponse единый формат успешного ответа
func jsonResponse(ctx *gin.Context, data interface{}, count int64, filters gin.H) {
	jsonResponseWithStatus(ctx, http.StatusOK, data, count, filters)
}

func jsonResponseWithStatus(ctx *gin.Context, status int, data interface{}, count int64, filters gin.H) {
	ctx.JSON(status, gin.H{
		"status":  "ok",
		"data":    data,
		"count":   count,
		"filters": filters,
	})
}
