package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"healthtracker/internal/app/ds"
	"healthtracker/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type medicationView struct {
	ds.Medication
	ImageURL string `json:"image_url,omitempty"`
}

func (h *Handler) medicationView(med ds.Medication) medicationView {
	v := medicationView{Medication: med}
	if med.ImageKey != "" && h.Storage != nil {
		v.ImageURL = h.Storage.PublicURL(med.ImageKey)
	}
	return v
}

// medicationStatus переводит ошибку репозитория в HTTP-статус
func medicationStatus(err error) int {
	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// GET /api/medications
func (h *Handler) ApiListMedications(ctx *gin.Context) {
	meds, err := h.Repository.ListMedications()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	out := make([]medicationView, 0, len(meds))
	for _, m := range meds {
		out = append(out, h.medicationView(m))
	}
	jsonResponse(ctx, out, int64(len(out)), gin.H{})
}

// GET /api/medications/:id
func (h *Handler) ApiGetMedication(ctx *gin.Context) {
	med, err := h.Repository.GetMedication(ctx.Param("id"))
	if err != nil {
		h.errorHandler(ctx, medicationStatus(err), err)
		return
	}
	jsonResponse(ctx, h.medicationView(*med), 1, gin.H{"id": med.ID})
}

// POST /api/medications
func (h *Handler) ApiCreateMedication(ctx *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		Dosage     string `json:"dosage" binding:"required"`
		Frequency  string `json:"frequency" binding:"required"`
		TimeToTake string `json:"time_to_take" binding:"required"`
		Notes      string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if err := requireText(map[string]string{
		"name":         req.Name,
		"dosage":       req.Dosage,
		"frequency":    req.Frequency,
		"time_to_take": req.TimeToTake,
	}); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	med := ds.Medication{
		Name:       strings.TrimSpace(req.Name),
		Dosage:     strings.TrimSpace(req.Dosage),
		Frequency:  strings.TrimSpace(req.Frequency),
		TimeToTake: strings.TrimSpace(req.TimeToTake),
		Notes:      req.Notes,
	}
	if err := h.Repository.CreateMedication(&med); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponseWithStatus(ctx, http.StatusCreated, h.medicationView(med), 1, gin.H{})
}

// PUT /api/medications/:id
func (h *Handler) ApiUpdateMedication(ctx *gin.Context) {
	var req struct {
		Name       *string `json:"name"`
		Dosage     *string `json:"dosage"`
		Frequency  *string `json:"frequency"`
		TimeToTake *string `json:"time_to_take"`
		Notes      *string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	fields := map[string]interface{}{}
	required := map[string]string{}
	for column, value := range map[string]*string{
		"name":         req.Name,
		"dosage":       req.Dosage,
		"frequency":    req.Frequency,
		"time_to_take": req.TimeToTake,
	} {
		if value != nil {
			required[column] = *value
			fields[column] = strings.TrimSpace(*value)
		}
	}
	if err := requireText(required); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	med, err := h.Repository.UpdateMedication(ctx.Param("id"), fields)
	if err != nil {
		h.errorHandler(ctx, medicationStatus(err), err)
		return
	}
	jsonResponse(ctx, h.medicationView(*med), 1, gin.H{"id": med.ID})
}

// PUT /api/medications/:id/take
func (h *Handler) ApiTakeMedication(ctx *gin.Context) {
	med, err := h.Repository.MarkMedicationTaken(ctx.Param("id"), time.Now().UTC())
	if err != nil {
		h.errorHandler(ctx, medicationStatus(err), err)
		return
	}
	jsonResponse(ctx, h.medicationView(*med), 1, gin.H{"id": med.ID})
}

// DELETE /api/medications/:id
func (h *Handler) ApiDeleteMedication(ctx *gin.Context) {
	med, err := h.Repository.DeleteMedication(ctx.Param("id"))
	if err != nil {
		h.errorHandler(ctx, medicationStatus(err), err)
		return
	}
	if med.ImageKey != "" && h.Storage != nil {
		if err := h.Storage.DeleteImage(ctx.Request.Context(), med.ImageKey); err != nil {
			logrus.WithError(err).WithField("key", med.ImageKey).Warn("failed to delete medication image")
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Medication deleted successfully"})
}

// POST /api/medications/:id/image
func (h *Handler) ApiUploadMedicationImage(ctx *gin.Context) {
	if h.Storage == nil {
		h.errorHandler(ctx, http.StatusServiceUnavailable, errors.New("image storage is not configured"))
		return
	}

	id := ctx.Param("id")
	med, err := h.Repository.GetMedication(id)
	if err != nil {
		h.errorHandler(ctx, medicationStatus(err), err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		file, err = ctx.FormFile("image")
	}
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, fmt.Errorf("image file is required: %w", err))
		return
	}

	key, _, err := h.Storage.UploadImage(ctx.Request.Context(), file, "medications/"+id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if err := h.Repository.UpdateMedicationImage(id, key); err != nil {
		// на новый объект никто не ссылается, убираем его
		if delErr := h.Storage.DeleteImage(ctx.Request.Context(), key); delErr != nil {
			logrus.WithError(delErr).WithField("key", key).Warn("failed to delete orphaned medication image")
		}
		h.errorHandler(ctx, medicationStatus(err), err)
		return
	}

	if med.ImageKey != "" && med.ImageKey != key {
		if err := h.Storage.DeleteImage(ctx.Request.Context(), med.ImageKey); err != nil {
			logrus.WithError(err).WithField("key", med.ImageKey).Warn("failed to delete previous medication image")
		}
	}

	med.ImageKey = key
	jsonResponse(ctx, h.medicationView(*med), 1, gin.H{"id": id})
}

// requireText проверяет, что обязательные поля не пустые после обрезки пробелов
func requireText(fields map[string]string) error {
	for _, name := range []string{"name", "dosage", "frequency", "time_to_take"} {
		value, ok := fields[name]
		if ok && strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}
