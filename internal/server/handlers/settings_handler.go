package handlers

import (
	"net/http"

	"voting-service/internal/ports/models"
	"voting-service/internal/server/service"
	"voting-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// @Summary Get global vote weight settings
// @Tags settings
// @Produce json
// @Success 200 {object} models.WeightSettings
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /settings/vote-weights [get]
func (h *SettingsHandler) GetWeightSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// @Summary Update global vote weight settings
// @Description The user weight is stored but regular votes always count as 1
// @Tags settings
// @Accept json
// @Produce json
// @Param request body models.UpdateWeightSettingsRequest true "New weights"
// @Success 200 {object} models.WeightSettings
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /settings/vote-weights [put]
func (h *SettingsHandler) UpdateWeightSettings(c *gin.Context) {
	var req models.UpdateWeightSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}
