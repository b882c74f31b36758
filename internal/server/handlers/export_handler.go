package handlers

import (
	"fmt"
	"net/http"

	"voting-service/internal/server/service"
	"voting-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService *service.ExportService
}

func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// @Summary Export an event's results as CSV
// @Tags export
// @Produce text/csv
// @Param event_id path int true "Event ID"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /events/{event_id}/export [get]
func (h *ExportHandler) ExportResults(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, rows, err := h.exportService.BuildRows(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, service.ExportFilename(event)))
	c.Status(http.StatusOK)

	if err := h.exportService.WriteCSV(c.Writer, event, rows); err != nil {
		// Headers are gone; nothing better to do than abort the stream.
		c.Abort()
	}
}
