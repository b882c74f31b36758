package handlers

import (
	"net/http"

	"voting-service/internal/ports/models"
	"voting-service/internal/server/service"
	"voting-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// @Summary Create an event
// @Description Create a voting event, optionally with its initial candidates
// @Tags events
// @Accept json
// @Produce json
// @Param request body models.CreateEventRequest true "Event details"
// @Success 201 {object} models.Event
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Failure 500 {object} map[string]string
// @Router /events [get]
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.GetEvents(c.Request.Context())
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// @Summary Get an event
// @Tags events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]string
// @Router /events/{event_id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}

// @Summary Update an event
// @Description Partial update of event metadata and flags
// @Tags events
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param request body models.UpdateEventRequest true "Fields to update"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /events/{event_id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}

// @Summary Delete an event
// @Description Delete an event and all of its candidates and votes
// @Tags events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /events/{event_id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// @Summary Replace an event's allow-list
// @Description Set the voters allowed to vote; an empty list opens the event to everyone
// @Tags events
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param request body models.UpdateVotersRequest true "Allowed voter ids"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /events/{event_id}/voters [put]
func (h *EventHandler) UpdateVoters(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req models.UpdateVotersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.eventService.UpdateAllowedVoters(c.Request.Context(), eventID, req.UserIDs); err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "voter list updated"})
}

// @Summary Publish an event's results
// @Description One-way transition; fails with 409 once published
// @Tags events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} models.PublishResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /events/{event_id}/publish [post]
func (h *EventHandler) PublishResults(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	resp, err := h.eventService.PublishResults(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
