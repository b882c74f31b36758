package handlers

import (
	"net/http"

	"voting-service/internal/ports/models"
	"voting-service/internal/server/middleware"
	"voting-service/internal/server/service"
	"voting-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	eventService  *service.EventService
	votingService *service.VotingService
}

func NewCandidateHandler(eventService *service.EventService, votingService *service.VotingService) *CandidateHandler {
	return &CandidateHandler{
		eventService:  eventService,
		votingService: votingService,
	}
}

// @Summary Add a candidate to an event
// @Tags candidates
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param request body models.AddCandidateRequest true "Candidate details"
// @Success 201 {object} models.Candidate
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /events/{event_id}/candidates [post]
func (h *CandidateHandler) AddCandidate(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req models.AddCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate, err := h.eventService.AddCandidate(c.Request.Context(), eventID, req)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

// @Summary List all of an event's candidates (admin view)
// @Description Plain candidate list with raw vote counters, regardless of publish state
// @Tags candidates
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {array} models.Candidate
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /events/{event_id}/candidates/all [get]
func (h *CandidateHandler) GetAllCandidates(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	candidates, err := h.eventService.GetCandidates(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, candidates)
}

// @Summary List an event's candidates
// @Description Candidates with voting state; when the caller is authenticated the response says whether they already voted and for whom
// @Tags candidates
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} models.CandidatesResponse
// @Failure 404 {object} map[string]string
// @Router /events/{event_id}/candidates [get]
func (h *CandidateHandler) GetCandidates(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var voterID *uint
	if user, err := middleware.GetUserFromContext(c.Request.Context()); err == nil {
		voterID = &user.ID
	}

	resp, err := h.votingService.GetEventCandidates(c.Request.Context(), eventID, voterID)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
