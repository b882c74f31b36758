package handlers

import (
	"net/http"

	"voting-service/internal/ports/models"
	"voting-service/internal/server/middleware"
	"voting-service/internal/server/service"
	"voting-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votingService *service.VotingService
}

func NewVoteHandler(votingService *service.VotingService) *VoteHandler {
	return &VoteHandler{votingService: votingService}
}

// @Summary Cast a vote
// @Description Cast the caller's single vote in an event. 403 when voting is closed or the caller is not on the allow-list, 409 when they already voted.
// @Tags votes
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param request body models.VoteRequest true "Chosen candidate"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /events/{event_id}/vote [post]
func (h *VoteHandler) CastVote(c *gin.Context) {
	user, err := middleware.GetUserFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weight, err := h.votingService.CastVote(c.Request.Context(), eventID, req.CandidateID, user)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted", "weight": weight})
}

// @Summary Get the caller's voting history
// @Tags votes
// @Produce json
// @Success 200 {array} models.VoteHistoryEntry
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /profile/votes [get]
func (h *VoteHandler) GetVotingHistory(c *gin.Context) {
	user, err := middleware.GetUserFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	history, err := h.votingService.GetVotingHistory(c.Request.Context(), user)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}
