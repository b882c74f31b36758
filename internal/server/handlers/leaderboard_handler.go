package handlers

import (
	"net/http"

	"voting-service/internal/server/service"
	"voting-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// @Summary Get an event's published leaderboard
// @Description Weighted ranking; available once the event's results are published
// @Tags leaderboard
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} models.LeaderboardResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{event_id}/leaderboard [get]
func (h *LeaderboardHandler) GetPublishedLeaderboard(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	leaderboard, err := h.leaderboardService.GetPublishedLeaderboard(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}

// @Summary Get an event's live leaderboard
// @Description Live weighted ranking regardless of publish state
// @Tags leaderboard
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} models.LeaderboardResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /events/{event_id}/leaderboard/live [get]
func (h *LeaderboardHandler) GetLiveLeaderboard(c *gin.Context) {
	eventID, ok := parseIDParam(c, "event_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	leaderboard, err := h.leaderboardService.GetLeaderboard(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}

// @Summary List results of closed events
// @Description Events whose voting has closed, each with its winners by raw vote count
// @Tags leaderboard
// @Produce json
// @Success 200 {array} models.EventResult
// @Failure 500 {object} map[string]string
// @Router /results [get]
func (h *LeaderboardHandler) GetResults(c *gin.Context) {
	results, err := h.leaderboardService.GetResults(c.Request.Context())
	if err != nil {
		c.JSON(response.StatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}
