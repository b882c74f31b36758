package response

import (
	"errors"
	"net/http"

	"voting-service/internal/ports/models"
)

// StatusForError maps a business-rule failure to its stable HTTP status.
// Anything outside the taxonomy is an internal error.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrCandidateNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrVotingClosed),
		errors.Is(err, models.ErrNotEligible),
		errors.Is(err, models.ErrResultsNotPublic):
		return http.StatusForbidden
	case errors.Is(err, models.ErrDuplicateVote),
		errors.Is(err, models.ErrAlreadyPublished),
		errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
