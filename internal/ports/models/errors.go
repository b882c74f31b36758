package models

import (
	"errors"
)

// Business-rule failures of the voting engine. Handlers map these to stable
// HTTP statuses; services return them verbatim and never retry them.
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrVotingClosed      = errors.New("voting for this event is closed")
	ErrNotEligible       = errors.New("not eligible to vote in this event")
	ErrDuplicateVote     = errors.New("already voted in this event")
	ErrAlreadyPublished  = errors.New("results already published")
	ErrResultsNotPublic  = errors.New("results not published yet")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
)
