package models

import (
	"time"

	"gorm.io/gorm"
)

// Vote is one immutable ledger entry. The composite unique index on
// (voter_id, event_id) is what enforces one vote per voter per event; the
// ledger relies on the constraint-backed insert, never on a prior read.
type Vote struct {
	gorm.Model
	VoterID     uint `gorm:"column:voter_id;not null;uniqueIndex:idx_votes_voter_event" json:"voter_id"`
	EventID     uint `gorm:"column:event_id;not null;uniqueIndex:idx_votes_voter_event" json:"event_id"`
	CandidateID uint `gorm:"column:candidate_id;not null;index" json:"candidate_id"`
}

// TableName specifies the table name for Vote
func (Vote) TableName() string {
	return "votes"
}

// VoteRequest defines the input for casting a vote
type VoteRequest struct {
	CandidateID uint `json:"candidate_id" binding:"required"`
}

// VoteMessage is the event emitted to Kafka after a vote is accepted
type VoteMessage struct {
	VoterID     uint      `json:"voter_id"`
	EventID     uint      `json:"event_id"`
	CandidateID uint      `json:"candidate_id"`
	Weight      int       `json:"weight"`
	VotedAt     time.Time `json:"voted_at"`
}

// CandidatesResponse lists an event's candidates together with the voting
// state and, when a voter is known, whether they already voted and for whom.
type CandidatesResponse struct {
	Candidates          []*Candidate `json:"candidates"`
	VotingOpen          bool         `json:"voting_open"`
	UserHasVoted        bool         `json:"user_has_voted"`
	VotedForCandidateID *uint        `json:"voted_for_candidate_id"`
}

// VoteHistoryEntry is one row of a voter's voting history
type VoteHistoryEntry struct {
	EventName     string    `json:"event_name"`
	CandidateName string    `json:"candidate_name"`
	Weight        int       `json:"weight"`
	VotedAt       time.Time `json:"voted_at"`
}
