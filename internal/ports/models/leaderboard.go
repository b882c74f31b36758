package models

import (
	"time"
)

// LeaderboardCandidate is one ranked entry of an event's weighted tally
type LeaderboardCandidate struct {
	Candidate          *Candidate `json:"candidate"`
	TotalVotes         int        `json:"total_votes"`
	TotalWeightedVotes int        `json:"total_weighted_votes"`
	RegularVotes       int        `json:"regular_votes"`
	AdminVotes         int        `json:"admin_votes"`
	Percentage         float64    `json:"percentage"`
}

// LeaderboardResponse is the full weighted tally view over one event
type LeaderboardResponse struct {
	Event              *Event                  `json:"event"`
	Candidates         []*LeaderboardCandidate `json:"candidates"`
	TotalVoters        int                     `json:"total_voters"`
	TotalWeightedVotes int                     `json:"total_weighted_votes"`
	LastUpdated        time.Time               `json:"last_updated"`
}

// EventResult pairs a closed event with its winners by raw vote count
type EventResult struct {
	Event      *Event       `json:"event"`
	Winners    []*Candidate `json:"winners"`
	Candidates []*Candidate `json:"candidates"`
}

// ExportRow is one line of the per-candidate results export consumed by the
// CSV formatter: who voted for the candidate, at what weight, and when.
type ExportRow struct {
	EventName     string
	CandidateName string
	VoteCount     int
	VoteDetails   []ExportVoteDetail
}

// ExportVoteDetail describes a single vote inside an export row
type ExportVoteDetail struct {
	VoterName  string
	VoterEmail string
	Weight     int
	VotedAt    time.Time
}
