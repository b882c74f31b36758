package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a bounded voting round with its own candidates, allow-list and
// open/closed state. VotingOpen and ResultsPublished are independent flags:
// results may be published while voting is still open.
type Event struct {
	gorm.Model
	Name        string     `gorm:"column:name;size:255;not null" json:"name"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	ImageURL    string     `gorm:"column:image_url;size:512" json:"image_url"`
	VotingOpen  bool       `gorm:"column:voting_open;default:false" json:"voting_open"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date"`

	// DefaultVoteWeight overrides the global admin vote weight for this
	// event when set.
	DefaultVoteWeight *int `gorm:"column:default_vote_weight" json:"default_vote_weight"`

	// ResultsPublishedAt is set exactly once; publishing is one-way.
	ResultsPublished   bool       `gorm:"column:results_published;default:false" json:"results_published"`
	ResultsPublishedAt *time.Time `gorm:"column:results_published_at" json:"results_published_at"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// EventVoter is one entry of an event's allow-list. An event with no entries
// is open to every voter; a non-empty list restricts voting to its members.
type EventVoter struct {
	gorm.Model
	EventID uint `gorm:"column:event_id;not null;uniqueIndex:idx_event_voters_pair" json:"event_id"`
	VoterID uint `gorm:"column:voter_id;not null;uniqueIndex:idx_event_voters_pair" json:"voter_id"`
}

// TableName specifies the table name for EventVoter
func (EventVoter) TableName() string {
	return "event_voters"
}

// CreateEventRequest defines the input for creating an event, optionally
// together with its initial candidates.
type CreateEventRequest struct {
	Name              string                `json:"name" binding:"required"`
	Description       string                `json:"description"`
	ImageURL          string                `json:"image_url"`
	VotingOpen        bool                  `json:"voting_open"`
	StartDate         *time.Time            `json:"start_date"`
	EndDate           *time.Time            `json:"end_date"`
	DefaultVoteWeight *int                  `json:"default_vote_weight"`
	Candidates        []AddCandidateRequest `json:"candidates"`
}

// UpdateEventRequest defines the partial update input for an event
type UpdateEventRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	ImageURL          *string `json:"image_url"`
	VotingOpen        *bool   `json:"voting_open"`
	DefaultVoteWeight *int    `json:"default_vote_weight"`
}

// UpdateVotersRequest replaces an event's allow-list
type UpdateVotersRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required"`
}

// PublishResponse is returned when an event's results are published
type PublishResponse struct {
	Status      string    `json:"status"`
	PublishedAt time.Time `json:"published_at"`
}
