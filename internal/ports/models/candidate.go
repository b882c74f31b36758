package models

import (
	"gorm.io/gorm"
)

// Candidate is an option voters can choose within one event. Votes is the
// raw denormalized counter; it is mutated only by the vote ledger and
// carries no weighting.
type Candidate struct {
	gorm.Model
	EventID     uint   `gorm:"column:event_id;not null;index" json:"event_id"`
	Name        string `gorm:"column:name;size:255;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	ImageURL    string `gorm:"column:image_url;size:512" json:"image_url"`
	Votes       uint   `gorm:"column:votes;default:0" json:"votes"`
}

// TableName specifies the table name for Candidate
func (Candidate) TableName() string {
	return "candidates"
}

// AddCandidateRequest defines the input for adding a candidate to an event
type AddCandidateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
