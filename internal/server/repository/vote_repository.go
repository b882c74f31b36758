package repository

import (
	"context"
	"errors"

	"voting-service/internal/ports/models"

	"gorm.io/gorm"
)

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// CastVote appends a vote record and increments the candidate's raw counter
// in one transaction. The unique index on (voter_id, event_id) is the sole
// duplicate gate: two concurrent casts by the same voter race on the insert,
// the loser gets a duplicate-key error and the counter is bumped exactly
// once. There is no read-before-write.
func (r *VoteRepository) CastVote(ctx context.Context, vote *models.Vote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vote).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ErrDuplicateVote
			}
			return err
		}

		res := tx.Model(&models.Candidate{}).
			Where("id = ? AND event_id = ?", vote.CandidateID, vote.EventID).
			UpdateColumn("votes", gorm.Expr("votes + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrCandidateNotFound
		}
		return nil
	})
}

// GetVoteByVoterAndEvent returns the voter's vote in an event, or nil when
// they have not voted.
func (r *VoteRepository) GetVoteByVoterAndEvent(ctx context.Context, voterID, eventID uint) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.WithContext(ctx).
		Where("voter_id = ? AND event_id = ?", voterID, eventID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

// GetVotesByEvent retrieves all vote records for an event
func (r *VoteRepository) GetVotesByEvent(ctx context.Context, eventID uint) ([]*models.Vote, error) {
	var votes []*models.Vote
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// GetVotesByVoter retrieves a voter's votes across all events, newest first
func (r *VoteRepository) GetVotesByVoter(ctx context.Context, voterID uint) ([]*models.Vote, error) {
	var votes []*models.Vote
	if err := r.db.WithContext(ctx).
		Where("voter_id = ?", voterID).
		Order("created_at DESC").
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}
