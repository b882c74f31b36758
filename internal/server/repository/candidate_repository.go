package repository

import (
	"context"
	"errors"

	"voting-service/internal/ports/models"

	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// CreateCandidate creates a new candidate in the database
func (r *CandidateRepository) CreateCandidate(ctx context.Context, candidate *models.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

// CreateCandidates creates several candidates at once
func (r *CandidateRepository) CreateCandidates(ctx context.Context, candidates []*models.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&candidates).Error
}

// GetCandidateByID retrieves a single candidate
func (r *CandidateRepository) GetCandidateByID(ctx context.Context, id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.WithContext(ctx).First(&candidate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCandidateNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

// GetCandidatesByIDs retrieves the candidates with the given ids
func (r *CandidateRepository) GetCandidatesByIDs(ctx context.Context, ids []uint) ([]*models.Candidate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var candidates []*models.Candidate
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// GetCandidatesByEvent retrieves an event's candidates in creation order
func (r *CandidateRepository) GetCandidatesByEvent(ctx context.Context, eventID uint) ([]*models.Candidate, error) {
	var candidates []*models.Candidate
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}
