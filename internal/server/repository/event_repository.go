package repository

import (
	"context"
	"errors"
	"time"

	"voting-service/internal/ports/models"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// CreateEvent creates a new event in the database
func (r *EventRepository) CreateEvent(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetEventByID retrieves a single event
func (r *EventRepository) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// GetEvents retrieves all events, newest first
func (r *EventRepository) GetEvents(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventsByIDs retrieves the events with the given ids
func (r *EventRepository) GetEventsByIDs(ctx context.Context, ids []uint) ([]*models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var events []*models.Event
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetClosedEvents retrieves events whose voting is closed, newest first
func (r *EventRepository) GetClosedEvents(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	if err := r.db.WithContext(ctx).
		Where("voting_open = ?", false).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateEvent persists event changes
func (r *EventRepository) UpdateEvent(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// DeleteEventCascade deletes an event together with its candidates, votes
// and allow-list in one transaction so no orphans survive.
func (r *EventRepository) DeleteEventCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Event{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrEventNotFound
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Candidate{}).Error; err != nil {
			return err
		}
		return tx.Where("event_id = ?", id).Delete(&models.EventVoter{}).Error
	})
}

// PublishResults flips results_published exactly once. The conditional
// update makes the transition one-way: a second call matches zero rows and
// the original timestamp is preserved.
func (r *EventRepository) PublishResults(ctx context.Context, id uint, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("id = ? AND results_published = ?", id, false).
		Updates(map[string]interface{}{
			"results_published":    true,
			"results_published_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ReplaceAllowedVoters swaps an event's allow-list for the given voter ids
func (r *EventRepository) ReplaceAllowedVoters(ctx context.Context, eventID uint, voterIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&models.EventVoter{}).Error; err != nil {
			return err
		}
		if len(voterIDs) == 0 {
			return nil
		}
		entries := make([]models.EventVoter, 0, len(voterIDs))
		for _, voterID := range voterIDs {
			entries = append(entries, models.EventVoter{EventID: eventID, VoterID: voterID})
		}
		return tx.Create(&entries).Error
	})
}

// GetAllowedVoters returns the voter ids on an event's allow-list
func (r *EventRepository) GetAllowedVoters(ctx context.Context, eventID uint) ([]uint, error) {
	var voterIDs []uint
	if err := r.db.WithContext(ctx).Model(&models.EventVoter{}).
		Where("event_id = ?", eventID).
		Pluck("voter_id", &voterIDs).Error; err != nil {
		return nil, err
	}
	return voterIDs, nil
}
