package service

import (
	"context"
	"fmt"
	"time"

	"voting-service/internal/ports/models"
)

// EventService owns event lifecycle: creation with initial candidates,
// metadata updates, the allow-list, the one-way results publish and the
// cascading delete.
type EventService struct {
	eventRepo     EventRepository
	candidateRepo CandidateRepository
	leaderboard   *LeaderboardService
}

func NewEventService(eventRepo EventRepository, candidateRepo CandidateRepository, leaderboard *LeaderboardService) *EventService {
	return &EventService{
		eventRepo:     eventRepo,
		candidateRepo: candidateRepo,
		leaderboard:   leaderboard,
	}
}

// CreateEvent creates an event, optionally with its initial candidates
func (s *EventService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Name:              req.Name,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		VotingOpen:        req.VotingOpen,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		DefaultVoteWeight: req.DefaultVoteWeight,
	}
	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if len(req.Candidates) > 0 {
		candidates := make([]*models.Candidate, 0, len(req.Candidates))
		for _, c := range req.Candidates {
			candidates = append(candidates, &models.Candidate{
				EventID:     event.ID,
				Name:        c.Name,
				Description: c.Description,
				ImageURL:    c.ImageURL,
			})
		}
		if err := s.candidateRepo.CreateCandidates(ctx, candidates); err != nil {
			return nil, fmt.Errorf("failed to create candidates: %w", err)
		}
	}

	return event, nil
}

// GetEvent retrieves a single event
func (s *EventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	return s.eventRepo.GetEventByID(ctx, id)
}

// GetEvents retrieves all events
func (s *EventService) GetEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.eventRepo.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// UpdateEvent applies a partial update to an event's metadata
func (s *EventService) UpdateEvent(ctx context.Context, id uint, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if req.VotingOpen != nil {
		event.VotingOpen = *req.VotingOpen
	}
	if req.DefaultVoteWeight != nil {
		event.DefaultVoteWeight = req.DefaultVoteWeight
	}

	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	if s.leaderboard != nil {
		_ = s.leaderboard.InvalidateCache(ctx, id)
	}
	return event, nil
}

// DeleteEvent removes an event and everything hanging off it
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.eventRepo.DeleteEventCascade(ctx, id); err != nil {
		return err
	}
	if s.leaderboard != nil {
		_ = s.leaderboard.InvalidateCache(ctx, id)
	}
	return nil
}

// AddCandidate adds a candidate to an event
func (s *EventService) AddCandidate(ctx context.Context, eventID uint, req models.AddCandidateRequest) (*models.Candidate, error) {
	if _, err := s.eventRepo.GetEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	candidate := &models.Candidate{
		EventID:     eventID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.candidateRepo.CreateCandidate(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return candidate, nil
}

// GetCandidates returns an event's candidates in creation order
func (s *EventService) GetCandidates(ctx context.Context, eventID uint) ([]*models.Candidate, error) {
	if _, err := s.eventRepo.GetEventByID(ctx, eventID); err != nil {
		return nil, err
	}
	candidates, err := s.candidateRepo.GetCandidatesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	return candidates, nil
}

// UpdateAllowedVoters replaces an event's allow-list
func (s *EventService) UpdateAllowedVoters(ctx context.Context, eventID uint, voterIDs []uint) error {
	if _, err := s.eventRepo.GetEventByID(ctx, eventID); err != nil {
		return err
	}
	if err := s.eventRepo.ReplaceAllowedVoters(ctx, eventID, voterIDs); err != nil {
		return fmt.Errorf("failed to replace allowed voters: %w", err)
	}
	return nil
}

// PublishResults marks an event's results as externally visible. The
// transition is one-way; a second call fails with ErrAlreadyPublished and
// the original timestamp is never overwritten. Voting state is untouched.
func (s *EventService) PublishResults(ctx context.Context, eventID uint) (*models.PublishResponse, error) {
	if _, err := s.eventRepo.GetEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	publishedAt := time.Now().UTC()
	published, err := s.eventRepo.PublishResults(ctx, eventID, publishedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to publish results: %w", err)
	}
	if !published {
		return nil, models.ErrAlreadyPublished
	}

	return &models.PublishResponse{
		Status:      "published",
		PublishedAt: publishedAt,
	}, nil
}
