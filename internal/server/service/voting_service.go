package service

import (
	"context"
	"fmt"
	"time"

	"voting-service/internal/ports/models"
	"voting-service/pkg/logger"

	"go.uber.org/zap"
)

// VotingService is the vote ledger's front door: it gates eligibility,
// resolves the vote's weight and delegates the atomic insert+increment to
// the repository. Side effects after a committed vote (kafka emit, cache
// invalidation, live broadcast) are best-effort and never fail the cast.
type VotingService struct {
	eventRepo     EventRepository
	candidateRepo CandidateRepository
	voteRepo      VoteRepository
	settingsRepo  SettingsRepository
	leaderboard   *LeaderboardService
	publisher     VotePublisher
	broadcaster   TallyBroadcaster
}

func NewVotingService(
	eventRepo EventRepository,
	candidateRepo CandidateRepository,
	voteRepo VoteRepository,
	settingsRepo SettingsRepository,
	leaderboard *LeaderboardService,
	publisher VotePublisher,
	broadcaster TallyBroadcaster,
) *VotingService {
	return &VotingService{
		eventRepo:     eventRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
		settingsRepo:  settingsRepo,
		leaderboard:   leaderboard,
		publisher:     publisher,
		broadcaster:   broadcaster,
	}
}

// CheckEligibility decides whether a voter may vote in an event. An empty
// allow-list means the event is open to everyone.
func (s *VotingService) CheckEligibility(ctx context.Context, eventID, voterID uint) error {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	return s.checkEligibility(ctx, event, voterID)
}

func (s *VotingService) checkEligibility(ctx context.Context, event *models.Event, voterID uint) error {
	if !event.VotingOpen {
		return models.ErrVotingClosed
	}

	allowed, err := s.eventRepo.GetAllowedVoters(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("failed to load allowed voters: %w", err)
	}
	if len(allowed) == 0 {
		return nil
	}
	for _, id := range allowed {
		if id == voterID {
			return nil
		}
	}
	return models.ErrNotEligible
}

// CastVote accepts or rejects one vote and returns the weight it will carry
// in the tally. The duplicate check is not done here: the repository's
// constraint-backed insert is the single gate, so concurrent submissions by
// the same voter cannot both succeed.
func (s *VotingService) CastVote(ctx context.Context, eventID, candidateID uint, voter *models.User) (int, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return 0, err
	}

	if err := s.checkEligibility(ctx, event, voter.ID); err != nil {
		return 0, err
	}

	candidate, err := s.candidateRepo.GetCandidateByID(ctx, candidateID)
	if err != nil {
		return 0, err
	}
	if candidate.EventID != event.ID {
		return 0, models.ErrCandidateNotFound
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load weight settings: %w", err)
	}
	weight := ResolveWeight(voter.Role, event.DefaultVoteWeight, settings)

	vote := &models.Vote{
		VoterID:     voter.ID,
		EventID:     event.ID,
		CandidateID: candidate.ID,
	}
	if err := s.voteRepo.CastVote(ctx, vote); err != nil {
		return 0, err
	}

	s.afterVoteAccepted(ctx, event.ID, models.VoteMessage{
		VoterID:     voter.ID,
		EventID:     event.ID,
		CandidateID: candidate.ID,
		Weight:      weight,
		VotedAt:     time.Now().UTC(),
	})

	return weight, nil
}

// afterVoteAccepted runs the post-commit side effects. The vote is already
// durable at this point; failures here are logged and swallowed.
func (s *VotingService) afterVoteAccepted(ctx context.Context, eventID uint, msg models.VoteMessage) {
	if s.leaderboard != nil {
		if err := s.leaderboard.InvalidateCache(ctx, eventID); err != nil {
			logger.Logger.Warn("failed to invalidate leaderboard cache",
				zap.Uint("event_id", eventID), zap.Error(err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishVote(ctx, msg); err != nil {
			logger.Logger.Warn("failed to publish vote message",
				zap.Uint("event_id", eventID), zap.Error(err))
		}
	}

	if s.broadcaster != nil && s.leaderboard != nil {
		leaderboard, err := s.leaderboard.ComputeLeaderboard(ctx, eventID)
		if err != nil {
			logger.Logger.Warn("failed to compute leaderboard for broadcast",
				zap.Uint("event_id", eventID), zap.Error(err))
			return
		}
		s.broadcaster.BroadcastLeaderboard(eventID, leaderboard)
	}
}

// GetEventCandidates returns an event's candidates with the voting state
// and, when a voter is known, whether they already voted and for whom.
func (s *VotingService) GetEventCandidates(ctx context.Context, eventID uint, voterID *uint) (*models.CandidatesResponse, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.candidateRepo.GetCandidatesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}

	resp := &models.CandidatesResponse{
		Candidates: candidates,
		VotingOpen: event.VotingOpen,
	}

	if voterID != nil {
		vote, err := s.voteRepo.GetVoteByVoterAndEvent(ctx, *voterID, eventID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up existing vote: %w", err)
		}
		if vote != nil {
			resp.UserHasVoted = true
			resp.VotedForCandidateID = &vote.CandidateID
		}
	}

	return resp, nil
}

// GetVotingHistory returns the voter's votes across all events, newest
// first, with the weight each vote carries under the owning event's
// configuration.
func (s *VotingService) GetVotingHistory(ctx context.Context, voter *models.User) ([]*models.VoteHistoryEntry, error) {
	votes, err := s.voteRepo.GetVotesByVoter(ctx, voter.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}
	if len(votes) == 0 {
		return []*models.VoteHistoryEntry{}, nil
	}

	eventIDs := make([]uint, 0, len(votes))
	candidateIDs := make([]uint, 0, len(votes))
	for _, vote := range votes {
		eventIDs = append(eventIDs, vote.EventID)
		candidateIDs = append(candidateIDs, vote.CandidateID)
	}

	events, err := s.eventRepo.GetEventsByIDs(ctx, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	candidates, err := s.candidateRepo.GetCandidatesByIDs(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weight settings: %w", err)
	}

	eventsByID := make(map[uint]*models.Event, len(events))
	for _, event := range events {
		eventsByID[event.ID] = event
	}
	candidatesByID := make(map[uint]*models.Candidate, len(candidates))
	for _, candidate := range candidates {
		candidatesByID[candidate.ID] = candidate
	}

	history := make([]*models.VoteHistoryEntry, 0, len(votes))
	for _, vote := range votes {
		entry := &models.VoteHistoryEntry{
			VotedAt: vote.CreatedAt,
			Weight:  1,
		}
		if event, ok := eventsByID[vote.EventID]; ok {
			entry.EventName = event.Name
			entry.Weight = ResolveWeight(voter.Role, event.DefaultVoteWeight, settings)
		}
		if candidate, ok := candidatesByID[vote.CandidateID]; ok {
			entry.CandidateName = candidate.Name
		}
		history = append(history, entry)
	}

	return history, nil
}
