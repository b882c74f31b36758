package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"voting-service/internal/ports/models"
	"voting-service/pkg/logger"

	"go.uber.org/zap"
)

// LeaderboardService computes the weighted ranking over an event's
// candidates on demand. The tally is a pure read over the vote ledger; a
// short-lived cache in front of it absorbs request bursts.
type LeaderboardService struct {
	eventRepo     EventRepository
	candidateRepo CandidateRepository
	voteRepo      VoteRepository
	userRepo      UserRepository
	settingsRepo  SettingsRepository
	cache         LeaderboardCache
}

func NewLeaderboardService(
	eventRepo EventRepository,
	candidateRepo CandidateRepository,
	voteRepo VoteRepository,
	userRepo UserRepository,
	settingsRepo SettingsRepository,
	cache LeaderboardCache,
) *LeaderboardService {
	return &LeaderboardService{
		eventRepo:     eventRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
		userRepo:      userRepo,
		settingsRepo:  settingsRepo,
		cache:         cache,
	}
}

// ComputeLeaderboard builds the weighted tally for an event from scratch.
// Ordering is deterministic: weighted votes descending, then raw votes
// descending, then candidate creation order.
func (s *LeaderboardService) ComputeLeaderboard(ctx context.Context, eventID uint) (*models.LeaderboardResponse, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.candidateRepo.GetCandidatesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	votes, err := s.voteRepo.GetVotesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weight settings: %w", err)
	}

	voterIDs := make([]uint, 0, len(votes))
	for _, vote := range votes {
		voterIDs = append(voterIDs, vote.VoterID)
	}
	voters, err := s.userRepo.GetUsersByIDs(ctx, voterIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get voters: %w", err)
	}
	rolesByVoter := make(map[uint]string, len(voters))
	for _, voter := range voters {
		rolesByVoter[voter.ID] = voter.Role
	}

	entries := make([]*models.LeaderboardCandidate, 0, len(candidates))
	entriesByCandidate := make(map[uint]*models.LeaderboardCandidate, len(candidates))
	for _, candidate := range candidates {
		entry := &models.LeaderboardCandidate{Candidate: candidate}
		entries = append(entries, entry)
		entriesByCandidate[candidate.ID] = entry
	}

	totalWeighted := 0
	for _, vote := range votes {
		entry, ok := entriesByCandidate[vote.CandidateID]
		if !ok {
			continue
		}

		// Voters deleted after voting count at regular weight.
		role := models.RoleUser
		if r, ok := rolesByVoter[vote.VoterID]; ok {
			role = r
		}
		weight := ResolveWeight(role, event.DefaultVoteWeight, settings)

		entry.TotalVotes++
		entry.TotalWeightedVotes += weight
		if role == models.RoleAdmin {
			entry.AdminVotes++
		} else {
			entry.RegularVotes++
		}
		totalWeighted += weight
	}

	for _, entry := range entries {
		if totalWeighted > 0 {
			entry.Percentage = float64(entry.TotalWeightedVotes) / float64(totalWeighted) * 100
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalWeightedVotes != entries[j].TotalWeightedVotes {
			return entries[i].TotalWeightedVotes > entries[j].TotalWeightedVotes
		}
		if entries[i].TotalVotes != entries[j].TotalVotes {
			return entries[i].TotalVotes > entries[j].TotalVotes
		}
		return entries[i].Candidate.ID < entries[j].Candidate.ID
	})

	return &models.LeaderboardResponse{
		Event:              event,
		Candidates:         entries,
		TotalVoters:        len(votes),
		TotalWeightedVotes: totalWeighted,
		LastUpdated:        time.Now().UTC(),
	}, nil
}

// GetLeaderboard returns the tally for an event, served from cache when a
// fresh copy is available.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, eventID uint) (*models.LeaderboardResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, eventID)
		if err != nil {
			logger.Logger.Warn("leaderboard cache read failed",
				zap.Uint("event_id", eventID), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	leaderboard, err := s.ComputeLeaderboard(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, eventID, leaderboard); err != nil {
			logger.Logger.Warn("leaderboard cache write failed",
				zap.Uint("event_id", eventID), zap.Error(err))
		}
	}
	return leaderboard, nil
}

// GetPublishedLeaderboard serves the tally only once the event's results
// have been published.
func (s *LeaderboardService) GetPublishedLeaderboard(ctx context.Context, eventID uint) (*models.LeaderboardResponse, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.ResultsPublished {
		return nil, models.ErrResultsNotPublic
	}
	return s.GetLeaderboard(ctx, eventID)
}

// InvalidateCache drops the cached tally for an event
func (s *LeaderboardService) InvalidateCache(ctx context.Context, eventID uint) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, eventID)
}

// GetResults lists events whose voting has closed, each with its winners by
// raw vote count.
func (s *LeaderboardService) GetResults(ctx context.Context) ([]*models.EventResult, error) {
	events, err := s.eventRepo.GetClosedEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get closed events: %w", err)
	}

	results := make([]*models.EventResult, 0, len(events))
	for _, event := range events {
		candidates, err := s.candidateRepo.GetCandidatesByEvent(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get candidates: %w", err)
		}

		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].Votes != candidates[j].Votes {
				return candidates[i].Votes > candidates[j].Votes
			}
			return candidates[i].ID < candidates[j].ID
		})

		var maxVotes uint
		if len(candidates) > 0 {
			maxVotes = candidates[0].Votes
		}
		winners := make([]*models.Candidate, 0)
		if maxVotes > 0 {
			for _, candidate := range candidates {
				if candidate.Votes == maxVotes {
					winners = append(winners, candidate)
				}
			}
		}

		results = append(results, &models.EventResult{
			Event:      event,
			Winners:    winners,
			Candidates: candidates,
		})
	}

	return results, nil
}
