package service

import (
	"context"
	"time"

	"voting-service/internal/ports/models"
)

// Storage seams consumed by the services. The gorm repositories in
// internal/server/repository implement them; tests substitute fakes.

type EventRepository interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEventByID(ctx context.Context, id uint) (*models.Event, error)
	GetEvents(ctx context.Context) ([]*models.Event, error)
	GetEventsByIDs(ctx context.Context, ids []uint) ([]*models.Event, error)
	GetClosedEvents(ctx context.Context) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEventCascade(ctx context.Context, id uint) error
	PublishResults(ctx context.Context, id uint, at time.Time) (bool, error)
	ReplaceAllowedVoters(ctx context.Context, eventID uint, voterIDs []uint) error
	GetAllowedVoters(ctx context.Context, eventID uint) ([]uint, error)
}

type CandidateRepository interface {
	CreateCandidate(ctx context.Context, candidate *models.Candidate) error
	CreateCandidates(ctx context.Context, candidates []*models.Candidate) error
	GetCandidateByID(ctx context.Context, id uint) (*models.Candidate, error)
	GetCandidatesByIDs(ctx context.Context, ids []uint) ([]*models.Candidate, error)
	GetCandidatesByEvent(ctx context.Context, eventID uint) ([]*models.Candidate, error)
}

type VoteRepository interface {
	CastVote(ctx context.Context, vote *models.Vote) error
	GetVoteByVoterAndEvent(ctx context.Context, voterID, eventID uint) (*models.Vote, error)
	GetVotesByEvent(ctx context.Context, eventID uint) ([]*models.Vote, error)
	GetVotesByVoter(ctx context.Context, voterID uint) ([]*models.Vote, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	GetUsers(ctx context.Context) ([]*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []uint) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.WeightSettings, error)
	UpdateSettings(ctx context.Context, adminWeight, userWeight int) (*models.WeightSettings, error)
}

// VotePublisher emits accepted-vote events to the message broker
type VotePublisher interface {
	PublishVote(ctx context.Context, msg models.VoteMessage) error
}

// LeaderboardCache is the read-through cache over computed tallies
type LeaderboardCache interface {
	Get(ctx context.Context, eventID uint) (*models.LeaderboardResponse, error)
	Set(ctx context.Context, eventID uint, leaderboard *models.LeaderboardResponse) error
	Invalidate(ctx context.Context, eventID uint) error
}

// TallyBroadcaster pushes fresh tallies to live subscribers
type TallyBroadcaster interface {
	BroadcastLeaderboard(eventID uint, leaderboard *models.LeaderboardResponse)
}
