package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"voting-service/internal/ports/models"
)

// In-memory fakes implementing the repository seams from ports.go. They
// mirror the gorm repositories' behavior closely enough for the services:
// not-found sentinels, nil-on-missing vote lookups and the constraint-backed
// duplicate rejection on insert.

type fakeEventRepo struct {
	mu      sync.Mutex
	events  map[uint]*models.Event
	allowed map[uint][]uint
	deleted []uint
	nextID  uint
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:  make(map[uint]*models.Event),
		allowed: make(map[uint][]uint),
	}
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if event.ID == 0 {
		f.nextID++
		event.ID = f.nextID
	}
	event.CreatedAt = time.Now().UTC()
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetEventByID(_ context.Context, id uint) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeEventRepo) GetEvents(_ context.Context) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := make([]*models.Event, 0, len(f.events))
	for _, event := range f.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (f *fakeEventRepo) GetEventsByIDs(_ context.Context, ids []uint) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := make([]*models.Event, 0, len(ids))
	seen := make(map[uint]bool)
	for _, id := range ids {
		if event, ok := f.events[id]; ok && !seen[id] {
			events = append(events, event)
			seen[id] = true
		}
	}
	return events, nil
}

func (f *fakeEventRepo) GetClosedEvents(_ context.Context) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := make([]*models.Event, 0)
	for _, event := range f.events {
		if !event.VotingOpen {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (f *fakeEventRepo) UpdateEvent(_ context.Context, event *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[event.ID]; !ok {
		return models.ErrEventNotFound
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) DeleteEventCascade(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return models.ErrEventNotFound
	}
	delete(f.events, id)
	delete(f.allowed, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEventRepo) PublishResults(_ context.Context, id uint, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return false, models.ErrEventNotFound
	}
	if event.ResultsPublished {
		return false, nil
	}
	event.ResultsPublished = true
	event.ResultsPublishedAt = &at
	return true, nil
}

func (f *fakeEventRepo) ReplaceAllowedVoters(_ context.Context, eventID uint, voterIDs []uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allowed[eventID] = append([]uint(nil), voterIDs...)
	return nil
}

func (f *fakeEventRepo) GetAllowedVoters(_ context.Context, eventID uint) ([]uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uint(nil), f.allowed[eventID]...), nil
}

type fakeCandidateRepo struct {
	mu         sync.Mutex
	candidates map[uint]*models.Candidate
	nextID     uint
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[uint]*models.Candidate)}
}

func (f *fakeCandidateRepo) CreateCandidate(_ context.Context, candidate *models.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if candidate.ID == 0 {
		f.nextID++
		candidate.ID = f.nextID
	}
	f.candidates[candidate.ID] = candidate
	return nil
}

func (f *fakeCandidateRepo) CreateCandidates(ctx context.Context, candidates []*models.Candidate) error {
	for _, candidate := range candidates {
		if err := f.CreateCandidate(ctx, candidate); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeCandidateRepo) GetCandidateByID(_ context.Context, id uint) (*models.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	candidate, ok := f.candidates[id]
	if !ok {
		return nil, models.ErrCandidateNotFound
	}
	return candidate, nil
}

func (f *fakeCandidateRepo) GetCandidatesByIDs(_ context.Context, ids []uint) ([]*models.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	candidates := make([]*models.Candidate, 0, len(ids))
	seen := make(map[uint]bool)
	for _, id := range ids {
		if candidate, ok := f.candidates[id]; ok && !seen[id] {
			candidates = append(candidates, candidate)
			seen[id] = true
		}
	}
	return candidates, nil
}

func (f *fakeCandidateRepo) GetCandidatesByEvent(_ context.Context, eventID uint) ([]*models.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	candidates := make([]*models.Candidate, 0)
	for _, candidate := range f.candidates {
		if candidate.EventID == eventID {
			candidates = append(candidates, candidate)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	return candidates, nil
}

func (f *fakeCandidateRepo) increment(candidateID, eventID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	candidate, ok := f.candidates[candidateID]
	if !ok || candidate.EventID != eventID {
		return models.ErrCandidateNotFound
	}
	candidate.Votes++
	return nil
}

type fakeVoteRepo struct {
	mu         sync.Mutex
	votes      []*models.Vote
	candidates *fakeCandidateRepo
	nextID     uint
}

func newFakeVoteRepo(candidates *fakeCandidateRepo) *fakeVoteRepo {
	return &fakeVoteRepo{candidates: candidates}
}

func (f *fakeVoteRepo) CastVote(_ context.Context, vote *models.Vote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.votes {
		if existing.VoterID == vote.VoterID && existing.EventID == vote.EventID {
			return models.ErrDuplicateVote
		}
	}
	if f.candidates != nil {
		if err := f.candidates.increment(vote.CandidateID, vote.EventID); err != nil {
			return err
		}
	}
	f.nextID++
	vote.ID = f.nextID
	vote.CreatedAt = time.Now().UTC()
	f.votes = append(f.votes, vote)
	return nil
}

func (f *fakeVoteRepo) GetVoteByVoterAndEvent(_ context.Context, voterID, eventID uint) (*models.Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, vote := range f.votes {
		if vote.VoterID == voterID && vote.EventID == eventID {
			return vote, nil
		}
	}
	return nil, nil
}

func (f *fakeVoteRepo) GetVotesByEvent(_ context.Context, eventID uint) ([]*models.Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	votes := make([]*models.Vote, 0)
	for _, vote := range f.votes {
		if vote.EventID == eventID {
			votes = append(votes, vote)
		}
	}
	return votes, nil
}

func (f *fakeVoteRepo) GetVotesByVoter(_ context.Context, voterID uint) ([]*models.Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	votes := make([]*models.Vote, 0)
	for _, vote := range f.votes {
		if vote.VoterID == voterID {
			votes = append(votes, vote)
		}
	}
	sort.Slice(votes, func(i, j int) bool { return votes[i].CreatedAt.After(votes[j].CreatedAt) })
	return votes, nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return models.ErrEmailTaken
		}
	}
	if user.ID == 0 {
		f.nextID++
		user.ID = f.nextID
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUsers(_ context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []uint) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]*models.User, 0, len(ids))
	seen := make(map[uint]bool)
	for _, id := range ids {
		if user, ok := f.users[id]; ok && !seen[id] {
			users = append(users, user)
			seen[id] = true
		}
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *models.WeightSettings
}

func (f *fakeSettingsRepo) GetSettings(_ context.Context) (*models.WeightSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings, nil
}

func (f *fakeSettingsRepo) UpdateSettings(_ context.Context, adminWeight, userWeight int) (*models.WeightSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings = &models.WeightSettings{
		DefaultAdminWeight: adminWeight,
		DefaultUserWeight:  userWeight,
	}
	return f.settings, nil
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []models.VoteMessage
}

func (f *fakePublisher) PublishVote(_ context.Context, msg models.VoteMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []uint
}

func (f *fakeBroadcaster) BroadcastLeaderboard(eventID uint, _ *models.LeaderboardResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, eventID)
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[uint]*models.LeaderboardResponse
	invalidated []uint
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uint]*models.LeaderboardResponse)}
}

func (f *fakeCache) Get(_ context.Context, eventID uint) (*models.LeaderboardResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[eventID], nil
}

func (f *fakeCache) Set(_ context.Context, eventID uint, leaderboard *models.LeaderboardResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[eventID] = leaderboard
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, eventID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, eventID)
	f.invalidated = append(f.invalidated, eventID)
	return nil
}
