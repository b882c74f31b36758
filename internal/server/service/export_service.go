package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"voting-service/internal/ports/models"
)

// ExportService turns the tally's per-candidate breakdown into a delimited
// text report for administrators.
type ExportService struct {
	eventRepo     EventRepository
	candidateRepo CandidateRepository
	voteRepo      VoteRepository
	userRepo      UserRepository
	settingsRepo  SettingsRepository
}

func NewExportService(
	eventRepo EventRepository,
	candidateRepo CandidateRepository,
	voteRepo VoteRepository,
	userRepo UserRepository,
	settingsRepo SettingsRepository,
) *ExportService {
	return &ExportService{
		eventRepo:     eventRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
		userRepo:      userRepo,
		settingsRepo:  settingsRepo,
	}
}

// BuildRows assembles one export row per candidate: who voted for them, at
// what weight, and when.
func (s *ExportService) BuildRows(ctx context.Context, eventID uint) (*models.Event, []*models.ExportRow, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	candidates, err := s.candidateRepo.GetCandidatesByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	votes, err := s.voteRepo.GetVotesByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get votes: %w", err)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load weight settings: %w", err)
	}

	voterIDs := make([]uint, 0, len(votes))
	for _, vote := range votes {
		voterIDs = append(voterIDs, vote.VoterID)
	}
	voters, err := s.userRepo.GetUsersByIDs(ctx, voterIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get voters: %w", err)
	}
	votersByID := make(map[uint]*models.User, len(voters))
	for _, voter := range voters {
		votersByID[voter.ID] = voter
	}

	votesByCandidate := make(map[uint][]*models.Vote, len(candidates))
	for _, vote := range votes {
		votesByCandidate[vote.CandidateID] = append(votesByCandidate[vote.CandidateID], vote)
	}

	rows := make([]*models.ExportRow, 0, len(candidates))
	for _, candidate := range candidates {
		row := &models.ExportRow{
			EventName:     event.Name,
			CandidateName: candidate.Name,
		}
		for _, vote := range votesByCandidate[candidate.ID] {
			detail := models.ExportVoteDetail{
				VoterName:  "Unknown",
				VoterEmail: "N/A",
				Weight:     1,
				VotedAt:    vote.CreatedAt,
			}
			if voter, ok := votersByID[vote.VoterID]; ok {
				detail.VoterName = voter.Username
				detail.VoterEmail = voter.Email
				detail.Weight = ResolveWeight(voter.Role, event.DefaultVoteWeight, settings)
			}
			row.VoteDetails = append(row.VoteDetails, detail)
			row.VoteCount++
		}
		rows = append(rows, row)
	}

	return event, rows, nil
}

// WriteCSV renders export rows as CSV: a header, an event summary line and
// one line per candidate with its votes flattened into a detail column.
func (s *ExportService) WriteCSV(w io.Writer, event *models.Event, rows []*models.ExportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Event Name", "Candidate Name", "Votes Count", "Vote Details"}); err != nil {
		return err
	}

	totalVotes := 0
	for _, row := range rows {
		totalVotes += row.VoteCount
	}
	summary := []string{
		event.Name,
		"Event Summary",
		fmt.Sprintf("%d total votes", totalVotes),
		fmt.Sprintf("Event created on %s", event.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")),
	}
	if err := cw.Write(summary); err != nil {
		return err
	}

	for _, row := range rows {
		details := make([]string, 0, len(row.VoteDetails))
		for _, d := range row.VoteDetails {
			details = append(details, fmt.Sprintf("%s (%s) - Weight: %d - %s",
				d.VoterName, d.VoterEmail, d.Weight, d.VotedAt.UTC().Format("2006-01-02T15:04:05Z07:00")))
		}
		record := []string{
			row.EventName,
			row.CandidateName,
			fmt.Sprintf("%d", row.VoteCount),
			strings.Join(details, "; "),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ExportFilename builds the attachment filename for an event's CSV export
func ExportFilename(event *models.Event) string {
	return unsafeFilenameChars.ReplaceAllString(event.Name, "_") + "_results.csv"
}
