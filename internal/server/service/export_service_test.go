package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"voting-service/internal/ports/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportFixture() (*votingFixture, *ExportService) {
	f := newVotingFixture()
	return f, NewExportService(f.eventRepo, f.candidateRepo, f.voteRepo, f.userRepo, f.settingsRepo)
}

func TestBuildRows(t *testing.T) {
	f, svc := newExportFixture()
	event := f.addEvent(t, &models.Event{Name: "Hackathon", VotingOpen: true})
	alpha := f.addCandidate(t, event.ID, "Team Alpha")
	beta := f.addCandidate(t, event.ID, "Team Beta")
	voter := f.addUser(t, models.RoleUser)
	admin := f.addUser(t, models.RoleAdmin)

	_, err := f.service.CastVote(context.Background(), event.ID, alpha.ID, voter)
	require.NoError(t, err)
	_, err = f.service.CastVote(context.Background(), event.ID, alpha.ID, admin)
	require.NoError(t, err)

	got, rows, err := svc.BuildRows(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)
	require.Len(t, rows, 2)

	alphaRow := rows[0]
	assert.Equal(t, "Team Alpha", alphaRow.CandidateName)
	assert.Equal(t, 2, alphaRow.VoteCount)
	require.Len(t, alphaRow.VoteDetails, 2)

	weightsByVoter := make(map[string]int)
	for _, detail := range alphaRow.VoteDetails {
		weightsByVoter[detail.VoterName] = detail.Weight
	}
	assert.Equal(t, 1, weightsByVoter[voter.Username])
	assert.Equal(t, 5, weightsByVoter[admin.Username])

	betaRow := rows[1]
	assert.Equal(t, beta.Name, betaRow.CandidateName)
	assert.Equal(t, 0, betaRow.VoteCount)
	assert.Empty(t, betaRow.VoteDetails)
}

func TestBuildRows_DeletedVoter(t *testing.T) {
	f, svc := newExportFixture()
	event := f.addEvent(t, &models.Event{Name: "Hackathon", VotingOpen: true})
	candidate := f.addCandidate(t, event.ID, "Team Alpha")

	require.NoError(t, f.voteRepo.CastVote(context.Background(), &models.Vote{
		VoterID:     42,
		EventID:     event.ID,
		CandidateID: candidate.ID,
	}))

	_, rows, err := svc.BuildRows(context.Background(), event.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].VoteDetails, 1)

	detail := rows[0].VoteDetails[0]
	assert.Equal(t, "Unknown", detail.VoterName)
	assert.Equal(t, "N/A", detail.VoterEmail)
	assert.Equal(t, 1, detail.Weight)
}

func TestWriteCSV(t *testing.T) {
	f, svc := newExportFixture()
	event := f.addEvent(t, &models.Event{Name: "Hackathon", VotingOpen: true})
	alpha := f.addCandidate(t, event.ID, "Team Alpha")
	f.addCandidate(t, event.ID, "Team Beta")
	voter := f.addUser(t, models.RoleUser)

	_, err := f.service.CastVote(context.Background(), event.ID, alpha.ID, voter)
	require.NoError(t, err)

	_, rows, err := svc.BuildRows(context.Background(), event.ID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(&buf, event, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// Header, summary, then one line per candidate.
	require.Len(t, records, 4)

	assert.Equal(t, []string{"Event Name", "Candidate Name", "Votes Count", "Vote Details"}, records[0])

	summary := records[1]
	assert.Equal(t, "Hackathon", summary[0])
	assert.Equal(t, "Event Summary", summary[1])
	assert.Equal(t, "1 total votes", summary[2])

	alphaLine := records[2]
	assert.Equal(t, "Team Alpha", alphaLine[1])
	assert.Equal(t, "1", alphaLine[2])
	assert.Contains(t, alphaLine[3], voter.Username)
	assert.Contains(t, alphaLine[3], "Weight: 1")

	betaLine := records[3]
	assert.Equal(t, "Team Beta", betaLine[1])
	assert.Equal(t, "0", betaLine[2])
	assert.Equal(t, "", betaLine[3])
}

func TestExportFilename(t *testing.T) {
	event := &models.Event{Name: "Hackathon 2026: Finals!"}
	assert.Equal(t, "Hackathon_2026__Finals__results.csv", ExportFilename(event))
}
