package ws

import (
	"testing"
	"time"

	"voting-service/internal/ports/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(eventID uint) *Client {
	return &Client{EventID: eventID, Send: make(chan TallyUpdate, 4)}
}

func receive(t *testing.T, client *Client) TallyUpdate {
	t.Helper()
	select {
	case update := <-client.Send:
		return update
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tally update")
		return TallyUpdate{}
	}
}

func TestHub_BroadcastReachesEventSubscribers(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	subscriber := newTestClient(1)
	otherEvent := newTestClient(2)
	hub.register <- subscriber
	hub.register <- otherEvent

	leaderboard := &models.LeaderboardResponse{TotalWeightedVotes: 6}
	hub.BroadcastLeaderboard(1, leaderboard)

	update := receive(t, subscriber)
	assert.Equal(t, uint(1), update.EventID)
	assert.Equal(t, 6, update.Leaderboard.TotalWeightedVotes)

	select {
	case <-otherEvent.Send:
		t.Fatal("subscriber of another event received the update")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	subscriber := newTestClient(1)
	hub.register <- subscriber
	hub.unregister <- subscriber

	select {
	case _, open := <-subscriber.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed on unregister")
	}

	// Broadcasting to an event with no subscribers is a no-op.
	hub.BroadcastLeaderboard(1, &models.LeaderboardResponse{})
}

func TestHub_StoppedHubRejectsSubscribers(t *testing.T) {
	hub := NewHub()
	hub.Stop()

	// Neither call may block once the loop is gone.
	finished := make(chan bool, 1)
	go func() {
		client := newTestClient(1)
		subscribed := hub.subscribe(client)
		hub.unsubscribe(client)
		finished <- subscribed
	}()

	select {
	case subscribed := <-finished:
		assert.False(t, subscribed)
	case <-time.After(time.Second):
		t.Fatal("subscribe/unsubscribe blocked on a stopped hub")
	}
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	slow := &Client{EventID: 1, Send: make(chan TallyUpdate)}
	hub.register <- slow

	// Nobody drains slow.Send, so the hub drops the client instead of
	// blocking its loop.
	hub.BroadcastLeaderboard(1, &models.LeaderboardResponse{})

	require.Eventually(t, func() bool {
		select {
		case _, open := <-slow.Send:
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
