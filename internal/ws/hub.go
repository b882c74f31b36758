package ws

import (
	"voting-service/internal/ports/models"
)

// Hub fans fresh tallies out to the live-leaderboard subscribers of each
// event. All map access happens inside Run's loop.
type Hub struct {
	clients    map[uint]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan TallyUpdate
	done       chan struct{}
}

// TallyUpdate carries one event's recomputed leaderboard
type TallyUpdate struct {
	EventID     uint                        `json:"event_id"`
	Leaderboard *models.LeaderboardResponse `json:"leaderboard"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan TallyUpdate, 16),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if h.clients[client.EventID] == nil {
				h.clients[client.EventID] = make(map[*Client]bool)
			}
			h.clients[client.EventID][client] = true

		case client := <-h.unregister:
			if subscribers, ok := h.clients[client.EventID]; ok && subscribers[client] {
				delete(subscribers, client)
				close(client.Send)
				if len(subscribers) == 0 {
					delete(h.clients, client.EventID)
				}
			}

		case update := <-h.broadcast:
			for client := range h.clients[update.EventID] {
				select {
				case client.Send <- update:
				default:
					// Slow subscriber; drop it rather than stall the hub.
					delete(h.clients[update.EventID], client)
					close(client.Send)
				}
			}

		case <-h.done:
			for _, subscribers := range h.clients {
				for client := range subscribers {
					close(client.Send)
				}
			}
			return
		}
	}
}

// Stop shuts the hub down and disconnects all subscribers
func (h *Hub) Stop() {
	close(h.done)
}

// subscribe hands a client to the hub's loop. Returns false when the hub has
// already stopped, so the caller never blocks on a dead loop.
func (h *Hub) subscribe(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// unsubscribe detaches a client; a no-op after the hub has stopped.
func (h *Hub) unsubscribe(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastLeaderboard queues a tally update for an event's subscribers.
// Never blocks the caller: if the hub is saturated the update is dropped,
// the next vote will carry a fresher one anyway.
func (h *Hub) BroadcastLeaderboard(eventID uint, leaderboard *models.LeaderboardResponse) {
	select {
	case h.broadcast <- TallyUpdate{EventID: eventID, Leaderboard: leaderboard}:
	default:
	}
}
