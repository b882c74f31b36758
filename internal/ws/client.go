package ws

import (
	"github.com/gorilla/websocket"
)

// Client is one live-leaderboard subscriber for a single event
type Client struct {
	EventID uint
	Conn    *websocket.Conn
	Send    chan TallyUpdate
}

// ReadPump drains the connection until the subscriber goes away; the feed
// is one-directional, inbound frames are discarded.
func (c *Client) ReadPump(hub *Hub) {
	defer func() {
		hub.unsubscribe(c)
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) WritePump() {
	for update := range c.Send {
		if err := c.Conn.WriteJSON(update); err != nil {
			break
		}
	}
	c.Conn.Close()
}
