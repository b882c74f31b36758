package ws

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWs upgrades the connection and subscribes it to one event's live
// tally feed.
func ServeWs(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		client := &Client{
			EventID: uint(eventID),
			Conn:    conn,
			Send:    make(chan TallyUpdate, 4),
		}

		if !hub.subscribe(client) {
			conn.Close()
			return
		}
		go client.ReadPump(hub)
		go client.WritePump()
	}
}
