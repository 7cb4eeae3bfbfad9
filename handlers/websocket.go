package handlers

import (
	"log"
	"net/http"

	"smoke-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades dashboard connections onto the live reading feed.
type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleLiveFeed upgrades to websocket and streams readings until the client
// goes away. Inbound messages are drained and ignored; the feed is one-way.
// GET /ws
func (h *WSHandler) HandleLiveFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	id := h.hub.Register(conn)
	log.Printf("live feed client connected: %s", id)

	go func() {
		defer func() {
			h.hub.Unregister(id)
			log.Printf("live feed client disconnected: %s", id)
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("read error from %s: %v", id, err)
				}
				return
			}
		}
	}()
}

// Connected GET /ws/connected
func (h *WSHandler) Connected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.hub.Count()})
}
