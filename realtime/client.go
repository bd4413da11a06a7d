package realtime

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"resto-api/utils"
	"resto-api/utils/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// API is already CORS-guarded at the HTTP layer
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	username string
	role     string
}

// ServeWS upgrades the request and subscribes the connection to the rooms
// named in the `rooms` query parameter (e.g. ?rooms=branch:1,order:42).
// Authenticated users are announced to the admin room on join and leave.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		client := &Client{
			hub:  hub,
			conn: conn,
			send: make(chan []byte, sendBuffer),
		}
		// browsers cannot set headers on websocket requests, so panel users
		// identify themselves with a token query parameter
		if token := c.Query("token"); token != "" {
			if claims, err := utils.ParseToken(token); err == nil {
				client.username = claims.Username
				client.role = claims.Role
			}
		}

		rooms := strings.Split(c.Query("rooms"), ",")
		for _, room := range rooms {
			room = strings.TrimSpace(room)
			if room != "" {
				hub.join(client, room)
			}
		}

		if client.username != "" {
			hub.Broadcast(AdminRoom, Event{
				Event: EventUserJoined,
				Data:  PresencePayload{Username: client.username, Role: client.role},
			})
		}

		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
		close(c.send)
		if c.username != "" {
			c.hub.Broadcast(AdminRoom, Event{
				Event: EventUserLeft,
				Data:  PresencePayload{Username: c.username, Role: c.role},
			})
		}
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Inbound frames are only read to detect disconnects; clients talk to
	// the server over REST.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				c.conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
