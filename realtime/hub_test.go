package realtime

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestClient(t *testing.T, srv *httptest.Server, rooms string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?rooms=" + rooms
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var evt Event
	require.NoError(t, json.Unmarshal(raw, &evt))
	return evt
}

func TestHubBroadcastReachesRoomMembers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()

	r := gin.New()
	r.GET("/ws", ServeWS(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialTestClient(t, srv, "branch:1")
	require.Eventually(t, func() bool { return hub.RoomSize("branch:1") == 1 },
		time.Second, 10*time.Millisecond)

	hub.Broadcast("branch:1", Event{
		Event: EventOrderStatusChanged,
		Data: OrderStatusPayload{
			OrderID:     7,
			OrderNumber: "ORD-20260830-007",
			Status:      "preparing",
			StatusText:  "Your order is being prepared",
			BranchID:    1,
		},
	})

	evt := readEvent(t, conn)
	assert.Equal(t, EventOrderStatusChanged, evt.Event)

	payload := evt.Data.(map[string]any)
	assert.Equal(t, "ORD-20260830-007", payload["order_number"])
	assert.Equal(t, "Your order is being prepared", payload["status_text"])
}

func TestHubBroadcastScopedToRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()

	r := gin.New()
	r.GET("/ws", ServeWS(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	other := dialTestClient(t, srv, "branch:2")
	require.Eventually(t, func() bool { return hub.RoomSize("branch:2") == 1 },
		time.Second, 10*time.Millisecond)

	hub.Broadcast("branch:1", Event{Event: EventNewOrder})

	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := other.ReadMessage()
	assert.Error(t, err, "client in another room must not receive the event")
}

func TestHubBroadcastAllDeduplicates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()

	r := gin.New()
	r.GET("/ws", ServeWS(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialTestClient(t, srv, "branch:1,admin")
	require.Eventually(t, func() bool {
		return hub.RoomSize("branch:1") == 1 && hub.RoomSize(AdminRoom) == 1
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastAll([]string{"branch:1", AdminRoom}, Event{Event: EventNewOrder})

	evt := readEvent(t, conn)
	assert.Equal(t, EventNewOrder, evt.Event)

	// a second copy must not arrive
	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestRoomNames(t *testing.T) {
	assert.Equal(t, "branch:3", BranchRoom(3))
	assert.Equal(t, "order:42", OrderRoom(42))
}
