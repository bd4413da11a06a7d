package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"resto-api/utils/log"
)

// Hub fans events out to clients grouped into rooms. A slow client never
// blocks a broadcast: if its send buffer is full the message is dropped for
// that client and the drop is logged.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[room]
	if !ok {
		clients = make(map[*Client]struct{})
		h.rooms[room] = clients
	}
	clients[c] = struct{}{}
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, clients := range h.rooms {
		if _, ok := clients[c]; ok {
			delete(clients, c)
			if len(clients) == 0 {
				delete(h.rooms, room)
			}
		}
	}
}

// RoomSize reports the number of connected clients in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Broadcast pushes an event to every client in the room. Status updates are
// persisted before this is called, so a failed push is logged and forgotten
// rather than rolled back.
func (h *Hub) Broadcast(room string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error("failed to encode event", zap.String("event", event.Event), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[room] {
		select {
		case c.send <- payload:
		default:
			log.Warn("dropping event for slow client",
				zap.String("event", event.Event),
				zap.String("room", room))
		}
	}
}

// BroadcastAll pushes an event to the given rooms, deduplicating clients
// subscribed to more than one of them.
func (h *Hub) BroadcastAll(rooms []string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error("failed to encode event", zap.String("event", event.Event), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[*Client]struct{})
	for _, room := range rooms {
		for c := range h.rooms[room] {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			select {
			case c.send <- payload:
			default:
				log.Warn("dropping event for slow client",
					zap.String("event", event.Event),
					zap.String("room", room))
			}
		}
	}
}
