package feed

import (
	"sync"

	"github.com/Kisalay21/familytree/internal/server/models"
)

// subscriberBuffer absorbs short bursts; a subscriber that falls further
// behind misses intermediate snapshots but always gets a later, complete one.
const subscriberBuffer = 8

// Hub fans full feed snapshots out to stream subscribers.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan []models.Post
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan []models.Post)}
}

// Subscribe registers a snapshot channel. The returned func unsubscribes
// and closes the channel; it is safe to call twice.
func (h *Hub) Subscribe() (<-chan []models.Post, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan []models.Post, subscriberBuffer)
	h.subs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
}

// Broadcast delivers the snapshot to every subscriber without blocking.
func (h *Hub) Broadcast(posts []models.Post) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- posts:
		default:
		}
	}
}
