package events

import "sync"

// Write stages attached to bill-saved notifications. A final write carries a
// non-zero balance (the sale is settled); an interim write is in-progress.
const (
	StageInterim = "interim"
	StageFinal   = "final"
)

// BillSaved is emitted after every write-only save of the bill artifact.
type BillSaved struct {
	BillID     string  `json:"BillID"`
	Balance    float64 `json:"Balance"`
	WriteStage string  `json:"writeStage"`
}

// Hub is an in-process best-effort broadcaster of bill-saved events. A
// subscriber that is not draining its channel misses events rather than
// blocking the publisher.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan BillSaved]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan BillSaved]struct{})}
}

// Subscribe registers a new buffered subscriber channel.
func (h *Hub) Subscribe() chan BillSaved {
	ch := make(chan BillSaved, 8)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (h *Hub) Unsubscribe(ch chan BillSaved) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish delivers the event to every subscriber without blocking and
// returns the number of subscribers that received it.
func (h *Hub) Publish(ev BillSaved) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for ch := range h.subs {
		select {
		case ch <- ev:
			delivered++
		default:
		}
	}
	return delivered
}
