package stream

import (
	"sync"

	"github.com/kotani6053/nakatu.yasumi/internal/record"

	"go.uber.org/zap"
)

// Hub fans the full record snapshot out to subscribers. Every change delivers
// a complete replacement set, never a diff; new subscribers immediately
// receive the last known snapshot.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan []record.RecordResponse
	nextID int
	last   []record.RecordResponse
	primed bool
	logger *zap.Logger
}

func NewHub(logger ...*zap.Logger) *Hub {
	l := zap.L().Named("stream.hub")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stream.hub")
	}
	return &Hub{subs: make(map[int]chan []record.RecordResponse), logger: l}
}

// Subscribe registers a listener and returns its channel plus an unsubscribe
// function. The unsubscribe function is idempotent.
func (h *Hub) Subscribe(buffer int) (<-chan []record.RecordResponse, func()) {
	if buffer < 1 {
		buffer = 1
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	ch := make(chan []record.RecordResponse, buffer)
	h.subs[id] = ch
	if h.primed {
		ch <- h.last
	}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
			h.mu.Unlock()
		})
	}
	return ch, unsubscribe
}

// Broadcast replaces the current snapshot and delivers it to every
// subscriber. Slow subscribers lose their oldest pending snapshot rather than
// blocking the hub; only the latest state matters.
func (h *Hub) Broadcast(snapshot []record.RecordResponse) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = snapshot
	h.primed = true

	for id, ch := range h.subs {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
				h.logger.Warn("drop snapshot for slow subscriber", zap.Int("subscriber_id", id))
			}
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
