package events

import (
	"log"
	"sync"
)

const (
	TopicInteraction  = "interaction:handled"
	TopicAnnouncement = "announce:fired"
	TopicServerState  = "server:state"
	TopicServerPlayer = "server:player"
	TopicAppError     = "app:error"

	subscriberBuffer = 64
)

// Bus is an in-process publish/subscribe fanout. Publish never
// blocks: a subscriber that stops draining loses events, and the loss
// is counted and surfaced in the log.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	topics map[string]map[int]chan any
	closed bool

	dropMu sync.Mutex
	drops  map[string]uint64
}

func NewBus() *Bus {
	return &Bus{
		topics: make(map[string]map[int]chan any),
		drops:  make(map[string]uint64),
	}
}

func (b *Bus) Publish(topic string, payload any) {
	if b == nil || topic == "" {
		return
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	subs := make([]chan any, 0, len(b.topics[topic]))
	for _, ch := range b.topics[topic] {
		subs = append(subs, ch)
	}
	b.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- payload:
		default:
			b.countDrop(topic)
		}
	}
}

// Subscribe returns a receive channel for topic and a cancel func
// that detaches and closes it.
func (b *Bus) Subscribe(topic string) (<-chan any, func()) {
	ch := make(chan any, subscriberBuffer)

	b.mu.Lock()
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[int]chan any)
	}
	id := b.nextID
	b.nextID++
	b.topics[topic][id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if subs, ok := b.topics[topic]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(b.topics, topic)
			}
		}
		close(ch)
	}
	return ch, cancel
}

func (b *Bus) countDrop(topic string) {
	b.dropMu.Lock()
	defer b.dropMu.Unlock()
	b.drops[topic]++
	if b.drops[topic]%50 == 1 {
		log.Printf("events: slow subscriber on %s, dropped %d so far", topic, b.drops[topic])
	}
}
