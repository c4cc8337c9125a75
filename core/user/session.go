package user

import (
	"sync"
	"time"
)

// Session is an authenticated user's client-side session.
type Session struct {
	User     User
	IssuedAt time.Time
}

type SessionEventType int

const (
	SessionStarted SessionEventType = iota
	SessionEnded
)

// SessionEvent is published whenever a session starts or ends. Session is nil
// for SessionEnded.
type SessionEvent struct {
	Type    SessionEventType
	Session *Session
}

// Broker is the auth boundary's session observable. Subscribers hold a channel
// for their lifetime and must call the returned release func when done.
type Broker struct {
	mu   sync.Mutex
	subs map[int]chan SessionEvent
	next int
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[int]chan SessionEvent)}
}

// Subscribe registers a listener. The release func is idempotent and closes
// the channel.
func (b *Broker) Subscribe() (<-chan SessionEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan SessionEvent, 8)
	b.subs[id] = ch

	var once sync.Once
	release := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
	return ch, release
}

// Publish delivers ev to every subscriber. Slow subscribers drop events rather
// than block the publisher.
func (b *Broker) Publish(ev SessionEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
