package apiclient

import (
	"sync"
	"time"
)

// LogoutEvent is published when the upstream API rejects a request as unauthorized.
type LogoutEvent struct {
	Client  string
	Method  string
	Path    string
	Message string
	At      time.Time
}

// LogoutBus fans forced-logout events out to subscribers.
// Publish calls every subscriber once, synchronously, in subscription order.
type LogoutBus struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(LogoutEvent)
}

// NewLogoutBus creates an empty LogoutBus.
func NewLogoutBus() *LogoutBus {
	return &LogoutBus{}
}

// Subscribe registers fn and returns a function that removes it.
func (b *LogoutBus) Subscribe(fn func(LogoutEvent)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, s := range b.subs {
				if s.id == id {
					b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Publish delivers ev to all current subscribers.
func (b *LogoutBus) Publish(ev LogoutEvent) {
	b.mu.RLock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(ev)
	}
}
