package bus

import (
	"log"
	"sync"

	"taam-menu/internal/domain"
)

// Handler receives the event detail for one delivery.
type Handler func(detail domain.EventDetail)

type subscription struct {
	id      int
	handler Handler
}

// Bus is the in-process notification channel shared by dashboard components.
// Delivery is synchronous, in registration order, and fire-and-forget: no
// replay for late subscribers and no persistence.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string][]subscription
}

func New() *Bus {
	return &Bus{subs: make(map[string][]subscription)}
}

// Subscribe registers handler for the named event and returns the
// deregistration capability. The caller must invoke it on teardown so
// handlers do not leak across remounts.
func (b *Bus) Subscribe(name string, handler Handler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[name] = append(b.subs[name], subscription{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[name]
		for i, sub := range list {
			if sub.id == id {
				b.subs[name] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Subscribers reports how many handlers are currently registered for the
// named event.
func (b *Bus) Subscribers(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[name])
}

// Publish delivers detail to every subscriber currently registered for the
// named event. A panicking handler must not block delivery to the rest.
func (b *Bus) Publish(name string, detail domain.EventDetail) {
	b.mu.RLock()
	list := make([]subscription, len(b.subs[name]))
	copy(list, b.subs[name])
	b.mu.RUnlock()

	for _, sub := range list {
		deliver(name, sub.handler, detail)
	}
}

func deliver(name string, handler Handler, detail domain.EventDetail) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[bus] handler for %s panicked: %v", name, r)
		}
	}()
	handler(detail)
}
