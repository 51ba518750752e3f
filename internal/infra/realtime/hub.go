// Package realtime fans change signals out to in-process watchers. Storage
// drivers without native snapshot listeners publish a topic after each write
// and watchers re-read their query.
package realtime

import (
	"context"
	"sync"
	"sync/atomic"

	"storefront/internal/domain/repository"
)

// Hub is a topic-keyed change notifier. Signals coalesce: a watcher that is
// busy re-reading sees at most one pending signal.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]chan struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[uint64]chan struct{})}
}

// Subscribe returns a channel signalled after every Publish on topic, and the
// function that cancels the subscription.
func (h *Hub) Subscribe(topic string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan struct{}, 1)
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[uint64]chan struct{})
	}
	h.subs[topic][id] = ch

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(h.subs[topic], id)
			if len(h.subs[topic]) == 0 {
				delete(h.subs, topic)
			}
		})
	}
}

// Publish signals every subscriber of topic without blocking.
func (h *Hub) Publish(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribers returns the number of live subscriptions on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs[topic])
}

// Watch delivers load's result to listener now and after every change on
// topic, until the returned Unsubscribe is called or ctx ends. A load error
// is delivered once and ends the watch. Unsubscribe may be called from
// inside listener.
func Watch[T any](ctx context.Context, hub *Hub, topic string, load func(context.Context) (T, error), listener repository.Listener[T]) repository.Unsubscribe {
	signals, cancelSub := hub.Subscribe(topic)
	watchCtx, cancel := context.WithCancel(ctx)
	var stopped atomic.Bool

	go func() {
		defer cancelSub()

		for {
			snapshot, err := load(watchCtx)
			if stopped.Load() || watchCtx.Err() != nil {
				return
			}
			listener(snapshot, err)
			if err != nil {
				return
			}

			select {
			case <-watchCtx.Done():
				return
			case <-signals:
			}
		}
	}()

	return func() {
		stopped.Store(true)
		cancel()
	}
}
