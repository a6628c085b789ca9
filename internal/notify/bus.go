// Package notify provides a typed observer list.
//
// A Bus[T] delivers each emitted value to every live subscriber, in
// subscription order, synchronously on the emitting goroutine. Subscribe
// returns an [Unbind] handle; every subscription taken by an owner must be
// released on that owner's teardown path.
//
// Example usage:
//
//	var changed notify.Bus[Snapshot]
//	unbind := changed.Subscribe(func(s Snapshot) {
//	    relayout(s.FinalSafe)
//	})
//	defer unbind()
//	changed.Emit(snapshot)
package notify

import "sync"

// Unbind removes a subscription. Calling it more than once is a no-op.
type Unbind func()

type subscriber[T any] struct {
	fn     func(T)
	active bool
}

// Bus is a synchronous observer list. The zero value is ready to use.
type Bus[T any] struct {
	mu   sync.Mutex
	subs []*subscriber[T]
}

// Subscribe registers fn to receive every future Emit.
func (b *Bus[T]) Subscribe(fn func(T)) Unbind {
	s := &subscriber[T]{fn: fn, active: true}

	b.mu.Lock()
	b.subs = append(b.subs, s)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			s.active = false
			b.prune()
			b.mu.Unlock()
		})
	}
}

// Emit delivers v to every live subscriber in subscription order.
// Subscribers run outside the lock, so they may subscribe, unbind, or
// emit again. The subscriber list is captured when Emit starts: a
// subscriber added during delivery first hears the next Emit.
func (b *Bus[T]) Emit(v T) {
	b.mu.Lock()
	live := make([]*subscriber[T], 0, len(b.subs))
	for _, s := range b.subs {
		if s.active {
			live = append(live, s)
		}
	}
	b.mu.Unlock()

	for _, s := range live {
		s.fn(v)
	}
}

// Len returns the number of live subscribers.
func (b *Bus[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, s := range b.subs {
		if s.active {
			n++
		}
	}
	return n
}

// Clear drops every subscriber.
func (b *Bus[T]) Clear() {
	b.mu.Lock()
	for _, s := range b.subs {
		s.active = false
	}
	b.subs = nil
	b.mu.Unlock()
}

// prune removes inactive subscribers. Caller must hold mu.
func (b *Bus[T]) prune() {
	kept := b.subs[:0]
	for _, s := range b.subs {
		if s.active {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(b.subs); i++ {
		b.subs[i] = nil
	}
	b.subs = kept
}
