// Package event provides the publish/subscribe primitive that all message
// and trigger propagation in conworld is built on. Events are synchronous;
// Trigger calls every subscribed callback in subscription order before
// returning.
package event

import "fmt"

// Subscription is a handle to a subscribed callback. It is returned by
// Subscribe and must be kept by any caller that later needs to Unsubscribe.
type Subscription int

type entry[T any] struct {
	id Subscription
	fn func(T)
}

// Event dispatches values of type T to subscribed callbacks. The zero value
// is an Event with no subscribers, ready for use.
//
// Because Go functions are not comparable, subscriptions are tracked by
// handle rather than by callback identity; a callback may be subscribed more
// than once and each subscription is independent.
type Event[T any] struct {
	subs   []entry[T]
	nextID Subscription
}

// Subscribe adds a callback and returns the handle that identifies it.
func (e *Event[T]) Subscribe(fn func(T)) Subscription {
	id := e.nextID
	e.nextID++
	e.subs = append(e.subs, entry[T]{id: id, fn: fn})
	return id
}

// Unsubscribe removes the callback identified by sub. Unsubscribing a handle
// that is not currently subscribed indicates a defect in the caller's
// subscription bookkeeping and returns a non-nil error.
func (e *Event[T]) Unsubscribe(sub Subscription) error {
	for i := range e.subs {
		if e.subs[i].id == sub {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("subscription %d is not subscribed to event", sub)
}

// Trigger calls all subscribed callbacks with v, in subscription order.
func (e *Event[T]) Trigger(v T) {
	// snapshot so callbacks that subscribe or unsubscribe don't perturb
	// this dispatch
	subs := make([]entry[T], len(e.subs))
	copy(subs, e.subs)

	for i := range subs {
		subs[i].fn(v)
	}
}

// Len returns the number of active subscriptions.
func (e *Event[T]) Len() int {
	return len(e.subs)
}

// Signal is an Event that carries no payload. It is used for domain
// notifications such as a container opening or a player entering a room.
type Signal struct {
	ev Event[struct{}]
}

// Subscribe adds a callback and returns the handle that identifies it.
func (s *Signal) Subscribe(fn func()) Subscription {
	return s.ev.Subscribe(func(struct{}) { fn() })
}

// Unsubscribe removes the callback identified by sub.
func (s *Signal) Unsubscribe(sub Subscription) error {
	return s.ev.Unsubscribe(sub)
}

// Trigger calls all subscribed callbacks in subscription order.
func (s *Signal) Trigger() {
	s.ev.Trigger(struct{}{})
}

// Len returns the number of active subscriptions.
func (s *Signal) Len() int {
	return s.ev.Len()
}
