// Package echo wires entities into the narration message graph. Every world
// object that narrates holds a Port; messages emitted on a Port travel
// upward through whatever parent Sink the Port is currently attached to
// (item to container, container to room, room to world) until they reach the
// I/O boundary.
package echo

import "github.com/rolph-recto/conworld/internal/event"

// Sink is anything that can receive a narration message from below.
type Sink interface {
	Echo(msg string)
}

// Port is the emitting half of the echo graph. The zero value is a detached
// Port ready for use.
//
// A Port has at most one parent at a time. Attach switches parents
// atomically: the subscription to the old parent is revoked in the same call
// that establishes the new one, so a message emitted after Attach returns
// can neither leak to a stale listener nor be dropped.
type Port struct {
	on        event.Event[string]
	parentSub event.Subscription
	attached  bool
}

// Echo sends msg to the current parent and all other listeners.
func (p *Port) Echo(msg string) {
	p.on.Trigger(msg)
}

// Attach routes this Port's messages to parent, detaching from any previous
// parent first. Attach(nil) detaches without establishing a new parent.
func (p *Port) Attach(parent Sink) {
	if p.attached {
		// the handle is valid by construction, so the error is impossible
		p.on.Unsubscribe(p.parentSub)
		p.attached = false
	}
	if parent == nil {
		return
	}
	p.parentSub = p.on.Subscribe(parent.Echo)
	p.attached = true
}

// Attached reports whether the Port currently has a parent.
func (p *Port) Attached() bool {
	return p.attached
}

// Subscribe registers a listener outside the parent chain, such as an output
// buffer at the I/O boundary or a test capture. The returned handle may be
// passed to Unsubscribe.
func (p *Port) Subscribe(fn func(string)) event.Subscription {
	return p.on.Subscribe(fn)
}

// Unsubscribe removes a listener previously added with Subscribe.
func (p *Port) Unsubscribe(sub event.Subscription) error {
	return p.on.Unsubscribe(sub)
}
