// Package game implements the mutable world graph: rooms connected by
// blockable paths, items and containers residing in them, and the player
// that commands act through. Every mutation is a guarded transition that
// narrates its outcome through the echo graph, terminating at the World.
package game

import (
	"fmt"

	"github.com/rolph-recto/conworld/internal/echo"
	"github.com/rolph-recto/conworld/internal/event"
)

// World is the aggregate root: it owns the set of rooms and the single
// player, and is the terminal upward sink for all narration before the I/O
// boundary.
type World struct {
	rooms  []*Room
	player *Player

	port echo.Port
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{}
}

// Rooms returns a copy of the world's rooms in insertion order.
func (w *World) Rooms() []*Room {
	return append([]*Room(nil), w.rooms...)
}

// Room returns the room with the given name, or nil.
func (w *World) Room(name string) *Room {
	for _, r := range w.rooms {
		if r.name == name {
			return r
		}
	}
	return nil
}

// Player returns the world's player, or nil before SetPlayer.
func (w *World) Player() *Player {
	return w.player
}

// AddRoom adds a room to the world and routes its narration here. Adding a
// room twice, or two rooms with the same name, is an authoring fault.
func (w *World) AddRoom(r *Room) error {
	for _, held := range w.rooms {
		if held == r || held.name == r.name {
			return fmt.Errorf("room %q is already in the world: %w", r.name, ErrAlreadyPresent)
		}
	}

	r.world = w
	r.port.Attach(w)
	w.rooms = append(w.rooms, r)
	return nil
}

// RemoveRoom takes a room out of the world, detaching its narration.
func (w *World) RemoveRoom(r *Room) error {
	for i := range w.rooms {
		if w.rooms[i] == r {
			w.rooms = append(w.rooms[:i], w.rooms[i+1:]...)
			r.world = nil
			r.port.Attach(nil)
			return nil
		}
	}
	return fmt.Errorf("room %q is not in the world: %w", r.name, ErrNotPresent)
}

// SetPlayer installs the player and routes their narration here. The
// player's starting room should already be one of the world's rooms.
func (w *World) SetPlayer(p *Player) {
	if w.player != nil {
		w.player.port.Attach(nil)
	}
	w.player = p
	p.port.Attach(w)
}

// Echo relays a message upward. World is the echo.Sink of its rooms and
// player.
func (w *World) Echo(msg string) {
	w.port.Echo(msg)
}

// Subscribe registers a listener at the world's outer edge; the I/O driver
// subscribes here to capture everything narrated during a command cycle.
func (w *World) Subscribe(fn func(string)) event.Subscription {
	return w.port.Subscribe(fn)
}

// Unsubscribe removes a listener previously added with Subscribe.
func (w *World) Unsubscribe(sub event.Subscription) error {
	return w.port.Unsubscribe(sub)
}
