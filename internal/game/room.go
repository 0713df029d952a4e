package game

// File room.go holds the Room entity: a spatial container of items plus the
// direction-labeled paths to other rooms.

import (
	"fmt"

	"github.com/rolph-recto/conworld/internal/echo"
	"github.com/rolph-recto/conworld/internal/event"
	"github.com/rolph-recto/conworld/internal/text"
	"github.com/rolph-recto/conworld/internal/util"
)

var roomText = map[string]string{
	"ENTER":        "You enter the {room}.",
	"PATH":         "To the {direction} is the {path}.",
	"PATH_BLOCKED": "To the {direction} is the {path}, but the way is blocked.",
	"ITEMS":        "You see {items} here.",
	"NO_ITEMS":     "There is nothing of interest here.",
}

// RoomDef is the authoring-time definition a Room is constructed from.
type RoomDef struct {
	// Name is the room's name, unique within the world.
	Name string

	// Description is narrated when the player looks around the room.
	Description string

	// Text overrides or extends the room's built-in templates.
	Text map[string]string
}

// Room is an atomic location in the world. It holds the items present in it
// (including items stored in containers that are in it) and at most one
// path per direction to other rooms.
type Room struct {
	name        string
	description string

	items []*Item
	paths map[Direction]*Path

	tmpl  text.Store
	port  echo.Port
	world *World

	// OnEnter and OnExit fire after the player enters or leaves the room.
	OnEnter event.Signal
	OnExit  event.Signal
}

// NewRoom constructs a Room from its definition.
func NewRoom(def RoomDef) *Room {
	r := &Room{
		name:        def.Name,
		description: def.Description,
		paths:       make(map[Direction]*Path),
	}
	r.tmpl.Update(roomText)
	r.tmpl.Update(def.Text)
	return r
}

func (r *Room) String() string {
	return fmt.Sprintf("Room(%q, %d items)", r.name, len(r.items))
}

// Name returns the room's name.
func (r *Room) Name() string { return r.name }

// Description returns the room's look description.
func (r *Room) Description() string { return r.description }

// World returns the world the room belongs to, or nil.
func (r *Room) World() *World { return r.world }

// Items returns a copy of the room's item list in insertion order. The list
// includes items stored inside containers that are in the room.
func (r *Room) Items() []*Item {
	return append([]*Item(nil), r.items...)
}

// Item returns the first item in the room whose name or synonyms match
// name, or nil. Items inside containers in the room are matched too;
// callers that care about visibility check Item.Visible.
func (r *Room) Item(name string) *Item {
	for _, it := range r.items {
		if it.Matches(name) {
			return it
		}
	}
	return nil
}

// UpdateText overrides or extends the room's message templates.
func (r *Room) UpdateText(templates map[string]string) {
	r.tmpl.Update(templates)
}

// Subscribe registers a listener for every message narrated in the room.
func (r *Room) Subscribe(fn func(string)) event.Subscription {
	return r.port.Subscribe(fn)
}

// Echo relays a message from an entity in the room upward. Room is an
// echo.Sink for its items and paths.
func (r *Room) Echo(msg string) {
	r.port.Echo(msg)
}

// AddItem places a loose item in the room. Adding an item that is already
// in the room, or that is currently placed elsewhere, is an authoring fault.
func (r *Room) AddItem(it *Item) error {
	if r.contains(it) {
		return fmt.Errorf("%s is already in %s: %w", it.name, r.name, ErrAlreadyPresent)
	}
	if it.room != nil || it.player != nil {
		return fmt.Errorf("%s is already placed elsewhere: %w", it.name, ErrAlreadyPresent)
	}
	if dup := r.nameTaken(it); dup != "" {
		return fmt.Errorf("name %q is already used in %s: %w", dup, r.name, ErrAlreadyPresent)
	}

	it.room = r
	it.attach(r)
	r.items = append(r.items, it)
	return nil
}

// RemoveItem takes a loose item out of the room, detaching its narration.
// Removing an item the room does not hold, or one stored inside a
// container, is an authoring fault.
func (r *Room) RemoveItem(it *Item) error {
	if !r.contains(it) {
		return fmt.Errorf("%s is not in %s: %w", it.name, r.name, ErrNotPresent)
	}
	if it.owner != nil {
		return fmt.Errorf("%s is inside the %s: %w", it.name, it.owner.name, ErrOwned)
	}

	r.drop(it)
	it.room = nil
	it.attach(nil)
	return nil
}

// Path returns the path leading out of the room in the given direction, or
// nil.
func (r *Room) Path(d Direction) *Path {
	return r.paths[d]
}

// SetPath attaches a path to the room under the given direction. A room
// holds at most one path per direction; a second is an authoring fault.
func (r *Room) SetPath(d Direction, p *Path) error {
	if _, taken := r.paths[d]; taken {
		return fmt.Errorf("%s already has a path leading %s: %w", r.name, d, ErrAlreadyPresent)
	}

	p.source = r
	p.port.Attach(r)
	r.paths[d] = p
	return nil
}

// Enter narrates entry into the room, looks around it, and fires OnEnter.
func (r *Room) Enter() {
	r.say("ENTER", map[string]string{"room": r.name})
	r.Look()
	r.OnEnter.Trigger()
}

// Exit fires OnExit. Leaving a room has no narration of its own; the
// entered room narrates.
func (r *Room) Exit() {
	r.OnExit.Trigger()
}

// Look narrates the room: its description, each path per direction with its
// blocked state, and the visible (unowned) items.
func (r *Room) Look() {
	r.port.Echo(r.description)

	for _, d := range Directions() {
		p := r.paths[d]
		if p == nil {
			continue
		}
		key := "PATH"
		if p.blocked {
			key = "PATH_BLOCKED"
		}
		r.say(key, map[string]string{"direction": d.String(), "path": p.name})
	}

	var names []string
	for _, it := range r.items {
		if it.owner == nil {
			names = append(names, it.name)
		}
	}
	if len(names) == 0 {
		r.say("NO_ITEMS", nil)
		return
	}
	r.say("ITEMS", map[string]string{"items": util.MakeTextList(names)})
}

func (r *Room) contains(it *Item) bool {
	for _, held := range r.items {
		if held == it {
			return true
		}
	}
	return false
}

// nameTaken returns the first of it's names already used by another item in
// the room, or "".
func (r *Room) nameTaken(it *Item) string {
	names := append([]string{it.name}, it.synonyms...)
	for _, name := range names {
		for _, held := range r.items {
			if held.Matches(name) {
				return name
			}
		}
	}
	return ""
}

// adopt and drop are the raw list mutations used by ownership transfers;
// they do not touch item fields or narration subscriptions.
func (r *Room) adopt(it *Item) {
	r.items = append(r.items, it)
}

func (r *Room) drop(it *Item) {
	for i := range r.items {
		if r.items[i] == it {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

func (r *Room) say(key string, ctx map[string]string) {
	msg, err := r.tmpl.Render(key, ctx)
	if err != nil {
		panic(err)
	}
	r.port.Echo(msg)
}
