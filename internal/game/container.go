package game

// File container.go holds the Container entity: an item that stores other
// items behind an open/closed, locked/unlocked state machine.

import (
	"fmt"

	"github.com/rolph-recto/conworld/internal/event"
	"github.com/rolph-recto/conworld/internal/util"
)

var containerText = map[string]string{
	"OPEN":                "You open the {container}.",
	"OPEN_LOCKED":         "The {container} is locked.",
	"ALREADY_OPEN":        "The {container} is already open.",
	"CLOSE":               "You close the {container}.",
	"ALREADY_CLOSED":      "The {container} is already closed.",
	"LOCK":                "You lock the {container}.",
	"ALREADY_LOCKED":      "The {container} is already locked.",
	"UNLOCK":              "You unlock the {container}.",
	"ALREADY_UNLOCKED":    "The {container} is already unlocked.",
	"CONTENTS":            "Inside the {container} you see {items}.",
	"EMPTY":               "The {container} is empty.",
	"ADD":                 "You put the {item} in the {container}.",
	"ADD_LOCKED":          "The {container} is locked.",
	"ADD_CLOSED":          "The {container} is closed.",
	"ADD_NOT_CONTAINABLE": "The {item} can't be put in the {container}.",
	"ADD_OWNED":           "The {item} is already inside the {owner}.",
	"ADD_ALREADY":         "The {item} is already in the {container}.",
	"REMOVE":              "You take the {item} out of the {container}.",
	"REMOVE_LOCKED":       "The {container} is locked.",
	"REMOVE_CLOSED":       "The {container} is closed.",
	"REMOVE_NOT_IN":       "The {item} is not in the {container}.",
}

// ContainerDef is the authoring-time definition a Container is constructed
// from.
type ContainerDef struct {
	Name        string
	Synonyms    []string
	Description string

	// Holdable marks the container as takeable; taking it carries its
	// contents along.
	Holdable bool

	// Locked and Opened set the initial state. A container cannot be
	// constructed both locked and open; Locked forces the initial state
	// closed.
	Locked bool
	Opened bool

	// Text overrides or extends the container's built-in templates.
	Text map[string]string
}

// Container is an item that holds an ordered list of other items. Items can
// be added or removed only while the container is open and unlocked.
//
// Containers are never themselves containable, so containment nesting is at
// most one level deep.
type Container struct {
	Item

	items  []*Item
	opened bool
	locked bool

	// OnOpen through OnUnlock fire after the corresponding successful state
	// transition. Idempotent calls ("open" on an open container) do not
	// fire them.
	OnOpen   event.Signal
	OnClose  event.Signal
	OnLock   event.Signal
	OnUnlock event.Signal

	// OnAdd and OnRemove fire with the item after it is stored or removed.
	OnAdd    event.Event[*Item]
	OnRemove event.Event[*Item]
}

// NewContainer constructs a Container from its definition.
func NewContainer(def ContainerDef) *Container {
	c := &Container{
		Item: Item{
			name:        def.Name,
			synonyms:    append([]string(nil), def.Synonyms...),
			description: def.Description,
			holdable:    def.Holdable,
			containable: false,
			actions:     make(map[string]Action),
		},
		opened: def.Opened && !def.Locked,
		locked: def.Locked,
	}
	c.Item.cont = c
	c.tmpl.Update(containerText)
	c.tmpl.Update(def.Text)
	return c
}

// AsItem returns the container's Item view, which is what rooms and
// inventories hold.
func (c *Container) AsItem() *Item {
	return &c.Item
}

// Opened reports whether the container is open.
func (c *Container) Opened() bool { return c.opened }

// Locked reports whether the container is locked.
func (c *Container) Locked() bool { return c.locked }

// Items returns a copy of the contained items in insertion order.
func (c *Container) Items() []*Item {
	return append([]*Item(nil), c.items...)
}

// Contains reports whether it is stored in the container.
func (c *Container) Contains(it *Item) bool {
	for _, held := range c.items {
		if held == it {
			return true
		}
	}
	return false
}

// Echo relays a message from a stored item upward. Container is an
// echo.Sink for its items.
func (c *Container) Echo(msg string) {
	c.port.Echo(msg)
}

// Open transitions the container from closed to open and narrates its
// contents. Opening fails with a narrated reason if the container is
// locked, and is idempotent with an "already open" narration.
func (c *Container) Open() {
	ctx := map[string]string{"container": c.name}

	if c.locked {
		c.say("OPEN_LOCKED", ctx)
		return
	}
	if c.opened {
		c.say("ALREADY_OPEN", ctx)
		return
	}

	c.opened = true
	c.say("OPEN", ctx)
	c.echoContents()
	c.OnOpen.Trigger()
}

// Close transitions the container from open to closed.
func (c *Container) Close() {
	ctx := map[string]string{"container": c.name}

	if !c.opened {
		c.say("ALREADY_CLOSED", ctx)
		return
	}

	c.opened = false
	c.say("CLOSE", ctx)
	c.OnClose.Trigger()
}

// Lock locks the container, closing it first if it is open.
func (c *Container) Lock() {
	ctx := map[string]string{"container": c.name}

	if c.locked {
		c.say("ALREADY_LOCKED", ctx)
		return
	}
	if c.opened {
		c.Close()
	}

	c.locked = true
	c.say("LOCK", ctx)
	c.OnLock.Trigger()
}

// Unlock unlocks the container. It does not open it.
func (c *Container) Unlock() {
	ctx := map[string]string{"container": c.name}

	if !c.locked {
		c.say("ALREADY_UNLOCKED", ctx)
		return
	}

	c.locked = false
	c.say("UNLOCK", ctx)
	c.OnUnlock.Trigger()
}

// Add stores it in the container. The checks run in a fixed order and the
// first failure is narrated with no mutation: locked, closed, item not
// containable, item owned by another container, item already inside. On
// success the item is moved into the container's scope (leaving the
// player's inventory or its old room as needed), its narration re-routes
// through the container, and OnAdd fires.
func (c *Container) Add(it *Item) {
	ctx := map[string]string{"container": c.name, "item": it.name}

	if c.locked {
		c.say("ADD_LOCKED", ctx)
		return
	}
	if !c.opened {
		c.say("ADD_CLOSED", ctx)
		return
	}
	if !it.containable {
		c.say("ADD_NOT_CONTAINABLE", ctx)
		return
	}
	if it.owner != nil && it.owner != c {
		ctx["owner"] = it.owner.name
		c.say("ADD_OWNED", ctx)
		return
	}
	if it.owner == c {
		c.say("ADD_ALREADY", ctx)
		return
	}

	c.adopt(it)
	c.say("ADD", ctx)
	c.OnAdd.Trigger(it)
}

// Remove takes it out of the container, leaving it loose in whatever room
// or inventory the container is in. Failures narrate in order: locked,
// closed, not inside.
func (c *Container) Remove(it *Item) {
	ctx := map[string]string{"container": c.name, "item": it.name}

	if c.locked {
		c.say("REMOVE_LOCKED", ctx)
		return
	}
	if !c.opened {
		c.say("REMOVE_CLOSED", ctx)
		return
	}
	if it.owner != c {
		c.say("REMOVE_NOT_IN", ctx)
		return
	}

	c.drop(it)
	it.owner = nil
	if it.player != nil {
		it.attach(it.player)
	} else if it.room != nil {
		it.attach(it.room)
	} else {
		it.attach(nil)
	}
	c.say("REMOVE", ctx)
	c.OnRemove.Trigger(it)
}

// Put stores it in the container without narration or open/locked checks.
// It is the authoring-time counterpart of Add, used while wiring a world;
// integrity violations are returned as errors rather than narrated.
func (c *Container) Put(it *Item) error {
	if !it.containable {
		return fmt.Errorf("%s cannot be stored in %s: %w", it.name, c.name, ErrNotContainable)
	}
	if it.owner == c {
		return fmt.Errorf("%s is already in %s: %w", it.name, c.name, ErrAlreadyPresent)
	}
	if it.owner != nil {
		return fmt.Errorf("%s is already in %s: %w", it.name, it.owner.name, ErrOwned)
	}
	if it.room != c.room || it.player != c.player {
		return fmt.Errorf("%s and %s are in different scopes: %w", it.name, c.name, ErrNotPresent)
	}

	it.owner = c
	it.attach(c)
	c.items = append(c.items, it)
	return nil
}

// adopt moves it into the container's scope and stores it. Preconditions
// have already been checked.
func (c *Container) adopt(it *Item) {
	if it.room != c.room {
		if it.room != nil {
			it.room.drop(it)
		}
		if c.room != nil {
			c.room.adopt(it)
		}
		it.room = c.room
	}
	if it.player != c.player {
		if it.player != nil {
			it.player.drop(it)
		}
		if c.player != nil {
			c.player.adopt(it)
		}
		it.player = c.player
	}

	it.owner = c
	it.attach(c)
	c.items = append(c.items, it)
}

// drop removes it from the container's item list only.
func (c *Container) drop(it *Item) {
	for i := range c.items {
		if c.items[i] == it {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// echoContents narrates what is inside the container.
func (c *Container) echoContents() {
	if len(c.items) == 0 {
		c.say("EMPTY", map[string]string{"container": c.name})
		return
	}

	names := make([]string, len(c.items))
	for i, it := range c.items {
		names[i] = it.name
	}
	c.say("CONTENTS", map[string]string{
		"container": c.name,
		"items":     util.MakeTextList(names),
	})
}
