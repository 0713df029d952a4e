package game

// File item.go holds the Item entity and its action registry. Containers are
// a specialization of Item and live in container.go.

import (
	"fmt"
	"strings"

	"github.com/rolph-recto/conworld/internal/echo"
	"github.com/rolph-recto/conworld/internal/event"
	"github.com/rolph-recto/conworld/internal/text"
)

// ItemDef is the authoring-time definition an Item is constructed from.
type ItemDef struct {
	// Name is the canonical name of the item. It must be unique, along with
	// all synonyms, within any scope (room, inventory, container) that holds
	// the item.
	Name string

	// Synonyms are alternate names the player may refer to the item by.
	Synonyms []string

	// Description is what is shown when the player looks at the item.
	Description string

	// Holdable marks the item as takeable into the player's inventory.
	Holdable bool

	// Containable marks the item as storable inside a container.
	Containable bool

	// Text overrides or extends the item's built-in message templates.
	Text map[string]string
}

// Item is an object residing in the world. At any moment an item is in
// exactly one of three places: loose in a room, in the player's inventory,
// or inside a container. Containment transits with the container: an item
// inside a held chest reports the same player as the chest.
type Item struct {
	name        string
	synonyms    []string
	description string
	holdable    bool
	containable bool

	tmpl text.Store
	port echo.Port

	room   *Room
	player *Player
	owner  *Container

	// cont is non-nil when this item is itself a container; it points back
	// to the Container wrapping this Item.
	cont *Container

	actions map[string]Action

	// OnLook fires after the player looks at the item.
	OnLook event.Signal
}

// NewItem constructs an Item from its definition. The item starts detached;
// place it with Room.AddItem or Container.Put.
func NewItem(def ItemDef) *Item {
	it := &Item{
		name:        def.Name,
		synonyms:    append([]string(nil), def.Synonyms...),
		description: def.Description,
		holdable:    def.Holdable,
		containable: def.Containable,
		actions:     make(map[string]Action),
	}
	it.tmpl.Update(def.Text)
	return it
}

func (it *Item) String() string {
	return fmt.Sprintf("Item(%q, (%s))", it.name, strings.Join(it.synonyms, ", "))
}

// Name returns the item's canonical name.
func (it *Item) Name() string { return it.name }

// Synonyms returns a copy of the item's alternate names.
func (it *Item) Synonyms() []string {
	return append([]string(nil), it.synonyms...)
}

// Description returns the item's look description.
func (it *Item) Description() string { return it.description }

// Holdable reports whether the item can be kept in the player's inventory.
func (it *Item) Holdable() bool { return it.holdable }

// Containable reports whether the item can be stored inside a container.
func (it *Item) Containable() bool { return it.containable }

// Room returns the room the item is in, or nil if it is in the player's
// inventory.
func (it *Item) Room() *Room { return it.room }

// Player returns the player holding the item, or nil if it is in a room.
func (it *Item) Player() *Player { return it.player }

// Owner returns the container the item is inside, or nil if it is loose.
func (it *Item) Owner() *Container { return it.owner }

// AsContainer returns the Container this item is, or nil if the item is not
// a container.
func (it *Item) AsContainer() *Container { return it.cont }

// IsContainer reports whether the item is a container.
func (it *Item) IsContainer() bool { return it.cont != nil }

// Matches reports whether name is the item's canonical name or one of its
// synonyms.
func (it *Item) Matches(name string) bool {
	if it.name == name {
		return true
	}
	for _, syn := range it.synonyms {
		if syn == name {
			return true
		}
	}
	return false
}

// UpdateText overrides or extends the item's message templates.
func (it *Item) UpdateText(templates map[string]string) {
	it.tmpl.Update(templates)
}

// Subscribe registers a listener for every message the item narrates. It is
// intended for scripted reactions and tests; the upward echo chain is
// managed by ownership changes and needs no explicit subscription.
func (it *Item) Subscribe(fn func(string)) event.Subscription {
	return it.port.Subscribe(fn)
}

// Look narrates the item's description. If the item is an open container,
// its contents are narrated as well.
func (it *Item) Look() {
	it.port.Echo(it.description)
	if c := it.cont; c != nil && c.opened {
		c.echoContents()
	}
	it.OnLook.Trigger()
}

// Visible reports whether the player can currently see the item: loose
// items always, contained items only while their container is open.
func (it *Item) Visible() bool {
	return it.owner == nil || it.owner.opened
}

// attach routes the item's narration to a new parent sink, revoking the
// subscription to the old parent in the same step.
func (it *Item) attach(sink echo.Sink) {
	it.port.Attach(sink)
}

func (it *Item) say(key string, ctx map[string]string) {
	msg, err := it.tmpl.Render(key, ctx)
	if err != nil {
		// built-in keys are installed by the constructor and cannot be
		// removed, so this indicates engine corruption
		panic(err)
	}
	it.port.Echo(msg)
}
