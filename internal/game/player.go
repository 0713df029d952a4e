package game

// File player.go holds the Player entity: the mobile inventory-holding
// agent the commands act through.

import (
	"fmt"

	"github.com/rolph-recto/conworld/internal/echo"
	"github.com/rolph-recto/conworld/internal/event"
	"github.com/rolph-recto/conworld/internal/text"
)

var playerText = map[string]string{
	"TAKE":                     "You take the {item} and put it in your inventory.",
	"TAKE_IN_LOCKED_CONTAINER": "The {item} is locked inside the {container}.",
	"TAKE_NOT_INVENTORY":       "You can't take the {item}.",
	"ALREADY_TAKEN":            "The {item} is already in your inventory.",
	"DISCARD":                  "You discard the {item} and leave it in the {room}.",
	"ALREADY_DISCARDED":        "The {item} is not in your inventory.",
	"NO_PATH":                  "You can't go {direction}.",
	"PATH_BLOCKED":             "The path {direction}ward is blocked.",
}

// PlayerDef is the authoring-time definition a Player is constructed from.
type PlayerDef struct {
	// Location is the room the player starts in. It is required; a player
	// always has a location.
	Location *Room

	// Text overrides or extends the player's built-in templates.
	Text map[string]string
}

// Player is the user's agent in the world: a location and an ordered
// inventory. Every item in the inventory reports this player and no room;
// items stored in a held container are in the inventory list as well,
// filtered out of inventory narration by their owner.
type Player struct {
	location  *Room
	inventory []*Item

	tmpl text.Store
	port echo.Port

	// OnTake and OnDiscard fire with the item after a successful transfer.
	OnTake    event.Event[*Item]
	OnDiscard event.Event[*Item]

	// OnMove fires after the player relocates to a new room.
	OnMove event.Signal
}

// NewPlayer constructs a Player starting in the given location.
func NewPlayer(def PlayerDef) (*Player, error) {
	if def.Location == nil {
		return nil, ErrNoLocation
	}

	p := &Player{location: def.Location}
	p.tmpl.Update(playerText)
	p.tmpl.Update(def.Text)
	return p, nil
}

// Location returns the room the player is in. It is never nil.
func (p *Player) Location() *Room { return p.location }

// Items returns a copy of the inventory in insertion order, including items
// stored inside held containers.
func (p *Player) Items() []*Item {
	return append([]*Item(nil), p.inventory...)
}

// Holds reports whether it is in the player's inventory.
func (p *Player) Holds(it *Item) bool {
	for _, held := range p.inventory {
		if held == it {
			return true
		}
	}
	return false
}

// Item returns the first inventory item whose name or synonyms match name,
// or nil.
func (p *Player) Item(name string) *Item {
	for _, it := range p.inventory {
		if it.Matches(name) {
			return it
		}
	}
	return nil
}

// UpdateText overrides or extends the player's message templates.
func (p *Player) UpdateText(templates map[string]string) {
	p.tmpl.Update(templates)
}

// Subscribe registers a listener for every message the player narrates.
func (p *Player) Subscribe(fn func(string)) event.Subscription {
	return p.port.Subscribe(fn)
}

// Echo relays a message from a held item upward. Player is an echo.Sink for
// its inventory.
func (p *Player) Echo(msg string) {
	p.port.Echo(msg)
}

// Take moves it from the player's current room into the inventory. If the
// item is stored in a container, the container is opened first if needed
// and the item removed from it; a locked container refuses the take. Taking
// a container carries its stored items into the inventory with it.
//
// Failures narrate in order: already in inventory, not holdable, locked
// inside a container. No mutation happens on failure.
func (p *Player) Take(it *Item) {
	if p.Holds(it) {
		p.say("ALREADY_TAKEN", map[string]string{"item": it.name})
		return
	}
	if !it.holdable {
		p.say("TAKE_NOT_INVENTORY", map[string]string{"item": it.name})
		return
	}
	if it.owner != nil && it.owner.locked {
		p.say("TAKE_IN_LOCKED_CONTAINER", map[string]string{
			"item":      it.name,
			"container": it.owner.name,
		})
		return
	}

	if it.owner != nil {
		if !it.owner.opened {
			it.owner.Open()
		}
		it.owner.Remove(it)
	}

	if it.room != nil {
		it.room.drop(it)
		it.room = nil
	}
	it.player = p
	p.inventory = append(p.inventory, it)
	it.attach(p)

	// a container brings its stored items along; they keep their owner and
	// their narration route through it
	if c := it.cont; c != nil {
		for _, sub := range c.items {
			if sub.room != nil {
				sub.room.drop(sub)
				sub.room = nil
			}
			sub.player = p
			p.inventory = append(p.inventory, sub)
		}
	}

	p.say("TAKE", map[string]string{"item": it.name})
	p.OnTake.Trigger(it)
}

// Discard moves it from the inventory back into the player's current room.
// Discarding a container returns its stored items to the room with it.
func (p *Player) Discard(it *Item) {
	if !p.Holds(it) {
		p.say("ALREADY_DISCARDED", map[string]string{"item": it.name})
		return
	}

	p.drop(it)
	it.player = nil
	it.room = p.location
	p.location.adopt(it)
	it.attach(p.location)

	if c := it.cont; c != nil {
		for _, sub := range c.items {
			p.drop(sub)
			sub.player = nil
			sub.room = p.location
			p.location.adopt(sub)
		}
	}

	p.say("DISCARD", map[string]string{"item": it.name, "room": p.location.name})
	p.OnDiscard.Trigger(it)
}

// Give places an item directly into the inventory without narration. It is
// the authoring-time counterpart of Take, used while wiring a world.
func (p *Player) Give(it *Item) error {
	if p.Holds(it) {
		return fmt.Errorf("%s is already in the inventory: %w", it.name, ErrAlreadyPresent)
	}
	if it.room != nil || it.owner != nil {
		return fmt.Errorf("%s is already placed elsewhere: %w", it.name, ErrAlreadyPresent)
	}
	for _, held := range p.inventory {
		if held.Matches(it.name) {
			return fmt.Errorf("name %q is already used in the inventory: %w", it.name, ErrAlreadyPresent)
		}
	}

	it.player = p
	it.attach(p)
	p.inventory = append(p.inventory, it)
	return nil
}

// Move relocates the player through the path leading in the given
// direction. The old room's exit fires, then the destination's enter,
// which narrates the new surroundings. A missing or blocked path leaves
// the player in place with a narrated reason.
func (p *Player) Move(d Direction) {
	path := p.location.Path(d)
	if path == nil {
		p.say("NO_PATH", map[string]string{"direction": d.String()})
		return
	}
	if path.blocked {
		p.say("PATH_BLOCKED", map[string]string{"direction": d.String()})
		return
	}

	p.location.Exit()
	p.location = path.destination
	p.location.Enter()
	p.OnMove.Trigger()
}

// Look narrates the player's current surroundings.
func (p *Player) Look() {
	p.location.Look()
}

// adopt and drop are the raw list mutations used by ownership transfers.
func (p *Player) adopt(it *Item) {
	p.inventory = append(p.inventory, it)
}

func (p *Player) drop(it *Item) {
	for i := range p.inventory {
		if p.inventory[i] == it {
			p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
			return
		}
	}
}

func (p *Player) say(key string, ctx map[string]string) {
	msg, err := p.tmpl.Render(key, ctx)
	if err != nil {
		panic(err)
	}
	p.port.Echo(msg)
}
