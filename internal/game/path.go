package game

// File path.go holds the Path entity: a directed, blockable edge between
// two rooms.

import (
	"fmt"

	"github.com/rolph-recto/conworld/internal/echo"
	"github.com/rolph-recto/conworld/internal/event"
	"github.com/rolph-recto/conworld/internal/text"
)

var pathText = map[string]string{
	"BLOCK":             "The {path} to the {destination} is now blocked.",
	"ALREADY_BLOCKED":   "The {path} to the {destination} is already blocked.",
	"UNBLOCK":           "The {path} to the {destination} is now unblocked.",
	"ALREADY_UNBLOCKED": "The {path} to the {destination} is already unblocked.",
}

// PathDef is the authoring-time definition a Path is constructed from.
type PathDef struct {
	// Name is the display name of the path ("iron gate", "narrow tunnel").
	Name string

	// Source and Destination are the rooms the path leads from and to.
	// Travel is one-way; author the reverse path separately.
	Source      *Room
	Destination *Room

	// Blocked sets the initial blocked state.
	Blocked bool

	// Text overrides or extends the path's built-in templates.
	Text map[string]string
}

// Path is a one-way connection out of a room, labeled with a direction by
// the room that holds it. A blocked path exists and is described, but
// cannot be traveled.
type Path struct {
	name        string
	source      *Room
	destination *Room
	blocked     bool

	tmpl text.Store
	port echo.Port

	// OnBlock and OnUnblock fire after the corresponding successful
	// transition.
	OnBlock   event.Signal
	OnUnblock event.Signal
}

// NewPath constructs a Path from its definition. Attach it to its source
// room with Room.SetPath.
func NewPath(def PathDef) *Path {
	p := &Path{
		name:        def.Name,
		source:      def.Source,
		destination: def.Destination,
		blocked:     def.Blocked,
	}
	p.tmpl.Update(pathText)
	p.tmpl.Update(def.Text)
	return p
}

func (p *Path) String() string {
	dest := "<nowhere>"
	if p.destination != nil {
		dest = p.destination.name
	}
	return fmt.Sprintf("Path(%q -> %s)", p.name, dest)
}

// Name returns the path's display name.
func (p *Path) Name() string { return p.name }

// Source returns the room the path leads from.
func (p *Path) Source() *Room { return p.source }

// Destination returns the room the path leads to.
func (p *Path) Destination() *Room { return p.destination }

// Blocked reports whether the path is blocked.
func (p *Path) Blocked() bool { return p.blocked }

// UpdateText overrides or extends the path's message templates.
func (p *Path) UpdateText(templates map[string]string) {
	p.tmpl.Update(templates)
}

// Subscribe registers a listener for every message the path narrates.
func (p *Path) Subscribe(fn func(string)) event.Subscription {
	return p.port.Subscribe(fn)
}

// Block blocks the path. Blocking an already-blocked path narrates that and
// changes nothing.
func (p *Path) Block() {
	if p.blocked {
		p.say("ALREADY_BLOCKED")
		return
	}
	p.blocked = true
	p.say("BLOCK")
	p.OnBlock.Trigger()
}

// Unblock unblocks the path.
func (p *Path) Unblock() {
	if !p.blocked {
		p.say("ALREADY_UNBLOCKED")
		return
	}
	p.blocked = false
	p.say("UNBLOCK")
	p.OnUnblock.Trigger()
}

// Toggle flips the path between blocked and unblocked.
func (p *Path) Toggle() {
	if p.blocked {
		p.Unblock()
	} else {
		p.Block()
	}
}

func (p *Path) say(key string) {
	dest := ""
	if p.destination != nil {
		dest = p.destination.name
	}
	msg, err := p.tmpl.Render(key, map[string]string{
		"path":        p.name,
		"destination": dest,
	})
	if err != nil {
		panic(err)
	}
	p.port.Echo(msg)
}
