package game

// File actions.go holds the per-item verb registry. Beyond the built-in
// grammar, world authors can bind extra verbs ("pull lever", "read sign") to
// an item; the kernel's lowest-precedence command resolves the verb here.

import "fmt"

// ActionKind selects the effect an Action has when invoked.
type ActionKind int

const (
	// ActionEcho narrates the action's Message.
	ActionEcho ActionKind = iota

	// ActionLook invokes the item's own look.
	ActionLook

	// ActionOpen through ActionUnlock drive the state machine of the
	// action's bound Container.
	ActionOpen
	ActionClose
	ActionLock
	ActionUnlock

	// ActionBlock through ActionToggle drive the blocked state of the
	// action's bound Path.
	ActionBlock
	ActionUnblock
	ActionToggle
)

// Action is one entry in an item's verb registry: an effect plus the
// arguments it is bound to. Exactly the fields relevant to Kind are used;
// binding an Action whose required field is nil is an authoring fault
// reported when the action is invoked.
type Action struct {
	Kind ActionKind

	// Message is narrated by ActionEcho.
	Message string

	// Container is the target of the container kinds.
	Container *Container

	// Path is the target of the path kinds.
	Path *Path
}

// Bind registers an action under the given verb, replacing any action the
// verb was previously bound to.
func (it *Item) Bind(verb string, act Action) {
	it.actions[verb] = act
}

// Action returns the action bound to verb, if any.
func (it *Item) Action(verb string) (Action, bool) {
	act, ok := it.actions[verb]
	return act, ok
}

// Invoke executes the action bound to verb. It reports false if the item has
// no action for the verb. A non-nil error means the bound action itself is
// malformed, which is a world-authoring fault.
func (it *Item) Invoke(verb string) (bool, error) {
	act, ok := it.actions[verb]
	if !ok {
		return false, nil
	}

	switch act.Kind {
	case ActionEcho:
		it.port.Echo(act.Message)
	case ActionLook:
		it.Look()
	case ActionOpen, ActionClose, ActionLock, ActionUnlock:
		if act.Container == nil {
			return true, fmt.Errorf("action %q on %q has no bound container", verb, it.name)
		}
		switch act.Kind {
		case ActionOpen:
			act.Container.Open()
		case ActionClose:
			act.Container.Close()
		case ActionLock:
			act.Container.Lock()
		case ActionUnlock:
			act.Container.Unlock()
		}
	case ActionBlock, ActionUnblock, ActionToggle:
		if act.Path == nil {
			return true, fmt.Errorf("action %q on %q has no bound path", verb, it.name)
		}
		switch act.Kind {
		case ActionBlock:
			act.Path.Block()
		case ActionUnblock:
			act.Path.Unblock()
		case ActionToggle:
			act.Path.Toggle()
		}
	default:
		return true, fmt.Errorf("action %q on %q has unknown kind %d", verb, it.name, act.Kind)
	}

	return true, nil
}
