package game

// File errs.go holds the sentinel errors reported for world-authoring
// integrity faults. Narrative failures (a locked chest, a blocked path) are
// never errors; they are echoed to the player and the operation completes
// normally. The errors here mean the world itself was wired incorrectly and
// are returned loudly so authoring code can catch the defect.

import "errors"

var (
	// ErrAlreadyPresent is returned when an entity is added to a scope
	// (room, world, container, kernel) that already holds it, or that
	// already holds an entity with the same name.
	ErrAlreadyPresent = errors.New("already present in scope")

	// ErrNotPresent is returned when an entity is removed from a scope that
	// does not hold it.
	ErrNotPresent = errors.New("not present in scope")

	// ErrOwned is returned when an operation requires an item to be loose
	// but the item is currently inside a container.
	ErrOwned = errors.New("item is inside a container")

	// ErrNotContainable is returned when an item that cannot be stored in
	// containers is placed inside one at authoring time.
	ErrNotContainable = errors.New("item is not containable")

	// ErrNoLocation is returned when a player is constructed without a
	// starting room.
	ErrNoLocation = errors.New("player must have a starting location")
)
