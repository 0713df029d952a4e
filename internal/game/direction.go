package game

// File direction.go holds the fixed set of directions that paths between
// rooms are labeled with. Synonym resolution ("n", "northward") is not done
// here; it belongs to the command engine's injected configuration.

import "fmt"

// Direction is a compass or vertical direction that a path out of a room can
// be labeled with. A room holds at most one path per Direction.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Up
	Down
)

var directionNames = [...]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
	Up:    "up",
	Down:  "down",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Directions returns all directions in their fixed presentation order. Room
// descriptions list paths in this order.
func Directions() []Direction {
	return []Direction{North, South, East, West, Up, Down}
}

// ParseDirection resolves a canonical direction name. It does not accept
// synonyms; callers with a synonym table resolve those before calling. An
// unknown name is an authoring fault and returns a non-nil error.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if s == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid direction", s)
}
