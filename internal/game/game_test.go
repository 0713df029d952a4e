package game

// File game_test.go holds the fixtures shared by the entity tests. Every
// fixture wires narration capture at the world's outer edge, the same place
// the I/O driver listens in production.

import (
	"testing"
)

// worldFixture builds a world with one room and a capture of everything
// narrated in it.
func worldFixture(t *testing.T) (*World, *Room, *[]string) {
	t.Helper()

	w := NewWorld()
	r := NewRoom(RoomDef{Name: "cellar", Description: "A dank cellar."})
	if err := w.AddRoom(r); err != nil {
		t.Fatalf("adding fixture room: %v", err)
	}

	var lines []string
	w.Subscribe(func(msg string) {
		lines = append(lines, msg)
	})
	return w, r, &lines
}

// playerFixture extends worldFixture with a second room north of the first
// and a player starting in the first.
func playerFixture(t *testing.T) (*World, *Player, *Room, *Room, *[]string) {
	t.Helper()

	w, cellar, lines := worldFixture(t)

	attic := NewRoom(RoomDef{Name: "attic", Description: "A dusty attic."})
	if err := w.AddRoom(attic); err != nil {
		t.Fatalf("adding fixture room: %v", err)
	}
	if err := cellar.SetPath(North, NewPath(PathDef{
		Name:        "rickety staircase",
		Source:      cellar,
		Destination: attic,
	})); err != nil {
		t.Fatalf("adding fixture path: %v", err)
	}

	p, err := NewPlayer(PlayerDef{Location: cellar})
	if err != nil {
		t.Fatalf("creating fixture player: %v", err)
	}
	w.SetPlayer(p)

	return w, p, cellar, attic, lines
}

// chestFixture places a closed, unlocked container and a containable coin in
// the room. The coin starts loose.
func chestFixture(t *testing.T, r *Room) (*Container, *Item) {
	t.Helper()

	chest := NewContainer(ContainerDef{
		Name:        "chest",
		Description: "A heavy oak chest.",
	})
	coin := NewItem(ItemDef{
		Name:        "coin",
		Description: "A tarnished coin.",
		Holdable:    true,
		Containable: true,
	})

	if err := r.AddItem(chest.AsItem()); err != nil {
		t.Fatalf("adding fixture chest: %v", err)
	}
	if err := r.AddItem(coin); err != nil {
		t.Fatalf("adding fixture coin: %v", err)
	}
	return chest, coin
}

// stash quietly stores it in c, failing the test on an integrity error.
func stash(t *testing.T, c *Container, it *Item) {
	t.Helper()
	if err := c.Put(it); err != nil {
		t.Fatalf("storing fixture item: %v", err)
	}
}
