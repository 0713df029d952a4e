package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewPlayer_requiresLocation(t *testing.T) {
	assert := assert.New(t)

	_, err := NewPlayer(PlayerDef{})
	assert.ErrorIs(err, ErrNoLocation)
}

func Test_Player_Take(t *testing.T) {
	t.Run("loose room item", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)

		coin := NewItem(ItemDef{Name: "coin", Holdable: true, Containable: true})
		assert.NoError(cellar.AddItem(coin))
		*lines = nil

		var taken *Item
		p.OnTake.Subscribe(func(it *Item) { taken = it })

		p.Take(coin)

		assert.True(p.Holds(coin))
		assert.Same(p, coin.Player())
		assert.Nil(coin.Room())
		assert.Empty(cellar.Items())
		assert.Same(coin, taken)
		assert.Equal([]string{"You take the coin and put it in your inventory."}, *lines)
	})

	t.Run("already in inventory", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)

		coin := NewItem(ItemDef{Name: "coin", Holdable: true})
		assert.NoError(cellar.AddItem(coin))
		p.Take(coin)
		*lines = nil

		p.Take(coin)
		assert.Equal([]string{"The coin is already in your inventory."}, *lines)
	})

	t.Run("not holdable", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)

		anvil := NewItem(ItemDef{Name: "anvil"})
		assert.NoError(cellar.AddItem(anvil))
		*lines = nil

		p.Take(anvil)

		assert.False(p.Holds(anvil))
		assert.Equal([]string{"You can't take the anvil."}, *lines)
	})

	t.Run("locked inside a container", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)

		chest, coin := chestFixture(t, cellar)
		stash(t, chest, coin)
		chest.Lock()
		*lines = nil

		p.Take(coin)

		assert.False(p.Holds(coin))
		assert.Equal(chest, coin.Owner())
		assert.Equal([]string{"The coin is locked inside the chest."}, *lines)
	})

	t.Run("closed container is opened on the way", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)

		chest, coin := chestFixture(t, cellar)
		stash(t, chest, coin)
		*lines = nil

		p.Take(coin)

		assert.True(p.Holds(coin))
		assert.Nil(coin.Owner())
		assert.True(chest.Opened())
		assert.Equal([]string{
			"You open the chest.",
			"Inside the chest you see coin.",
			"You take the coin out of the chest.",
			"You take the coin and put it in your inventory.",
		}, *lines)
	})

	t.Run("narration re-routes from room to player", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)

		coin := NewItem(ItemDef{Name: "coin", Description: "A tarnished coin.", Holdable: true})
		assert.NoError(cellar.AddItem(coin))

		var roomTap []string
		cellar.Subscribe(func(msg string) { roomTap = append(roomTap, msg) })

		coin.Look()
		assert.Equal([]string{"A tarnished coin."}, roomTap)

		p.Take(coin)
		*lines = nil
		roomTap = nil

		// the old room no longer hears the item, the world still does
		coin.Look()
		assert.Empty(roomTap)
		assert.Equal([]string{"A tarnished coin."}, *lines)
	})

	t.Run("taking a container carries its contents", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)

		satchel := NewContainer(ContainerDef{Name: "satchel", Holdable: true})
		coin := NewItem(ItemDef{Name: "coin", Holdable: true, Containable: true})
		assert.NoError(cellar.AddItem(satchel.AsItem()))
		assert.NoError(cellar.AddItem(coin))
		stash(t, satchel, coin)
		*lines = nil

		p.Take(satchel.AsItem())

		assert.True(p.Holds(satchel.AsItem()))
		assert.True(p.Holds(coin))
		assert.Same(p, coin.Player())
		assert.Nil(coin.Room())
		// the coin stays stored; the satchel just travels
		assert.Equal(satchel, coin.Owner())
		assert.Empty(cellar.Items())
		assert.Equal([]string{"You take the satchel and put it in your inventory."}, *lines)
	})
}

func Test_Player_Discard(t *testing.T) {
	t.Run("not in inventory", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)

		coin := NewItem(ItemDef{Name: "coin", Holdable: true})
		assert.NoError(cellar.AddItem(coin))
		*lines = nil

		p.Discard(coin)
		assert.Equal([]string{"The coin is not in your inventory."}, *lines)
	})

	t.Run("held item returns to the room", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)

		coin := NewItem(ItemDef{Name: "coin", Holdable: true})
		assert.NoError(cellar.AddItem(coin))
		p.Take(coin)
		*lines = nil

		var discarded *Item
		p.OnDiscard.Subscribe(func(it *Item) { discarded = it })

		p.Discard(coin)

		assert.False(p.Holds(coin))
		assert.Equal(cellar, coin.Room())
		assert.Nil(coin.Player())
		assert.Same(coin, discarded)
		assert.Equal([]string{"You discard the coin and leave it in the cellar."}, *lines)
	})

	t.Run("discarding a container returns its contents too", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)

		satchel := NewContainer(ContainerDef{Name: "satchel", Holdable: true})
		coin := NewItem(ItemDef{Name: "coin", Holdable: true, Containable: true})
		assert.NoError(cellar.AddItem(satchel.AsItem()))
		assert.NoError(cellar.AddItem(coin))
		stash(t, satchel, coin)
		p.Take(satchel.AsItem())
		*lines = nil

		p.Discard(satchel.AsItem())

		assert.Empty(p.Items())
		assert.Equal(cellar, coin.Room())
		assert.Equal(satchel, coin.Owner())
		assert.Equal([]string{"You discard the satchel and leave it in the cellar."}, *lines)
	})
}

func Test_Player_Move(t *testing.T) {
	t.Run("no path", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)
		*lines = nil

		p.Move(South)

		assert.Equal(cellar, p.Location())
		assert.Equal([]string{"You can't go south."}, *lines)
	})

	t.Run("blocked path", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, _, lines := playerFixture(t)
		cellar.Path(North).blocked = true
		*lines = nil

		p.Move(North)

		assert.Equal(cellar, p.Location())
		assert.Equal([]string{"The path northward is blocked."}, *lines)
	})

	t.Run("travel narrates the destination", func(t *testing.T) {
		assert := assert.New(t)
		_, p, cellar, attic, lines := playerFixture(t)

		exited, entered, moved := 0, 0, 0
		cellar.OnExit.Subscribe(func() { exited++ })
		attic.OnEnter.Subscribe(func() { entered++ })
		p.OnMove.Subscribe(func() { moved++ })
		*lines = nil

		p.Move(North)

		assert.Equal(attic, p.Location())
		assert.Equal(1, exited)
		assert.Equal(1, entered)
		assert.Equal(1, moved)
		assert.Equal([]string{
			"You enter the attic.",
			"A dusty attic.",
			"There is nothing of interest here.",
		}, *lines)
	})
}

func Test_Player_Give(t *testing.T) {
	assert := assert.New(t)
	_, p, cellar, _, lines := playerFixture(t)
	*lines = nil

	coin := NewItem(ItemDef{Name: "coin", Holdable: true})
	assert.NoError(p.Give(coin))
	assert.True(p.Holds(coin))
	assert.Empty(*lines)

	// twice is a fault
	assert.ErrorIs(p.Give(coin), ErrAlreadyPresent)

	// an item placed in a room cannot also be given
	rock := NewItem(ItemDef{Name: "rock"})
	assert.NoError(cellar.AddItem(rock))
	assert.ErrorIs(p.Give(rock), ErrAlreadyPresent)

	// name collisions in the inventory are a fault
	fake := NewItem(ItemDef{Name: "coin"})
	assert.ErrorIs(p.Give(fake), ErrAlreadyPresent)
}
