package iodrv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rolph-recto/conworld/internal/command"
	"github.com/rolph-recto/conworld/internal/game"
)

func driverFixture(t *testing.T) *Driver {
	t.Helper()

	w := game.NewWorld()
	r := game.NewRoom(game.RoomDef{Name: "cellar", Description: "A dank cellar."})
	if err := w.AddRoom(r); err != nil {
		t.Fatal(err)
	}

	coin := game.NewItem(game.ItemDef{Name: "coin", Description: "A tarnished coin.", Holdable: true})
	if err := r.AddItem(coin); err != nil {
		t.Fatal(err)
	}

	p, err := game.NewPlayer(game.PlayerDef{Location: r})
	if err != nil {
		t.Fatal(err)
	}
	w.SetPlayer(p)

	k, err := command.NewKernel(w, command.Defaults(command.DefaultConfig()))
	if err != nil {
		t.Fatal(err)
	}

	return New(w, k)
}

func Test_Driver_Process(t *testing.T) {
	assert := assert.New(t)
	d := driverFixture(t)

	lines, err := d.Process("look")
	assert.NoError(err)
	assert.Equal([]string{
		"A dank cellar.",
		"You see coin here.",
	}, lines)
}

func Test_Driver_Process_bufferClearsBetweenCycles(t *testing.T) {
	assert := assert.New(t)
	d := driverFixture(t)

	first, err := d.Process("take the coin")
	assert.NoError(err)
	assert.Equal([]string{"You take the coin and put it in your inventory."}, first)

	// nothing from the first cycle leaks into the second
	second, err := d.Process("inventory")
	assert.NoError(err)
	assert.Equal([]string{"You have coin in your inventory."}, second)
}

func Test_Driver_Process_noMatchFallback(t *testing.T) {
	assert := assert.New(t)
	d := driverFixture(t)

	lines, err := d.Process("xyzzy")
	assert.NoError(err)
	assert.Equal([]string{"I don't understand what you mean."}, lines)
}

func Test_Driver_Process_worldFaultFlushesBuffer(t *testing.T) {
	assert := assert.New(t)
	d := driverFixture(t)

	button := game.NewItem(game.ItemDef{Name: "button"})
	assert.NoError(d.World().Player().Location().AddItem(button))
	button.Bind("press", game.Action{Kind: game.ActionOpen})

	lines, err := d.Process("press the button")
	assert.Error(err)
	assert.Nil(lines)

	// the driver is usable again afterward
	lines, err = d.Process("look")
	assert.NoError(err)
	assert.NotEmpty(lines)
}
