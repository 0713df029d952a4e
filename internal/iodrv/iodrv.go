// Package iodrv is the boundary between the engine core and whatever front
// end is driving it. The Driver subscribes to everything the world and the
// kernel narrate, buffers it during one input cycle, and hands the
// accumulated lines back to the caller.
package iodrv

import (
	"github.com/rolph-recto/conworld/internal/command"
	"github.com/rolph-recto/conworld/internal/game"
)

// Driver captures all narration emitted while processing one line of input.
type Driver struct {
	world  *game.World
	kernel *command.Kernel
	out    []string
}

// New builds a Driver over the given world and kernel and subscribes to
// their narration.
func New(w *game.World, k *command.Kernel) *Driver {
	d := &Driver{world: w, kernel: k}
	w.Subscribe(d.capture)
	k.Subscribe(d.capture)
	return d
}

// World returns the world the driver is attached to.
func (d *Driver) World() *game.World { return d.world }

// Kernel returns the kernel the driver feeds.
func (d *Driver) Kernel() *command.Kernel { return d.kernel }

// Process feeds one input line to the kernel and returns every line
// narrated while it ran, clearing the buffer for the next cycle. A non-nil
// error is a world-authoring defect surfacing mid-command, not a player
// mistake.
func (d *Driver) Process(input string) ([]string, error) {
	if err := d.kernel.Input(input); err != nil {
		d.Flush()
		return nil, err
	}

	out := make([]string, len(d.out))
	copy(out, d.out)
	d.Flush()
	return out, nil
}

// Flush discards any buffered output.
func (d *Driver) Flush() {
	d.out = d.out[:0]
}

func (d *Driver) capture(msg string) {
	d.out = append(d.out, msg)
}
