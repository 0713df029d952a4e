package command

// File kernel.go holds the Kernel, which owns the ordered command list and
// feeds input through it.

import (
	"fmt"

	"github.com/rolph-recto/conworld/internal/echo"
	"github.com/rolph-recto/conworld/internal/event"
	"github.com/rolph-recto/conworld/internal/game"
	"github.com/rolph-recto/conworld/internal/text"
)

var kernelText = map[string]string{
	"NO_COMMAND": "I don't understand what you mean.",
}

// Kernel feeds input lines to an ordered list of commands. The first
// command whose pattern matches wins and later commands are not tried; if
// none match, the kernel narrates a single fallback message and mutates
// nothing.
type Kernel struct {
	world    *game.World
	commands []*Command

	tmpl text.Store
	port echo.Port
}

// NewKernel builds a kernel over the given world with the given commands in
// precedence order.
func NewKernel(w *game.World, commands []*Command) (*Kernel, error) {
	k := &Kernel{world: w}
	k.tmpl.Update(kernelText)

	if err := k.AddCommands(commands); err != nil {
		return nil, err
	}
	return k, nil
}

// World returns the world the kernel drives.
func (k *Kernel) World() *game.World { return k.world }

// Commands returns a copy of the command list in precedence order.
func (k *Kernel) Commands() []*Command {
	return append([]*Command(nil), k.commands...)
}

// AddCommand appends a command at the lowest precedence and routes its
// narration through the kernel. Registering the same command twice is an
// authoring fault.
func (k *Kernel) AddCommand(c *Command) error {
	for _, held := range k.commands {
		if held == c {
			return fmt.Errorf("command %q is already in the kernel: %w", c.name, game.ErrAlreadyPresent)
		}
	}

	c.port.Attach(k)
	k.commands = append(k.commands, c)
	return nil
}

// AddCommands appends multiple commands in order.
func (k *Kernel) AddCommands(commands []*Command) error {
	for _, c := range commands {
		if err := k.AddCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// Echo relays a command's narration upward. Kernel is an echo.Sink for its
// commands.
func (k *Kernel) Echo(msg string) {
	k.port.Echo(msg)
}

// Subscribe registers a listener for kernel and command narration; the I/O
// driver subscribes here alongside the world.
func (k *Kernel) Subscribe(fn func(string)) event.Subscription {
	return k.port.Subscribe(fn)
}

// UpdateText overrides or extends the kernel's message templates.
func (k *Kernel) UpdateText(templates map[string]string) {
	k.tmpl.Update(templates)
}

// Input feeds one line of input through the command list. A non-nil error
// means a matched command surfaced a world-authoring defect; player-facing
// failures are narrated, never returned.
func (k *Kernel) Input(input string) error {
	for _, c := range k.commands {
		matched, err := c.Match(k.world, input)
		if err != nil {
			return err
		}
		if matched {
			return nil
		}
	}

	msg, err := k.tmpl.Render("NO_COMMAND", nil)
	if err != nil {
		return err
	}
	k.port.Echo(msg)
	return nil
}
