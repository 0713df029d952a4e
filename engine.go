// Package conworld contains a CLI-driven engine for reading commands and
// advancing a world continuously until the user quits.
package conworld

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/rolph-recto/conworld/internal/cwd"
	"github.com/rolph-recto/conworld/internal/input"
	"github.com/rolph-recto/conworld/internal/iodrv"
)

const consoleOutputWidth = 80

// quitWords end the session when typed on their own; the world itself has
// no quit command.
var quitWords = map[string]bool{
	"quit": true,
	"exit": true,
	"bye":  true,
}

// Engine runs a game session from an interactive shell attached to an input
// stream and an output stream.
type Engine struct {
	driver  *iodrv.Driver
	in      input.Reader
	out     *bufio.Writer
	running bool
}

// New creates an engine for the world in the CWD file at worldFilePath,
// reading commands from inputStream and writing narration to outputStream.
//
// If nil is given for the input stream, stdin is used; if nil is given for
// the output stream, stdout. When attached to stdin/stdout and
// forceDirectInput is false, a readline-backed reader is used so the player
// gets history and line editing.
func New(inputStream io.Reader, outputStream io.Writer, worldFilePath string, forceDirectInput bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	world, err := cwd.LoadWorldFile(worldFilePath)
	if err != nil {
		return nil, err
	}

	eng := &Engine{
		driver: iodrv.New(world.World, world.Kernel),
		out:    bufio.NewWriter(outputStream),
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout
	if useReadline {
		eng.in, err = input.NewInteractiveReader()
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Close closes all resources associated with the Engine.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}

	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close input reader: %w", err)
	}
	return nil
}

// RunUntilQuit reads commands and applies them to the world until the
// player quits or input ends.
func (eng *Engine) RunUntilQuit() error {
	intro := "Welcome to conworld\n"
	intro += "===================\n\n"
	if err := eng.write(intro); err != nil {
		return err
	}

	// start the session by showing the player where they are
	lines, err := eng.driver.Process("look")
	if err != nil {
		return fmt.Errorf("describing starting room: %w", err)
	}
	if err := eng.show(lines); err != nil {
		return err
	}

	eng.running = true
	defer func() {
		eng.running = false
	}()

	for eng.running {
		line, err := eng.in.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("get user command: %w", err)
		}

		if quitWords[strings.ToLower(strings.TrimSpace(line))] {
			break
		}

		lines, err := eng.driver.Process(line)
		if err != nil {
			// a world-authoring defect, not player error; stop loudly
			return fmt.Errorf("executing %q: %w", line, err)
		}
		if err := eng.show(lines); err != nil {
			return err
		}
	}

	return eng.write("Goodbye\n")
}

// show writes one cycle's narration, wrapped for the console.
func (eng *Engine) show(lines []string) error {
	for _, line := range lines {
		wrapped := rosed.Edit(line).Wrap(consoleOutputWidth).String()
		if err := eng.write(wrapped + "\n"); err != nil {
			return err
		}
	}
	return eng.write("\n")
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
