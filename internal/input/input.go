// Package input contains the sources the interactive engine reads command
// lines from.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader is a source of command input lines.
type Reader interface {
	// ReadLine reads a single input line, blocking until a line containing
	// non-space characters is read. At end of input it returns "", io.EOF.
	ReadLine() (string, error)

	// Close releases any resources the Reader holds. It must be called at
	// least once when the Reader is no longer needed.
	Close() error
}

// DirectReader reads lines from any generic input stream. It does not
// sanitize control or escape sequences; use InteractiveReader when attached
// to a TTY.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader opens a buffered line reader on r.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

// ReadLine reads the next non-blank line.
func (dr *DirectReader) ReadLine() (string, error) {
	for {
		line, err := dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}

// Close is here so DirectReader implements Reader; the underlying stream is
// owned by the caller.
func (dr *DirectReader) Close() error {
	return nil
}

// InteractiveReader reads lines from stdin through a Go implementation of
// GNU Readline, keeping input clear of typing and editing escape sequences
// and enabling command history.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader initializes readline. Close must be called on the
// returned reader to properly tear readline down.
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

// ReadLine reads the next non-blank line from stdin.
func (ir *InteractiveReader) ReadLine() (string, error) {
	for {
		line, err := ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}

// Close tears down readline resources.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}
