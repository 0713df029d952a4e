// Package command implements the command-matching engine: free-text input
// is preprocessed into a normalized token string, matched against an
// ordered list of command patterns, and the first match dispatches a
// world-mutating action. The Kernel holds the ordered list and narrates a
// fallback when nothing matches.
package command

import (
	"regexp"
	"strings"

	"github.com/rolph-recto/conworld/internal/echo"
	"github.com/rolph-recto/conworld/internal/event"
	"github.com/rolph-recto/conworld/internal/game"
	"github.com/rolph-recto/conworld/internal/text"
)

// punctuation is the fixed character class stripped from input before
// matching.
var punctuation = regexp.MustCompile("[`~!@#$%^&*()\\-=_+,./<>?;':\"\\[\\]{}|]")

// Args holds the named argument slots extracted by a command's pattern.
type Args map[string]string

// Command is one entry in the kernel's ordered list: a preprocessing
// stopword set, a pattern with named argument groups, and the action run on
// a match.
type Command struct {
	name      string
	pattern   *regexp.Regexp
	stopwords []string
	tmpl      text.Store
	port      echo.Port

	// run mutates the world with the extracted arguments. Narrative
	// failures are narrated inside run; a non-nil error means a
	// world-authoring defect surfaced during execution.
	run func(c *Command, w *game.World, args Args) error
}

// New builds a command. The pattern is compiled as given; anchor it with
// ^...$ if the command should only match whole inputs. Stopwords are the
// words removed from input before this command matches; commands that reuse
// a stopword as a grammatical marker pass a reduced list.
func New(name, pattern string, stopwords []string, templates map[string]string, run func(c *Command, w *game.World, args Args) error) *Command {
	cmd := &Command{
		name:      name,
		pattern:   regexp.MustCompile(pattern),
		stopwords: append([]string(nil), stopwords...),
		run:       run,
	}
	cmd.tmpl.Update(templates)
	return cmd
}

// Name returns the command's name.
func (c *Command) Name() string { return c.name }

// UpdateText overrides or extends the command's message templates.
func (c *Command) UpdateText(templates map[string]string) {
	c.tmpl.Update(templates)
}

// Subscribe registers a listener for the command's own narration (failure
// messages that no entity owns).
func (c *Command) Subscribe(fn func(string)) event.Subscription {
	return c.port.Subscribe(fn)
}

// Preprocess normalizes input for matching: lowercase, punctuation
// stripped, the command's stopwords dropped, and whitespace collapsed to
// single spaces.
func (c *Command) Preprocess(input string) string {
	return preprocess(input, c.stopwords)
}

func preprocess(input string, stopwords []string) string {
	result := strings.ToLower(input)
	result = punctuation.ReplaceAllString(result, "")

	words := strings.Fields(result)
	kept := words[:0]
	for _, w := range words {
		stop := false
		for _, sw := range stopwords {
			if w == sw {
				stop = true
				break
			}
		}
		if !stop {
			kept = append(kept, w)
		}
	}

	return strings.Join(kept, " ")
}

// Match preprocesses input, applies the command's pattern, and on a match
// executes the command against the world with the extracted named
// arguments. It reports whether the pattern matched; a non-nil error means
// the pattern matched but execution hit a world-authoring defect. On no
// match, no side effect occurs.
func (c *Command) Match(w *game.World, input string) (bool, error) {
	processed := preprocess(input, c.stopwords)

	m := c.pattern.FindStringSubmatch(processed)
	if m == nil {
		return false, nil
	}

	args := make(Args)
	for i, name := range c.pattern.SubexpNames() {
		if name != "" && i < len(m) {
			args[name] = m[i]
		}
	}

	if err := c.run(c, w, args); err != nil {
		return true, err
	}
	return true, nil
}

func (c *Command) say(key string, ctx map[string]string) {
	msg, err := c.tmpl.Render(key, ctx)
	if err != nil {
		panic(err)
	}
	c.port.Echo(msg)
}

// findItem resolves an item name against the current room first, then the
// player's inventory. Names match an item's canonical name or any synonym.
func findItem(w *game.World, name string) *game.Item {
	if it := w.Player().Location().Item(name); it != nil {
		return it
	}
	return w.Player().Item(name)
}
