package command

// File config.go holds the vocabulary configuration injected into the
// command engine at construction. There are no process-wide tables; a
// kernel sees exactly the directions and stopwords its commands were built
// with.

import "github.com/rolph-recto/conworld/internal/game"

// Config is the immutable vocabulary the built-in commands are constructed
// with.
type Config struct {
	// Directions maps direction words the player may type, canonical names
	// and synonyms alike, to their direction.
	Directions map[string]game.Direction

	// Stopwords are dropped from input during preprocessing. Individual
	// commands may retain some of them as grammatical markers; see
	// Command's stopword handling.
	Stopwords []string
}

// DefaultConfig returns the stock vocabulary: the six directions with their
// shorthand and "-ward(s)" synonyms, and the standard stopword list.
func DefaultConfig() Config {
	dirs := make(map[string]game.Direction)
	for _, d := range game.Directions() {
		name := d.String()
		dirs[name] = d
		dirs[name[:1]] = d
		dirs[name+"ward"] = d
		dirs[name+"wards"] = d
	}

	return Config{
		Directions: dirs,
		Stopwords:  []string{"the", "a", "on", "in", "inside", "at", "to", "room", "around"},
	}
}

// without returns the config's stopwords minus the given words. Commands
// that use a stopword as a grammatical marker ("put X in Y") preprocess
// with a reduced list.
func (cfg Config) without(words ...string) []string {
	kept := make([]string, 0, len(cfg.Stopwords))
	for _, sw := range cfg.Stopwords {
		drop := false
		for _, w := range words {
			if sw == w {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, sw)
		}
	}
	return kept
}
