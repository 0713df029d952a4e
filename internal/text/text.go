// Package text implements the keyed message templates that entities narrate
// with. Each entity carries a Store mapping template keys (such as "TAKE" or
// "ALREADY_OPEN") to format strings; placeholders of the form {name} are
// substituted from a context map at render time. World authors may override
// any template per entity.
package text

import (
	"fmt"
	"strings"
)

// Store holds message templates keyed by name. The zero value is an empty
// Store ready for use.
type Store struct {
	templates map[string]string
}

// NewStore returns a Store pre-loaded with the given templates.
func NewStore(templates map[string]string) Store {
	var s Store
	s.Update(templates)
	return s
}

// Update merges the given templates into the Store, overriding any existing
// entries with the same key. Existing keys not named are left alone;
// templates cannot be removed.
func (s *Store) Update(templates map[string]string) {
	if s.templates == nil {
		s.templates = make(map[string]string, len(templates))
	}
	for k, v := range templates {
		s.templates[k] = v
	}
}

// Has reports whether the Store contains a template for key.
func (s Store) Has(key string) bool {
	_, ok := s.templates[key]
	return ok
}

// Render looks up the template for key and substitutes every {name}
// placeholder with ctx["name"]. Placeholders with no matching context entry
// are left as-is.
//
// Requesting a key the Store does not contain indicates a defect in world
// authoring and returns a non-nil error.
func (s Store) Render(key string, ctx map[string]string) (string, error) {
	tmpl, ok := s.templates[key]
	if !ok {
		return "", fmt.Errorf("template store has no key %q", key)
	}

	if len(ctx) == 0 {
		return tmpl, nil
	}

	pairs := make([]string, 0, len(ctx)*2)
	for k, v := range ctx {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}
