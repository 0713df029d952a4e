// Package util contains small helpers shared across the engine.
package util

import (
	"sort"
	"strings"
)

// MakeTextList gives a prose list of the given names. Zero names yields the
// empty string, one name is returned bare, two are joined with "and", and
// three or more are comma-joined with "and" before the final name
// ("sword, shield, and map"). Order is preserved.
func MakeTextList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}

	head := strings.Join(items[:len(items)-1], ", ")
	return head + ", and " + items[len(items)-1]
}

// OrderedKeys returns the keys of m, ordered a particular way. The order is
// guaranteed to be the same on every run.
//
// As of this writing, the order is alphabetical, but this function does not
// guarantee this will always be the case.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
