package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rolph-recto/conworld/internal/game"
)

func Test_preprocess(t *testing.T) {
	stops := DefaultConfig().Stopwords

	testCases := []struct {
		name      string
		input     string
		stopwords []string
		expect    string
	}{
		{
			name:      "lowercases",
			input:     "LOOK",
			stopwords: stops,
			expect:    "look",
		},
		{
			name:      "strips punctuation",
			input:     "take the coin!",
			stopwords: stops,
			expect:    "take coin",
		},
		{
			name:      "drops stopwords",
			input:     "look around the room",
			stopwords: stops,
			expect:    "look",
		},
		{
			name:      "collapses whitespace",
			input:     "  go   north  ",
			stopwords: stops,
			expect:    "go north",
		},
		{
			name:      "stopword inside a word survives",
			input:     "take the lantern",
			stopwords: stops,
			expect:    "take lantern",
		},
		{
			name:      "reduced stopword list keeps the marker",
			input:     "put the coin in the chest",
			stopwords: DefaultConfig().without("in", "inside"),
			expect:    "put coin in chest",
		},
		{
			name:      "empty input",
			input:     "",
			stopwords: stops,
			expect:    "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := preprocess(tc.input, tc.stopwords)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Command_Match_extractsNamedArgs(t *testing.T) {
	assert := assert.New(t)

	var got Args
	cmd := New("take", `^take (?P<item_name>[\w\s\d]+)$`, DefaultConfig().Stopwords, nil,
		func(c *Command, w *game.World, args Args) error {
			got = args
			return nil
		})

	matched, err := cmd.Match(nil, "take the gold coin")
	assert.NoError(err)
	assert.True(matched)
	assert.Equal(Args{"item_name": "gold coin"}, got)
}

func Test_Command_Match_noMatchNoSideEffect(t *testing.T) {
	assert := assert.New(t)

	ran := false
	cmd := New("take", `^take (?P<item_name>[\w\s\d]+)$`, DefaultConfig().Stopwords, nil,
		func(c *Command, w *game.World, args Args) error {
			ran = true
			return nil
		})

	matched, err := cmd.Match(nil, "drop the gold coin")
	assert.NoError(err)
	assert.False(matched)
	assert.False(ran)
}

func Test_DefaultConfig_directions(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()

	for _, d := range game.Directions() {
		name := d.String()
		assert.Equal(d, cfg.Directions[name])
		assert.Equal(d, cfg.Directions[name[:1]])
		assert.Equal(d, cfg.Directions[name+"ward"])
		assert.Equal(d, cfg.Directions[name+"wards"])
	}
}

func Test_Config_without(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()

	reduced := cfg.without("in", "inside")
	assert.NotContains(reduced, "in")
	assert.NotContains(reduced, "inside")
	assert.Contains(reduced, "the")

	// the config itself is untouched
	assert.Contains(cfg.Stopwords, "in")
}
