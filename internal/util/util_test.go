package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MakeTextList(t *testing.T) {
	testCases := []struct {
		name   string
		input  []string
		expect string
	}{
		{
			name:   "empty",
			input:  nil,
			expect: "",
		},
		{
			name:   "one item",
			input:  []string{"sword"},
			expect: "sword",
		},
		{
			name:   "two items",
			input:  []string{"sword", "shield"},
			expect: "sword and shield",
		},
		{
			name:   "three items",
			input:  []string{"sword", "shield", "map"},
			expect: "sword, shield, and map",
		},
		{
			name:   "four items",
			input:  []string{"a", "b", "c", "d"},
			expect: "a, b, c, and d",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := MakeTextList(tc.input)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_OrderedKeys(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"delta": 4, "alpha": 1, "charlie": 3, "bravo": 2}
	assert.Equal([]string{"alpha", "bravo", "charlie", "delta"}, OrderedKeys(m))

	assert.Empty(OrderedKeys(map[string]int{}))
}
