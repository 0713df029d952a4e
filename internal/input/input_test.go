package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DirectReader_ReadLine(t *testing.T) {
	assert := assert.New(t)

	dr := NewDirectReader(strings.NewReader("look\n\n   \ntake coin\n"))

	line, err := dr.ReadLine()
	assert.NoError(err)
	assert.Equal("look", line)

	// blank lines are skipped
	line, err = dr.ReadLine()
	assert.NoError(err)
	assert.Equal("take coin", line)

	_, err = dr.ReadLine()
	assert.Equal(io.EOF, err)

	assert.NoError(dr.Close())
}

func Test_DirectReader_lastLineWithoutNewline(t *testing.T) {
	assert := assert.New(t)

	dr := NewDirectReader(strings.NewReader("quit"))

	line, err := dr.ReadLine()
	assert.NoError(err)
	assert.Equal("quit", line)

	_, err = dr.ReadLine()
	assert.Equal(io.EOF, err)
}

func Test_DirectReader_whitespaceTrimmed(t *testing.T) {
	assert := assert.New(t)

	dr := NewDirectReader(strings.NewReader("  go north  \n"))

	line, err := dr.ReadLine()
	assert.NoError(err)
	assert.Equal("go north", line)
}
