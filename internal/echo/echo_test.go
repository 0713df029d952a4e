package echo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture is a Sink that records every message it receives.
type capture struct {
	got []string
}

func (c *capture) Echo(msg string) {
	c.got = append(c.got, msg)
}

func Test_Port_echoToParent(t *testing.T) {
	assert := assert.New(t)

	var p Port
	parent := &capture{}

	assert.False(p.Attached())
	p.Attach(parent)
	assert.True(p.Attached())

	p.Echo("hello")
	p.Echo("world")

	assert.Equal([]string{"hello", "world"}, parent.got)
}

func Test_Port_detachedEchoGoesNowhere(t *testing.T) {
	assert := assert.New(t)

	var p Port
	parent := &capture{}
	p.Attach(parent)
	p.Attach(nil)

	assert.False(p.Attached())
	p.Echo("lost")
	assert.Empty(parent.got)
}

func Test_Port_reattachSwitchesParent(t *testing.T) {
	assert := assert.New(t)

	var p Port
	old := &capture{}
	next := &capture{}

	p.Attach(old)
	p.Echo("first")
	p.Attach(next)
	p.Echo("second")

	assert.Equal([]string{"first"}, old.got)
	assert.Equal([]string{"second"}, next.got)
}

func Test_Port_subscribeOutsideParentChain(t *testing.T) {
	assert := assert.New(t)

	var p Port
	parent := &capture{}
	p.Attach(parent)

	var tapped []string
	sub := p.Subscribe(func(msg string) { tapped = append(tapped, msg) })

	p.Echo("both")
	assert.Equal([]string{"both"}, parent.got)
	assert.Equal([]string{"both"}, tapped)

	// reattaching the parent must not disturb the side listener
	p.Attach(&capture{})
	p.Echo("tap only survives")
	assert.Equal([]string{"both", "tap only survives"}, tapped)

	assert.NoError(p.Unsubscribe(sub))
	p.Echo("gone")
	assert.Len(tapped, 2)
}
