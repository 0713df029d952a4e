package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// pathUnderTest wires a path from the fixture room to a second room and
// attaches it so its narration is captured.
func pathUnderTest(t *testing.T, blocked bool) (*Path, *[]string) {
	t.Helper()

	w, r, lines := worldFixture(t)
	vault := NewRoom(RoomDef{Name: "vault"})
	if err := w.AddRoom(vault); err != nil {
		t.Fatalf("adding fixture room: %v", err)
	}

	p := NewPath(PathDef{
		Name:        "tunnel",
		Source:      r,
		Destination: vault,
		Blocked:     blocked,
	})
	if err := r.SetPath(Down, p); err != nil {
		t.Fatalf("adding fixture path: %v", err)
	}
	return p, lines
}

func Test_Path_Block(t *testing.T) {
	assert := assert.New(t)
	p, lines := pathUnderTest(t, false)

	blocks := 0
	p.OnBlock.Subscribe(func() { blocks++ })

	p.Block()
	assert.True(p.Blocked())
	assert.Equal(1, blocks)
	assert.Equal([]string{"The tunnel to the vault is now blocked."}, *lines)

	p.Block()
	assert.Equal(1, blocks)
	assert.Equal("The tunnel to the vault is already blocked.", (*lines)[len(*lines)-1])
}

func Test_Path_Unblock(t *testing.T) {
	assert := assert.New(t)
	p, lines := pathUnderTest(t, true)

	unblocks := 0
	p.OnUnblock.Subscribe(func() { unblocks++ })

	p.Unblock()
	assert.False(p.Blocked())
	assert.Equal(1, unblocks)
	assert.Equal([]string{"The tunnel to the vault is now unblocked."}, *lines)

	p.Unblock()
	assert.Equal(1, unblocks)
	assert.Equal("The tunnel to the vault is already unblocked.", (*lines)[len(*lines)-1])
}

func Test_Path_Toggle(t *testing.T) {
	assert := assert.New(t)
	p, lines := pathUnderTest(t, false)

	p.Toggle()
	assert.True(p.Blocked())
	p.Toggle()
	assert.False(p.Blocked())

	assert.Equal([]string{
		"The tunnel to the vault is now blocked.",
		"The tunnel to the vault is now unblocked.",
	}, *lines)
}
