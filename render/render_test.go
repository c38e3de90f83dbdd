package render

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/blockgame/world"
	"github.com/oomph-ac/blockgame/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	w := world.NewEmpty(nil)
	w.PlaceOfType(cube.Pos{1, 2, 3}, block.Cobblestone)
	w.PlaceOfType(cube.Pos{4, 0, 4}, block.PlacedDirt)

	r := &Recorder{}
	Frame(r, View{Tick: 7}, w)

	require.Equal(t, 1, r.Frames)
	assert.Equal(t, uint64(7), r.View.Tick)
	assert.Equal(t, map[cube.Pos]block.Type{
		{1, 2, 3}: block.Cobblestone,
		{4, 0, 4}: block.PlacedDirt,
	}, r.Blocks)

	// Blocks drawn outside a frame are ignored.
	r.DrawBlock(block.Grass, cube.Pos{0, 0, 0})
	assert.Len(t, r.Blocks, 2)
}

func TestFrameFlat(t *testing.T) {
	r := &Recorder{}
	Frame(r, View{}, world.New(nil, nil))
	assert.Len(t, r.Blocks, world.Size*world.Size*3)
	assert.Equal(t, block.Grass, r.Blocks[cube.Pos{10, 2, 10}])
}
