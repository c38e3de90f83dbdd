package render

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/blockgame/world/block"
)

// Recorder is a Renderer that keeps the last frame it was given.
type Recorder struct {
	Frames int
	View   View
	Blocks map[cube.Pos]block.Type

	drawing bool
}

// BeginFrame ...
func (r *Recorder) BeginFrame(v View) {
	r.View = v
	r.Blocks = make(map[cube.Pos]block.Type)
	r.drawing = true
}

// DrawBlock ...
func (r *Recorder) DrawBlock(t block.Type, pos cube.Pos) {
	if r.drawing {
		r.Blocks[pos] = t
	}
}

// EndFrame ...
func (r *Recorder) EndFrame() {
	r.drawing = false
	r.Frames++
}
