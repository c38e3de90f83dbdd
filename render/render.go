package render

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/blockgame/hotbar"
	"github.com/oomph-ac/blockgame/world"
	"github.com/oomph-ac/blockgame/world/block"
)

// View is the state of a session that a frame is drawn from.
type View struct {
	Tick uint64

	Eye        mgl32.Vec3
	Yaw, Pitch float32
	VelocityY  float32
	OnGround   bool

	// Target is the result of the player's view ray this tick.
	Target world.RayResult

	Hotbar   [hotbar.Size]block.Type
	Selected int

	// Debug is a bracketed list of key=value pairs describing the tick.
	Debug string
}

// Renderer draws frames. Blocks are drawn as unit cubes at grid positions; World converts grid
// positions to world space.
type Renderer interface {
	// BeginFrame starts a new frame.
	BeginFrame(v View)
	// DrawBlock draws the solid block t at the grid position passed.
	DrawBlock(t block.Type, pos cube.Pos)
	// EndFrame finishes the frame and presents it.
	EndFrame()
}

// BlockSource is a read-only view of a world.
type BlockSource interface {
	Block(pos cube.Pos) block.Type
}

// World draws every solid block of the world passed.
func World(r Renderer, src BlockSource) {
	for y := 0; y < world.Size; y++ {
		for z := 0; z < world.Size; z++ {
			for x := 0; x < world.Size; x++ {
				pos := cube.Pos{x, y, z}
				if t := src.Block(pos); t.Solid() {
					r.DrawBlock(t, pos)
				}
			}
		}
	}
}

// Frame draws a full frame: the view, then every solid block of the world.
func Frame(r Renderer, v View, src BlockSource) {
	r.BeginFrame(v)
	World(r, src)
	r.EndFrame()
}

// Nop is a Renderer that draws nothing.
type Nop struct{}

func (Nop) BeginFrame(View)                {}
func (Nop) DrawBlock(block.Type, cube.Pos) {}
func (Nop) EndFrame()                      {}
