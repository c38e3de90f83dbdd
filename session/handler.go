package session

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/blockgame/player"
	"github.com/oomph-ac/blockgame/world/block"
)

// Handler handles events that happen during a tick. Handlers are called from the goroutine running
// the session and must not block.
type Handler interface {
	// HandleBreak is called after the player broke the block t at pos.
	HandleBreak(pos cube.Pos, t block.Type)
	// HandlePlace is called after the player placed the block t at pos.
	HandlePlace(pos cube.Pos, t block.Type)
	// HandleRecovery is called after the player was moved out of a block.
	HandleRecovery(r player.Recovery, from, to mgl32.Vec3)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

// Compile time check to make sure NopHandler implements Handler.
var _ Handler = NopHandler{}

func (NopHandler) HandleBreak(cube.Pos, block.Type)                      {}
func (NopHandler) HandlePlace(cube.Pos, block.Type)                      {}
func (NopHandler) HandleRecovery(player.Recovery, mgl32.Vec3, mgl32.Vec3) {}
