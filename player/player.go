package player

import (
	"io"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/blockgame/world"
	"github.com/oomph-ac/blockgame/world/block"
	"github.com/sirupsen/logrus"
)

// WorldProvider is the world a player moves through and interacts with. *world.World implements it.
type WorldProvider interface {
	// Block returns the block at the grid position passed.
	Block(pos cube.Pos) block.Type
	// HasBlock returns true if the cell at the grid position passed is solid.
	HasBlock(pos cube.Pos) bool
	// GroundHeight returns the world space height of the top of the column containing (x, z).
	GroundHeight(x, z float32) float32
	// Raycast marches a ray through the grid and returns the first solid cell it reaches.
	Raycast(origin, dir mgl32.Vec3, reach, step float32) world.RayResult
	// Break replaces the block at the position with air.
	Break(pos cube.Pos)
	// PlaceOfType places a block of the type passed at an empty position.
	PlaceOfType(pos cube.Pos, t block.Type)
}

// Player is the single actor in a world. Its position is the position of its eye: the feet are
// game.EyeHeight below it.
//
// A Player is not safe for concurrent use.
type Player struct {
	w    WorldProvider
	log  *logrus.Logger
	opts Opts

	pos        mgl32.Vec3
	yaw, pitch float32
	vy         float32

	breakCooldown, placeCooldown cooldown
}

// New creates a player in the world passed with its eye at the position passed. A nil logger
// discards all output.
func New(w WorldProvider, pos mgl32.Vec3, opts Opts, log *logrus.Logger) *Player {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	opts = opts.withDefaults()
	return &Player{
		w:             w,
		log:           log,
		opts:          opts,
		pos:           pos,
		breakCooldown: cooldown{duration: opts.BreakCooldown},
		placeCooldown: cooldown{duration: opts.PlaceCooldown},
	}
}

// Position returns the position of the player's eye.
func (p *Player) Position() mgl32.Vec3 {
	return p.pos
}

// Teleport moves the player's eye to the position passed without checking collisions and stops
// any vertical motion.
func (p *Player) Teleport(pos mgl32.Vec3) {
	p.pos = pos
	p.vy = 0
}

// Yaw returns the yaw of the player in degrees.
func (p *Player) Yaw() float32 {
	return p.yaw
}

// Pitch returns the pitch of the player in degrees.
func (p *Player) Pitch() float32 {
	return p.pitch
}

// VelocityY returns the vertical velocity of the player in blocks per tick.
func (p *Player) VelocityY() float32 {
	return p.vy
}

// Opts returns the options the player was created with.
func (p *Player) Opts() Opts {
	return p.opts
}
