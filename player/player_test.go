package player

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/blockgame/game"
	"github.com/oomph-ac/blockgame/world"
	"github.com/oomph-ac/blockgame/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spawn is the eye position of a player standing on the flat world, in grid column (32, 2).
var spawn = mgl32.Vec3{0.5, 3 + game.EyeHeight, -2.5}

func newFlatPlayer(pos mgl32.Vec3) (*world.World, *Player) {
	w := world.New(world.FlatGenerator{}, nil)
	return w, New(w, pos, DefaultOpts(), nil)
}

// solidWorld is a world where every cell is solid.
type solidWorld struct {
	ground float32
}

func (solidWorld) Block(cube.Pos) block.Type { return block.Cobblestone }

func (solidWorld) HasBlock(cube.Pos) bool { return true }

func (s solidWorld) GroundHeight(float32, float32) float32 { return s.ground }

func (solidWorld) Raycast(mgl32.Vec3, mgl32.Vec3, float32, float32) world.RayResult {
	return world.RayResult{}
}

func (solidWorld) Break(cube.Pos) {}

func (solidWorld) PlaceOfType(cube.Pos, block.Type) {}

func TestOptsDefaults(t *testing.T) {
	p := New(world.NewEmpty(nil), mgl32.Vec3{}, Opts{Reach: 3}, nil)
	opts := p.Opts()
	assert.Equal(t, float32(3), opts.Reach)
	assert.Equal(t, game.DefaultRayStep, opts.RayStep)
	assert.Equal(t, game.DefaultActionCooldown, opts.BreakCooldown)
	assert.Equal(t, game.DefaultActionCooldown, opts.PlaceCooldown)
}

func TestLanding(t *testing.T) {
	w, p := newFlatPlayer(mgl32.Vec3{0.5, 10, -2.5})
	ground := w.GroundHeight(0.5, -2.5)
	require.Equal(t, float32(3), ground)

	p.Tick()
	require.False(t, p.OnGround())
	assert.Less(t, p.Position().Y(), float32(10))

	for i := 0; i < 1000; i++ {
		p.Tick()
	}
	require.True(t, p.OnGround())
	assert.Zero(t, p.VelocityY())
	assert.InDelta(t, ground+game.EyeHeight, p.Position().Y(), 1e-5)
	assert.False(t, p.Colliding())
}

func TestStayGrounded(t *testing.T) {
	_, p := newFlatPlayer(spawn)
	for i := 0; i < 10; i++ {
		p.Tick()
		require.True(t, p.OnGround())
	}
	assert.InDelta(t, spawn.Y(), p.Position().Y(), 1e-5)
}

func TestFallThroughEmptyColumn(t *testing.T) {
	p := New(world.NewEmpty(nil), mgl32.Vec3{0.5, 5, -2.5}, DefaultOpts(), nil)
	p.Tick()
	assert.InDelta(t, -game.Gravity, p.VelocityY(), 1e-6)
	assert.InDelta(t, 5-game.Gravity, p.Position().Y(), 1e-5)
}

func TestJump(t *testing.T) {
	_, p := newFlatPlayer(spawn)
	require.True(t, p.OnGround())

	p.Jump(game.DefaultJumpImpulse)
	assert.Equal(t, game.DefaultJumpImpulse, p.VelocityY())

	// Jumping again before landing does nothing.
	p.Jump(0.5)
	assert.Equal(t, game.DefaultJumpImpulse, p.VelocityY())

	p.Tick()
	vy := p.VelocityY()
	assert.InDelta(t, game.DefaultJumpImpulse-game.Gravity, vy, 1e-6)
	assert.Greater(t, p.Position().Y(), spawn.Y())
	p.Jump(game.DefaultJumpImpulse)
	assert.Equal(t, vy, p.VelocityY())

	for i := 0; i < 1000 && !p.OnGround(); i++ {
		p.Tick()
	}
	require.True(t, p.OnGround())
	assert.InDelta(t, spawn.Y(), p.Position().Y(), 1e-5)
}

func TestLook(t *testing.T) {
	p := New(world.NewEmpty(nil), mgl32.Vec3{}, DefaultOpts(), nil)
	p.AddPitch(120)
	assert.Equal(t, game.MaxPitch, p.Pitch())
	p.AddPitch(-300)
	assert.Equal(t, -game.MaxPitch, p.Pitch())
	p.AddPitch(50)
	assert.Equal(t, float32(-39), p.Pitch())

	p.AddYaw(400)
	p.AddYaw(-10)
	assert.Equal(t, float32(390), p.Yaw())
}

func TestCollidesAtTouching(t *testing.T) {
	w, p := newFlatPlayer(spawn)
	// Standing on the ground touches it without colliding.
	assert.False(t, p.Colliding())

	// A block whose bottom face is level with the player's head.
	w.PlaceOfType(cube.Pos{32, 5, 2}, block.Cobblestone)
	assert.False(t, p.Colliding())
	assert.True(t, p.CollidesAt(spawn.Add(mgl32.Vec3{0, 0.01, 0})))

	// Sinking into the ground collides with it, however shallow the overlap.
	assert.True(t, p.CollidesAt(spawn.Sub(mgl32.Vec3{0, 0.01, 0})))
	assert.True(t, p.CollidesAt(spawn.Sub(mgl32.Vec3{0, 0.0005, 0})))
	assert.True(t, p.CollidesAt(spawn.Sub(mgl32.Vec3{0, 0.0001, 0})))
}

// The horizontal cell range is inclusive of the cell the box's max face touches, but not of the cell
// its min face touches.
func TestCollidesAtHorizontalTouching(t *testing.T) {
	w, p := newFlatPlayer(spawn)
	w.PlaceOfType(cube.Pos{33, 4, 2}, block.Cobblestone)
	w.PlaceOfType(cube.Pos{31, 4, 2}, block.Cobblestone)
	w.PlaceOfType(cube.Pos{32, 4, 3}, block.Cobblestone)
	w.PlaceOfType(cube.Pos{32, 4, 1}, block.Cobblestone)
	require.False(t, p.Colliding())

	// The buffered box is 0.8 wide, so these positions put a face exactly on a cell face.
	assert.True(t, p.CollidesAt(mgl32.Vec3{0.6, spawn.Y(), spawn.Z()}))
	assert.False(t, p.CollidesAt(mgl32.Vec3{0.4, spawn.Y(), spawn.Z()}))
	assert.True(t, p.CollidesAt(mgl32.Vec3{spawn.X(), spawn.Y(), -2.6}))
	assert.False(t, p.CollidesAt(mgl32.Vec3{spawn.X(), spawn.Y(), -2.4}))
}

func TestCollidesAtHorizontal(t *testing.T) {
	w, p := newFlatPlayer(spawn)
	w.PlaceOfType(cube.Pos{33, 4, 2}, block.Cobblestone)

	assert.False(t, p.Colliding())
	assert.True(t, p.CollidesAt(spawn.Add(mgl32.Vec3{0.2, 0, 0})))
	assert.False(t, p.CollidesAt(spawn.Add(mgl32.Vec3{-0.2, 0, 0})))
}

func TestMoveDiagonalRejected(t *testing.T) {
	w, p := newFlatPlayer(spawn)
	w.PlaceOfType(cube.Pos{33, 3, 2}, block.Cobblestone)

	assert.False(t, p.Move(0.2, -0.2))
	assert.Equal(t, spawn, p.Position())

	assert.False(t, p.Move(0.2, 0))
	assert.Equal(t, spawn, p.Position())

	assert.True(t, p.Move(0, -0.2))
	assert.InDelta(t, -2.7, p.Position().Z(), 1e-5)
	assert.InDelta(t, 0.5, p.Position().X(), 1e-5)
}

func TestMoveStepUp(t *testing.T) {
	w, p := newFlatPlayer(mgl32.Vec3{0.5, 5.5 + game.EyeHeight, -2.5})
	w.PlaceOfType(cube.Pos{33, 3, 2}, block.Cobblestone)
	w.PlaceOfType(cube.Pos{33, 4, 2}, block.Cobblestone)
	require.False(t, p.Colliding())

	// Two blocks higher while falling.
	p.vy = -0.01
	assert.False(t, p.Move(1, 0))

	// Rising players may move over it.
	p.vy = 0.1
	assert.True(t, p.Move(1, 0))
	assert.InDelta(t, 1.5, p.Position().X(), 1e-5)
}

func TestMoveOneBlockHigher(t *testing.T) {
	w, p := newFlatPlayer(mgl32.Vec3{0.5, 5.5 + game.EyeHeight, -2.5})
	w.PlaceOfType(cube.Pos{33, 3, 2}, block.Cobblestone)

	p.vy = -0.01
	assert.True(t, p.Move(1, 0))
}

func TestStuckNone(t *testing.T) {
	_, p := newFlatPlayer(spawn)
	assert.Equal(t, RecoveryNone, p.CheckAndFixStuckInBlock())
	assert.Equal(t, spawn, p.Position())
}

func TestStuckVertical(t *testing.T) {
	w, p := newFlatPlayer(spawn)
	w.PlaceOfType(cube.Pos{32, 3, 2}, block.Cobblestone)
	require.True(t, p.Colliding())

	assert.Equal(t, RecoveryVertical, p.CheckAndFixStuckInBlock())
	assert.InDelta(t, spawn.Y()+1, p.Position().Y(), 1e-5)
	assert.Equal(t, spawn.X(), p.Position().X())
	assert.Equal(t, spawn.Z(), p.Position().Z())
	assert.False(t, p.Colliding())
}

func TestStuckHorizontal(t *testing.T) {
	w, p := newFlatPlayer(spawn)
	for y := 3; y < 10; y++ {
		w.PlaceOfType(cube.Pos{32, y, 2}, block.Cobblestone)
	}
	require.True(t, p.Colliding())

	assert.Equal(t, RecoveryHorizontal, p.CheckAndFixStuckInBlock())
	assert.InDelta(t, 0.5, p.Position().X(), 1e-5)
	assert.InDelta(t, -1.5, p.Position().Z(), 1e-5)
	assert.Equal(t, spawn.Y(), p.Position().Y())
	assert.False(t, p.Colliding())
}

func TestStuckReset(t *testing.T) {
	p := New(solidWorld{ground: 10}, mgl32.Vec3{0, 5, 0}, DefaultOpts(), nil)
	p.vy = -0.3

	assert.Equal(t, RecoveryReset, p.CheckAndFixStuckInBlock())
	assert.InDelta(t, 10+game.EyeHeight, p.Position().Y(), 1e-5)
	assert.Zero(t, p.VelocityY())
	assert.Equal(t, "reset", RecoveryReset.String())
}

func TestTeleport(t *testing.T) {
	_, p := newFlatPlayer(spawn)
	p.Jump(game.DefaultJumpImpulse)
	p.Teleport(mgl32.Vec3{4, 20, 4})
	assert.Equal(t, mgl32.Vec3{4, 20, 4}, p.Position())
	assert.True(t, p.OnGround())
}
