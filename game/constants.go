package game

const (
	// WorldSize is the side length of the cubic block grid.
	WorldSize = 64

	// Gravity is subtracted from the vertical velocity of the player every tick.
	Gravity = float32(0.008)
	// EyeHeight is the offset from the feet of the player to its tracked position.
	EyeHeight = float32(1.62)
	// PlayerWidth is the width of the player's bounding box on both horizontal axes.
	PlayerWidth = float32(0.6)
	// PlayerHeight is the height of the player's bounding box.
	PlayerHeight = float32(2.0)
	// CollisionBuffer grows the player's bounding box outwards on X and Z when testing collisions.
	CollisionBuffer = float32(0.1)
	// CollisionEpsilon shrinks the vertical cell range of the bounding box by float32 rounding error,
	// so that a box resting on a block face computed from the eye position does not reach into it.
	CollisionEpsilon = float32(1e-5)

	// LandingTolerance is how far above the ground a falling player may be while still snapping onto it.
	LandingTolerance = float32(0.1)
	// MaxStepHeight is the highest ground difference a player may walk onto without rising.
	MaxStepHeight = float32(1.0)
	// DefaultJumpImpulse is the vertical velocity a jump applies.
	DefaultJumpImpulse = float32(0.18)

	// MaxPitch is the absolute pitch the camera is clamped to.
	MaxPitch = float32(89)

	// DefaultReach is how far the view ray travels through the grid.
	DefaultReach = float32(5.0)
	// DefaultRayStep is the distance between two samples of the view ray.
	DefaultRayStep = float32(0.05)
	// DefaultActionCooldown is the minimum time in seconds between two breaks or two placements.
	DefaultActionCooldown = 0.2

	// DefaultMoveSpeed is the horizontal speed of the player in blocks per second.
	DefaultMoveSpeed = float32(5)
	// DefaultMouseSensitivity converts look deltas into degrees.
	DefaultMouseSensitivity = float32(0.08)
	// DefaultTickRate is the number of simulation ticks run per second.
	DefaultTickRate = 60
)

// stuckOffsets is the order in which offsets are tried when pushing a player out of a block.
var stuckOffsets = [...]float32{0, 1, -1, 2, -2, 3}

// StuckOffsets returns the offsets tried, in order, when recovering a player stuck inside a block.
func StuckOffsets() []float32 {
	return stuckOffsets[:]
}
