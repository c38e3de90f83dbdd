package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/blockgame/game"
)

// Tick applies gravity to the player. A player falling onto the ground is snapped onto it and stops
// falling. Ceilings are not checked here.
func (p *Player) Tick() {
	p.vy -= game.Gravity
	newY := p.pos.Y() + p.vy

	ground := p.w.GroundHeight(p.pos.X(), p.pos.Z()) + game.EyeHeight
	if p.vy <= 0 && newY <= ground+game.LandingTolerance {
		p.pos[1] = ground
		p.vy = 0
		return
	}
	p.pos[1] = newY
}

// OnGround returns true if the player has no vertical velocity. Landing is the only thing that
// zeroes it, so this is an exact comparison.
func (p *Player) OnGround() bool {
	return p.vy == 0
}

// Jump gives the player the vertical velocity passed if it is on the ground.
func (p *Player) Jump(impulse float32) {
	if p.OnGround() {
		p.vy = impulse
	}
}

// Move moves the player horizontally by (dx, dz). Both axes are moved together: the move is rejected
// as a whole if the destination collides, or if the destination's ground is more than one block
// higher while the player is not rising. It returns true if the player moved.
func (p *Player) Move(dx, dz float32) bool {
	dest := p.pos.Add(mgl32.Vec3{dx, 0, dz})
	if p.CollidesAt(dest) {
		return false
	}

	current := p.w.GroundHeight(p.pos.X(), p.pos.Z())
	next := p.w.GroundHeight(dest.X(), dest.Z())
	if next-current > game.MaxStepHeight && p.vy <= 0 {
		return false
	}
	p.pos = dest
	return true
}

// AddYaw rotates the player horizontally. Yaw is not wrapped.
func (p *Player) AddYaw(delta float32) {
	p.yaw += delta
}

// AddPitch rotates the player vertically, keeping the pitch within [-MaxPitch, MaxPitch].
func (p *Player) AddPitch(delta float32) {
	p.pitch = game.ClampFloat(p.pitch+delta, -game.MaxPitch, game.MaxPitch)
}

// Direction returns the unit vector the player is looking along.
func (p *Player) Direction() mgl32.Vec3 {
	return game.DirectionVector(p.yaw, p.pitch)
}
