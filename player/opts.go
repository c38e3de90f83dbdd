package player

import "github.com/oomph-ac/blockgame/game"

// Opts holds the interaction options of a player. Zero values are replaced with their defaults.
type Opts struct {
	// Reach is how far the view ray travels, in blocks.
	Reach float32
	// RayStep is the distance between two samples of the view ray.
	RayStep float32
	// BreakCooldown and PlaceCooldown are the minimum time in seconds between two actions of the
	// same kind.
	BreakCooldown, PlaceCooldown float64
}

// DefaultOpts returns the default player options.
func DefaultOpts() Opts {
	return Opts{
		Reach:         game.DefaultReach,
		RayStep:       game.DefaultRayStep,
		BreakCooldown: game.DefaultActionCooldown,
		PlaceCooldown: game.DefaultActionCooldown,
	}
}

func (o Opts) withDefaults() Opts {
	def := DefaultOpts()
	if o.Reach <= 0 {
		o.Reach = def.Reach
	}
	if o.RayStep <= 0 {
		o.RayStep = def.RayStep
	}
	if o.BreakCooldown <= 0 {
		o.BreakCooldown = def.BreakCooldown
	}
	if o.PlaceCooldown <= 0 {
		o.PlaceCooldown = def.PlaceCooldown
	}
	return o
}
