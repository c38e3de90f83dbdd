package player

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/blockgame/world"
	"github.com/oomph-ac/blockgame/world/block"
)

// InteractionResult holds what the player was looking at during a tick and what it changed.
type InteractionResult struct {
	// Ray is the result of the view ray cast this tick.
	Ray world.RayResult

	Broke     bool
	BrokePos  cube.Pos
	BrokeType block.Type

	Placed     bool
	PlacedPos  cube.Pos
	PlacedType block.Type
}

// Interact casts the player's view ray and breaks or places blocks. now is the current time in
// seconds from a monotonic clock. A break is made if breaking is true and the break cooldown has
// elapsed. A block of the selected type is placed in the last empty cell before the target if
// placing is true, the place cooldown has elapsed and the selected type is solid. Breaking happens
// before placing. Nothing happens if the ray does not reach a solid block.
func (p *Player) Interact(now float64, breaking, placing bool, selected block.Type) InteractionResult {
	res := InteractionResult{Ray: p.w.Raycast(p.pos, p.Direction(), p.opts.Reach, p.opts.RayStep)}
	if !res.Ray.Hit {
		return res
	}

	if breaking && p.breakCooldown.ready(now) {
		pos := res.Ray.Target
		res.BrokeType = p.w.Block(pos)
		p.w.Break(pos)
		p.breakCooldown.reset(now)
		res.Broke, res.BrokePos = true, pos
	}
	if placing && res.Ray.HasPrevious && selected.Solid() && p.placeCooldown.ready(now) {
		pos := res.Ray.Previous
		p.w.PlaceOfType(pos, selected)
		p.placeCooldown.reset(now)
		if p.w.HasBlock(pos) {
			res.Placed, res.PlacedPos, res.PlacedType = true, pos, selected
		}
	}
	return res
}

// cooldown gates an action to once per duration. A cooldown that was never reset is always ready.
type cooldown struct {
	duration float64
	last     float64
	used     bool
}

func (c *cooldown) ready(now float64) bool {
	return !c.used || now-c.last >= c.duration
}

func (c *cooldown) reset(now float64) {
	c.last, c.used = now, true
}
