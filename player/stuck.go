package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/blockgame/game"
	"github.com/sirupsen/logrus"
)

// Recovery is the corrective action taken for a player stuck inside a block.
type Recovery uint8

const (
	// RecoveryNone means the player was not stuck.
	RecoveryNone Recovery = iota
	// RecoveryVertical means the player was moved up or down.
	RecoveryVertical
	// RecoveryHorizontal means the player was moved along X and Z.
	RecoveryHorizontal
	// RecoveryReset means no nearby free position was found and the player was put on top of
	// the ground of its column.
	RecoveryReset
)

// String ...
func (r Recovery) String() string {
	switch r {
	case RecoveryNone:
		return "none"
	case RecoveryVertical:
		return "vertical"
	case RecoveryHorizontal:
		return "horizontal"
	case RecoveryReset:
		return "reset"
	}
	return "unknown"
}

// CheckAndFixStuckInBlock moves the player out of solid blocks it overlaps. Vertical offsets are
// tried first, then horizontal offsets, and as a last resort the player is put on the ground of its
// column. At most one correction is made per call, so a player deep inside terrain may need several
// ticks to get out.
func (p *Player) CheckAndFixStuckInBlock() Recovery {
	if !p.Colliding() {
		return RecoveryNone
	}
	from := p.pos
	r := p.recover()

	p.log.WithFields(logrus.Fields{
		"from":     from,
		"to":       p.pos,
		"recovery": r,
	}).Debug("player stuck in block")
	return r
}

func (p *Player) recover() Recovery {
	offsets := game.StuckOffsets()
	for _, off := range offsets {
		dest := p.pos.Add(mgl32.Vec3{0, off, 0})
		if dest.Y() >= 0 && !p.CollidesAt(dest) {
			p.pos = dest
			return RecoveryVertical
		}
	}

	for _, dx := range offsets {
		for _, dz := range offsets {
			if dx == 0 && dz == 0 {
				continue
			}
			dest := p.pos.Add(mgl32.Vec3{dx, 0, dz})
			if !p.CollidesAt(dest) {
				p.pos = dest
				return RecoveryHorizontal
			}
		}
	}

	p.pos[1] = p.w.GroundHeight(p.pos.X(), p.pos.Z()) + game.EyeHeight
	p.vy = 0
	return RecoveryReset
}
