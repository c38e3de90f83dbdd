package player

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/blockgame/game"
	"github.com/oomph-ac/blockgame/world"
)

// CollidesAt returns true if the player's bounding box, with its eye at the position passed, would
// overlap a solid block. Boxes that only touch a block vertically do not collide with it.
func (p *Player) CollidesAt(pos mgl32.Vec3) bool {
	return collides(p.w, game.PlayerBBox(pos))
}

// Colliding returns true if the player currently overlaps a solid block.
func (p *Player) Colliding() bool {
	return p.CollidesAt(p.pos)
}

func collides(w WorldProvider, box cube.BBox) bool {
	bbMin, bbMax := box.Min(), box.Max()

	// Grid Z grows towards negative world Z, so the box's max Z maps to the lowest cell.
	lo := world.WorldToGrid(bbMin.X(), bbMin.Y()+game.CollisionEpsilon, bbMax.Z())
	hi := world.WorldToGrid(bbMax.X(), bbMax.Y()-game.CollisionEpsilon, bbMin.Z())

	for y := lo.Y(); y <= hi.Y(); y++ {
		if !game.VerticalOverlap(box, y) {
			continue
		}
		for x := lo.X(); x <= hi.X(); x++ {
			for z := lo.Z(); z <= hi.Z(); z++ {
				if w.HasBlock(cube.Pos{x, y, z}) {
					return true
				}
			}
		}
	}
	return false
}
