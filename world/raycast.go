package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/blockgame/game"
)

// RayResult is the outcome of marching a ray through a world.
type RayResult struct {
	// Hit is true if the ray reached a solid block within its length.
	Hit bool
	// Target is the first solid block the ray reached.
	Target cube.Pos
	// Previous is the last empty cell sampled before Target. It is only valid if HasPrevious is true.
	Previous    cube.Pos
	HasPrevious bool
	// Distance is the distance along the ray of the sample that reached Target.
	Distance float32

	// Point and Face are the exact point where the ray enters Target and the face it enters through.
	// They are only set if Intercepted is true, which is not the case if the ray starts inside Target.
	Point       mgl32.Vec3
	Face        cube.Face
	Intercepted bool
}

// Raycast marches a ray from origin along dir, sampling the grid every step units up to reach. The
// march stops at the first sample inside a solid block. Out of bounds samples are treated as air.
func (w *World) Raycast(origin, dir mgl32.Vec3, reach, step float32) RayResult {
	var res RayResult
	for t, sample := range game.MarchRay(origin, dir, reach, step) {
		pos := VecToGrid(sample)
		if !w.HasBlock(pos) {
			res.Previous, res.HasPrevious = pos, true
			continue
		}
		res.Hit, res.Target, res.Distance = true, pos, t

		if hit, ok := trace.BBoxIntercept(CellBox(pos), origin, origin.Add(dir.Mul(reach))); ok {
			res.Point, res.Face, res.Intercepted = hit.Position(), hit.Face(), true
		}
		break
	}
	return res
}
