package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box from the given dimensions.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// PlayerBBox returns the collision box of a player whose eye is at the position passed. The box
// spans from the feet (eye - EyeHeight) to the head (feet + PlayerHeight) and is grown on X and Z
// by CollisionBuffer.
func PlayerBBox(eye mgl32.Vec3) cube.BBox {
	return AABBFromDimensions(PlayerWidth+CollisionBuffer*2, PlayerHeight).
		Translate(mgl32.Vec3{eye.X(), eye.Y() - EyeHeight, eye.Z()})
}

// VerticalOverlap returns true if the vertical span [minY, maxY] of a box strictly overlaps the
// unit span of the block layer y. Boxes that only touch the layer do not overlap it.
func VerticalOverlap(box cube.BBox, y int) bool {
	bottom := float32(y)
	return bottom+1 > box.Min().Y() && bottom < box.Max().Y()
}
