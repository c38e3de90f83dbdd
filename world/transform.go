package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/blockgame/game"
)

// halfSize is the offset between grid X and world X.
const halfSize = Size / 2

// InBounds returns true if every axis of the grid position passed is in [0, Size).
func InBounds(pos cube.Pos) bool {
	return pos[0] >= 0 && pos[0] < Size &&
		pos[1] >= 0 && pos[1] < Size &&
		pos[2] >= 0 && pos[2] < Size
}

// WorldToGrid returns the grid position of the cell containing the world space point (x, y, z). A
// point exactly on a cell boundary belongs to the cell with the higher grid index.
func WorldToGrid(x, y, z float32) cube.Pos {
	return cube.Pos{
		game.FloorInt(x + halfSize),
		game.FloorInt(y),
		game.FloorInt(-z),
	}
}

// VecToGrid is WorldToGrid for a vector.
func VecToGrid(v mgl32.Vec3) cube.Pos {
	return WorldToGrid(v[0], v[1], v[2])
}

// GridToWorld returns the world space corner of a cell with the lowest X and Y and the highest Z.
// Grid Z grows towards negative world Z, so the cell spans [z-1, z] on the world Z axis.
func GridToWorld(pos cube.Pos) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(pos[0] - halfSize),
		float32(pos[1]),
		float32(-pos[2]),
	}
}

// CellBox returns the world space box occupied by the cell at the grid position passed.
func CellBox(pos cube.Pos) cube.BBox {
	c := GridToWorld(pos)
	return cube.Box(c[0], c[1], c[2]-1, c[0]+1, c[1]+1, c[2])
}
