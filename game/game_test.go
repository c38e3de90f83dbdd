package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionVector(t *testing.T) {
	dir := DirectionVector(0, 0)
	assert.InDelta(t, 0, dir.X(), 1e-6)
	assert.InDelta(t, 0, dir.Y(), 1e-6)
	assert.InDelta(t, -1, dir.Z(), 1e-6)

	dir = DirectionVector(90, 0)
	assert.InDelta(t, 1, dir.X(), 1e-6)
	assert.InDelta(t, 0, dir.Z(), 1e-6)

	dir = DirectionVector(0, 89)
	assert.Greater(t, dir.Y(), float32(0.99))
	assert.InDelta(t, 1, dir.Len(), 1e-5)
}

func TestHorizontalDirections(t *testing.T) {
	forward, right := HorizontalDirections(0)
	assert.InDelta(t, 0, forward.X(), 1e-6)
	assert.InDelta(t, -1, forward.Y(), 1e-6)
	assert.InDelta(t, 1, right.X(), 1e-6)
	assert.InDelta(t, 0, right.Y(), 1e-6)
}

func TestClampFloat(t *testing.T) {
	assert.Equal(t, float32(89), ClampFloat(120, -MaxPitch, MaxPitch))
	assert.Equal(t, float32(-89), ClampFloat(-120, -MaxPitch, MaxPitch))
	assert.Equal(t, float32(12.5), ClampFloat(12.5, -MaxPitch, MaxPitch))
}

func TestFloorInt(t *testing.T) {
	assert.Equal(t, 0, FloorInt(0.99))
	assert.Equal(t, -1, FloorInt(-0.01))
	assert.Equal(t, 2, FloorInt(2))
}

func TestPlayerBBox(t *testing.T) {
	bb := PlayerBBox(mgl32.Vec3{0, EyeHeight, 0})
	assert.InDelta(t, 0, bb.Min().Y(), 1e-6)
	assert.InDelta(t, PlayerHeight, bb.Max().Y(), 1e-6)
	assert.InDelta(t, -0.4, bb.Min().X(), 1e-6)
	assert.InDelta(t, 0.4, bb.Max().Z(), 1e-6)

	assert.True(t, VerticalOverlap(bb, 0))
	assert.True(t, VerticalOverlap(bb, 1))
	// Touching faces do not overlap.
	assert.False(t, VerticalOverlap(bb, -1))
	assert.False(t, VerticalOverlap(bb, 2))
}

func TestMarchRay(t *testing.T) {
	var samples []float32
	for d, p := range MarchRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 1, 0.25) {
		samples = append(samples, d)
		assert.InDelta(t, -d, p.Z(), 1e-6)
	}
	require.Equal(t, []float32{0, 0.25, 0.5, 0.75, 1}, samples)

	var count int
	for range MarchRay(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 5, 0) {
		count++
	}
	assert.Zero(t, count)

	for d := range MarchRay(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 5, 0.05) {
		if d > 1 {
			break
		}
		count++
	}
	assert.Equal(t, 21, count)
}
