package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// FloorInt floors a float32 and converts it to an int.
func FloorInt(v float32) int {
	return int(math32.Floor(v))
}

// DirectionVector returns the unit view direction for the given yaw and pitch in degrees. A yaw
// of zero looks down the negative Z axis and yaw increases towards positive X.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		math32.Sin(yawRad) * m,
		math32.Sin(pitchRad),
		-math32.Cos(yawRad) * m,
	}
}

// HorizontalDirections returns the forward and right vectors on the XZ plane for the given yaw,
// each as an (x, z) pair.
func HorizontalDirections(yaw float32) (forward, right mgl32.Vec2) {
	yawRad := mgl32.DegToRad(yaw)
	sin, cos := math32.Sin(yawRad), math32.Cos(yawRad)
	return mgl32.Vec2{sin, -cos}, mgl32.Vec2{cos, sin}
}
