package game

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
)

// MarchRay returns a sequence of points sampled along a ray starting at origin, travelling in the
// direction dir. Samples are taken every step units, starting at a distance of zero and ending at
// the last sample that does not exceed reach. Each sample is yielded along with its distance.
func MarchRay(origin, dir mgl32.Vec3, reach, step float32) iter.Seq2[float32, mgl32.Vec3] {
	return func(yield func(float32, mgl32.Vec3) bool) {
		if step <= 0 || reach < 0 {
			return
		}

		// Distances are computed from the sample index, never accumulated.
		for i := 0; ; i++ {
			t := float32(i) * step
			if t > reach {
				return
			}
			if !yield(t, origin.Add(dir.Mul(t))) {
				return
			}
		}
	}
}
