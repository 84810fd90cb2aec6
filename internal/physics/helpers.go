package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func isFinite(v rl.Vector3) bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}

// closestOnSegment returns the parameter t in [0,1] of the point on a-b closest to p.
func closestOnSegment(a, b, p rl.Vector3) float32 {
	ab := rl.Vector3Subtract(b, a)
	lenSq := rl.Vector3DotProduct(ab, ab)
	if lenSq == 0 {
		return 0
	}
	return clamp(rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab)/lenSq, 0, 1)
}
