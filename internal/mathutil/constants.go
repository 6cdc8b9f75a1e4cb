package mathutil

import (
	"cmp"
	"math"
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// NormalizeEuler wraps each angle (degrees) once into [-180, 180].
func NormalizeEuler(angle Vec3) Vec3 {
	for i := range angle {
		if angle[i] > 180 {
			angle[i] -= 360
		}
		if angle[i] < -180 {
			angle[i] += 360
		}
	}
	return angle
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Mix is Lerp with GLSL naming.
func Mix(a, b, t float64) float64 {
	return a + t*(b-a)
}

// SmoothStep returns the Hermite interpolation of x between edge0 and edge1,
// 0 below edge0 and 1 above edge1.
func SmoothStep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
