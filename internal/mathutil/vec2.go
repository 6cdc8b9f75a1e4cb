package mathutil

import "math"

// Vec2 is a 2-component vector. Also used for UVs and screen positions.
type Vec2 [2]float64

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a[0] * b[0], a[1] * b[1]}
}

func (a Vec2) Div(b Vec2) Vec2 {
	return Vec2{a[0] / b[0], a[1] / b[1]}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

func (v Vec2) DivScalar(s float64) Vec2 {
	return Vec2{v[0] / s, v[1] / s}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross returns the z component of the 3D cross product (a.x*b.y - a.y*b.x).
// Its sign gives the winding of a→b.
func (a Vec2) Cross(b Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

func (v Vec2) Len2() float64 {
	return v[0]*v[0] + v[1]*v[1]
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.Len2())
}

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{v[0] / l, v[1] / l}
}

func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}

func (v Vec2) Clamp(lo, hi float64) Vec2 {
	return Vec2{Clamp(v[0], lo, hi), Clamp(v[1], lo, hi)}
}

// Vec3 extends v with the given z.
func (v Vec2) Vec3(z float64) Vec3 {
	return Vec3{v[0], v[1], z}
}
