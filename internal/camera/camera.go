// Package camera holds the model/view/projection transforms and the frustum
// planes derived from them.
package camera

import (
	"math"

	"softraster/internal/mathutil"
)

// Frustum plane indices.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// InsideTolerance is how far (in plane units) a point may sit behind a plane
// and still count as inside.
const InsideTolerance = 0.5

// Frustum is six planes {a, b, c, d} with a·x + b·y + c·z + d ≥ 0 inside.
// The zero Frustum accepts every point.
type Frustum [6]mathutil.Vec4

// Contains reports whether p is inside every plane, within InsideTolerance.
// Only p's x, y and z take part; the plane's d is the constant term.
func (f *Frustum) Contains(p mathutil.Vec4) bool {
	for i := range f {
		pl := &f[i]
		d := pl[0]*p[0] + pl[1]*p[1] + pl[2]*p[2] + pl[3]
		if d < -InsideTolerance {
			return false
		}
	}
	return true
}

// Camera holds the scene transforms. Planes must be recomputed whenever View
// or Projection changes; the setters and Update do that.
type Camera struct {
	LookFrom mathutil.Vec3
	LookAt   mathutil.Vec3
	Up       mathutil.Vec3

	Model      mathutil.Mat4
	View       mathutil.Mat4
	Projection mathutil.Mat4

	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	Planes Frustum
}

// New creates a camera at (0,0,-2) looking at (0,0,1) with +Y up, and
// derives view, projection and planes. near and far carry the handedness
// sign used by mathutil.Perspective.
func New(fov, width, height, near, far float64) *Camera {
	c := &Camera{
		LookFrom: mathutil.Vec3{0, 0, -2},
		LookAt:   mathutil.Vec3{0, 0, 1},
		Up:       mathutil.Vec3{0, 1, 0},
		Model:    mathutil.Mat4Identity(),
		FOV:      fov,
		Aspect:   width / height,
		Near:     near,
		Far:      far,
	}
	c.Update()
	return c
}

// Update rebuilds View from the look vectors, Projection from the lens
// parameters, and the frustum planes.
func (c *Camera) Update() {
	c.View = mathutil.LookAt(c.LookFrom, c.LookAt, c.Up)
	c.Projection = mathutil.Perspective(mathutil.Deg2Rad(c.FOV), c.Aspect, c.Near, c.Far)
	c.CalculateFrustumPlanes()
}

// SetView replaces the view matrix and recomputes the planes.
func (c *Camera) SetView(m mathutil.Mat4) {
	c.View = m
	c.CalculateFrustumPlanes()
}

// SetProjection replaces the projection matrix and recomputes the planes.
func (c *Camera) SetProjection(m mathutil.Mat4) {
	c.Projection = m
	c.CalculateFrustumPlanes()
}

// Move translates both the eye and the target.
func (c *Camera) Move(d mathutil.Vec3) {
	c.LookFrom = c.LookFrom.Add(d)
	c.LookAt = c.LookAt.Add(d)
	c.Update()
}

// Pan moves only the target.
func (c *Camera) Pan(d mathutil.Vec3) {
	c.LookAt = c.LookAt.Add(d)
	c.Update()
}

// ViewProjection returns Projection × View.
func (c *Camera) ViewProjection() mathutil.Mat4 {
	return c.Projection.Mul(c.View)
}

// MVP returns Projection × View × Model.
func (c *Camera) MVP() mathutil.Mat4 {
	return c.Projection.Mul(c.View).Mul(c.Model)
}

// CalculateFrustumPlanes derives the side planes from VP and sets the fixed
// near and far planes.
//
// The side planes are rows 3±0 and 3±1 of VPᵀ (column 3 ± columns 0/1 of VP),
// normalised by the length of their xyz part. They are tested against
// clip-space positions. Near and far are not derived from VP: they are
// {0,0,1,-1+near} and {0,0,-1,-far}.
func (c *Camera) CalculateFrustumPlanes() {
	t := c.ViewProjection().Transpose()
	r0, r1, r3 := t.Row(0), t.Row(1), t.Row(3)

	c.Planes[PlaneLeft] = r3.Add(r0)
	c.Planes[PlaneRight] = r3.Sub(r0)
	c.Planes[PlaneBottom] = r3.Add(r1)
	c.Planes[PlaneTop] = r3.Sub(r1)

	for i := PlaneLeft; i <= PlaneTop; i++ {
		p := c.Planes[i]
		l := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		if l == 0 {
			continue
		}
		c.Planes[i] = p.DivScalar(l)
	}

	c.Planes[PlaneNear] = mathutil.Vec4{0, 0, 1, -1 + c.Near}
	c.Planes[PlaneFar] = mathutil.Vec4{0, 0, -1, -c.Far}
}

// ClipPosition runs a model-space point through Model, View and Projection.
func (c *Camera) ClipPosition(p mathutil.Vec3) mathutil.Vec4 {
	return c.MVP().MulVec4(p.Vec4(1))
}
