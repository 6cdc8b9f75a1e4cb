package raster

import "softraster/internal/mathutil"

// wEpsilon replaces a zero clip w before taking its reciprocal.
const wEpsilon = 1e-5

// DrawTriangle runs prog over one triangle. It reports false when the
// triangle was discarded before scan conversion: a vertex outside the
// frustum, a culled winding, or zero pixel-space area.
//
// This is the hot path. Vertex and fragment contexts are reused between
// calls, so shaders must not keep references to them.
func (r *Renderer) DrawTriangle(prog Program) bool {
	r.stats.Submitted++
	if prog.Vertex == nil {
		return false
	}
	r.shadeVertices(prog.Vertex)

	for i := range r.tri {
		if !r.frustum.Contains(r.tri[i].Clip) {
			r.stats.FrustumCulled++
			return false
		}
	}

	if r.cullEnabled && r.culled() {
		r.stats.BackfaceCulled++
		return false
	}

	for i := range r.tri {
		r.project(&r.tri[i])
	}
	v0, v1, v2 := &r.tri[0], &r.tri[1], &r.tri[2]
	a, b, c := v0.Pixel, v1.Pixel, v2.Pixel
	if a.Sub(b).Cross(a.Sub(c)) == 0 {
		r.stats.Degenerate++
		return false
	}
	r.stats.Drawn++

	// Bounding box, clamped to the target. The max edge is exclusive: with
	// integral corners, no pixel centre on it can be covered.
	minX := max(int(min(a[0], b[0], c[0])), 0)
	minY := max(int(min(a[1], b[1], c[1])), 0)
	maxX := min(int(max(a[0], b[0], c[0])), r.fb.Width)
	maxY := min(int(max(a[1], b[1], c[1])), r.fb.Height)

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			bc := Barycentric(a, b, c, mathutil.Vec2{float64(x) + 0.5, float64(y) + 0.5})
			if bc[0] < 0 || bc[1] < 0 || bc[2] < 0 {
				continue
			}

			// Screen-space weights to perspective-correct ones.
			rw := bc[0]*v0.RW + bc[1]*v1.RW + bc[2]*v2.RW
			w := 1.0
			if rw != 0 {
				w = 1 / rw
			}
			bc = mathutil.Vec3{bc[0] * v0.RW * w, bc[1] * v1.RW * w, bc[2] * v2.RW * w}

			if r.depthTest {
				z := 1 / (bc[0]/v0.Screen[2] + bc[1]/v1.Screen[2] + bc[2]/v2.Screen[2])
				if z <= r.depth.At(x, y) {
					continue
				}
				r.depth.Set(x, y, z)
			}

			if prog.Fragment == nil {
				continue
			}
			r.interpolate(bc)
			r.fb.PutPixel(x, y, prog.Fragment(&r.input))
			r.stats.Pixels++
		}
	}
	return true
}

// culled applies the face-cull rule to the clip-space x,y of the corners.
func (r *Renderer) culled() bool {
	p0, p1, p2 := r.tri[0].Clip.XY(), r.tri[1].Clip.XY(), r.tri[2].Clip.XY()
	area := p1.Sub(p0).Cross(p2.Sub(p1))
	switch r.faceCull {
	case CullCCW:
		return area >= 0
	case CullCW:
		return area <= 0
	}
	return false
}

// interpolate blends every attribute written for vertex 0 into r.input.
// A key missing on vertex 1 or 2 contributes zero.
func (r *Renderer) interpolate(bc mathutil.Vec3) {
	in := &r.input
	in.Clear()
	c0, c1, c2 := &r.tri[0].Context, &r.tri[1].Context, &r.tri[2].Context

	for k, v := range c0.Float {
		in.Float[k] = v*bc[0] + c1.Float[k]*bc[1] + c2.Float[k]*bc[2]
	}
	for k, v := range c0.Vec2 {
		in.Vec2[k] = v.Scale(bc[0]).Add(c1.Vec2[k].Scale(bc[1])).Add(c2.Vec2[k].Scale(bc[2]))
	}
	for k, v := range c0.Vec3 {
		in.Vec3[k] = v.Scale(bc[0]).Add(c1.Vec3[k].Scale(bc[1])).Add(c2.Vec3[k].Scale(bc[2]))
	}
	for k, v := range c0.Vec4 {
		in.Vec4[k] = v.Scale(bc[0]).Add(c1.Vec4[k].Scale(bc[1])).Add(c2.Vec4[k].Scale(bc[2]))
	}
}

// Barycentric returns the weights of p with respect to triangle abc, in
// pixel space. A degenerate triangle yields (-1, -1, -1), which fails any
// inside test.
func Barycentric(a, b, c, p mathutil.Vec2) mathutil.Vec3 {
	u := mathutil.Vec3{a[0] - b[0], a[0] - c[0], p[0] - a[0]}.
		Cross(mathutil.Vec3{a[1] - b[1], a[1] - c[1], p[1] - a[1]})
	if u[2] == 0 {
		return mathutil.Vec3{-1, -1, -1}
	}
	return mathutil.Vec3{1 - u[0]/u[2] - u[1]/u[2], u[0] / u[2], u[1] / u[2]}
}

// DrawWireframe runs vs over one triangle and strokes its three edges in
// the line colour. The triangle is skipped, reporting false, when any
// corner lies outside the clip box |x|,|y| ≤ |w|.
func (r *Renderer) DrawWireframe(vs VertexShader) bool {
	r.stats.Submitted++
	r.shadeVertices(vs)

	for i := range r.tri {
		p := r.tri[i].Clip
		aw := abs64(p[3])
		if p[0] < -aw || p[0] > aw || p[1] < -aw || p[1] > aw {
			r.stats.FrustumCulled++
			return false
		}
	}
	for i := range r.tri {
		r.project(&r.tri[i])
	}
	r.stats.Drawn++

	for i := range r.tri {
		from, to := r.tri[i].Pixel, r.tri[(i+1)%3].Pixel
		for pt := range Line(int(from[0]), int(from[1]), int(to[0]), int(to[1])) {
			if r.fb.InBounds(pt.X, pt.Y) {
				r.fb.PutPixel(pt.X, pt.Y, r.lineColor)
				r.stats.Pixels++
			}
		}
	}
	return true
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
