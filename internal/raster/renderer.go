// Package raster is the software pipeline: programmable vertex and fragment
// stages around fixed culling, perspective-correct scan conversion and a
// depth test, writing into an RGBA FrameBuffer.
package raster

import (
	"softraster/internal/camera"
	"softraster/internal/mathutil"
)

// FaceCull selects which screen-space winding is discarded.
type FaceCull int

const (
	// CullCW discards clockwise triangles, keeping counter-clockwise fronts.
	CullCW FaceCull = iota + 1
	// CullCCW discards counter-clockwise triangles.
	CullCCW
)

func (f FaceCull) String() string {
	switch f {
	case CullCW:
		return "cw"
	case CullCCW:
		return "ccw"
	}
	return "unknown"
}

// Stats counts what happened to submitted triangles since the last reset.
type Stats struct {
	Submitted      int
	FrustumCulled  int
	BackfaceCulled int
	Degenerate     int
	Drawn          int
	Pixels         int
}

// Vertex is one corner of the triangle in flight.
type Vertex struct {
	Context Context
	Clip    mathutil.Vec4 // vertex shader output
	RW      float64       // 1/w
	Screen  mathutil.Vec3 // after divide and viewport
	Pixel   mathutil.Vec2 // Screen x,y rounded to whole pixels
}

// Renderer owns the colour and depth targets and the fixed-function state.
// A Renderer is not safe for concurrent use; give each goroutine its own.
type Renderer struct {
	fb    *FrameBuffer
	depth *DepthBuffer

	viewport   mathutil.Mat4
	frustum    camera.Frustum
	background mathutil.Vec4
	lineColor  mathutil.Vec4

	faceCull    FaceCull
	cullEnabled bool
	depthTest   bool

	tri   [3]Vertex
	input Context
	stats Stats
}

// New creates a W×H renderer with a full-target viewport, clockwise faces
// culled, the depth test on and white wireframe lines.
func New(w, h int) (*Renderer, error) {
	fb, err := NewFrameBuffer(w, h)
	if err != nil {
		return nil, err
	}
	depth, err := NewDepthBuffer(w, h)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		fb:          fb,
		depth:       depth,
		viewport:    Viewport(0, 0, w, h),
		lineColor:   mathutil.Vec4{1, 1, 1, 1},
		faceCull:    CullCW,
		cullEnabled: true,
		depthTest:   true,
	}
	for i := range r.tri {
		r.tri[i].Context.Clear()
	}
	r.input.Clear()
	return r, nil
}

// FrameBuffer returns the colour target.
func (r *Renderer) FrameBuffer() *FrameBuffer { return r.fb }

// DepthBuffer returns the depth target.
func (r *Renderer) DepthBuffer() *DepthBuffer { return r.depth }

// Width returns the target width in pixels.
func (r *Renderer) Width() int { return r.fb.Width }

// Height returns the target height in pixels.
func (r *Renderer) Height() int { return r.fb.Height }

// SetViewport places the [-1,1] clip square onto the given pixel rectangle.
func (r *Renderer) SetViewport(x, y, w, h int) { r.viewport = Viewport(x, y, w, h) }

// Viewport returns the current viewport matrix.
func (r *Renderer) Viewport() mathutil.Mat4 { return r.viewport }

// SetFrustum replaces the planes used to cull clip-space vertices.
func (r *Renderer) SetFrustum(f camera.Frustum) { r.frustum = f }

// SetFaceCull selects the winding to discard.
func (r *Renderer) SetFaceCull(f FaceCull) { r.faceCull = f }

// EnableFaceCull toggles back-face culling.
func (r *Renderer) EnableFaceCull(on bool) { r.cullEnabled = on }

// EnableDepthTest toggles the depth test. With it off, later fragments
// always overwrite earlier ones and the depth buffer is left untouched.
func (r *Renderer) EnableDepthTest(on bool) { r.depthTest = on }

// SetBackground sets the colour Clear fills with.
func (r *Renderer) SetBackground(c mathutil.Vec4) { r.background = c }

// Background returns the clear colour.
func (r *Renderer) Background() mathutil.Vec4 { return r.background }

// SetLineColor sets the wireframe colour.
func (r *Renderer) SetLineColor(c mathutil.Vec4) { r.lineColor = c }

// Clear fills the colour target with the background and resets depth to 0.
func (r *Renderer) Clear() {
	r.fb.Clear(r.background)
	r.depth.Fill(0)
}

// DrawPixel writes c at (x, y); writes outside the target are dropped.
func (r *Renderer) DrawPixel(x, y int, c mathutil.Vec4) { r.fb.PutPixel(x, y, c) }

// Stats returns the counters accumulated since the last ResetStats.
func (r *Renderer) Stats() Stats { return r.stats }

// ResetStats zeroes the counters.
func (r *Renderer) ResetStats() { r.stats = Stats{} }

// shadeVertices runs the vertex stage for all three corners.
func (r *Renderer) shadeVertices(vs VertexShader) {
	for i := range r.tri {
		v := &r.tri[i]
		v.Context.Clear()
		v.Clip = vs(i, &v.Context)
		w := v.Clip[3]
		if w == 0 {
			w = wEpsilon
		}
		v.RW = 1 / w
	}
}

// project applies the perspective divide and viewport to v.
func (r *Renderer) project(v *Vertex) {
	ndc := v.Clip.Scale(v.RW)
	v.Screen = r.viewport.MulVec4(ndc).XYZ()
	v.Pixel = mathutil.Vec2{
		float64(int(v.Screen[0] + 0.5)),
		float64(int(v.Screen[1] + 0.5)),
	}
}
