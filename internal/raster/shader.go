package raster

import "softraster/internal/mathutil"

// Context carries the attributes a vertex stage produces and a fragment stage
// consumes. The four channels are keyed independently; key meaning is up to
// the caller.
type Context struct {
	Float map[int]float64
	Vec2  map[int]mathutil.Vec2
	Vec3  map[int]mathutil.Vec3
	Vec4  map[int]mathutil.Vec4
}

// NewContext returns an empty context ready for writes.
func NewContext() *Context {
	c := &Context{}
	c.Clear()
	return c
}

// Clear empties every channel, allocating them on first use.
func (c *Context) Clear() {
	if c.Float == nil {
		c.Float = make(map[int]float64)
		c.Vec2 = make(map[int]mathutil.Vec2)
		c.Vec3 = make(map[int]mathutil.Vec3)
		c.Vec4 = make(map[int]mathutil.Vec4)
		return
	}
	clear(c.Float)
	clear(c.Vec2)
	clear(c.Vec3)
	clear(c.Vec4)
}

// VertexShader shades vertex index (0, 1 or 2) of the current triangle,
// writing attributes into out, and returns its clip-space position.
type VertexShader func(index int, out *Context) mathutil.Vec4

// FragmentShader returns the RGBA colour (0..1 per channel) for one pixel.
// in is reused between pixels and must not be retained.
type FragmentShader func(in *Context) mathutil.Vec4

// Program pairs the two stages for one draw call.
type Program struct {
	Vertex   VertexShader
	Fragment FragmentShader
}
