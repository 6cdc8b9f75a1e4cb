// Package scene is the demo render pass: a mesh viewed through a camera,
// lit by one point light, optionally textured, drawn filled or as wireframe.
package scene

import (
	"softraster/internal/camera"
	"softraster/internal/logx"
	"softraster/internal/mathutil"
	"softraster/internal/mesh"
	"softraster/internal/raster"
)

// Vec2 attribute keys.
const (
	Texcoord = iota
)

// Vec3 attribute keys.
const (
	Color = iota
)

// Vec4 attribute keys.
const (
	Normal = iota
	WorldPosition
	ViewPosition
)

// Scene is everything one frame needs. Mesh and Texture are only read
// while rendering, so several scenes may share them across goroutines.
type Scene struct {
	Camera   *camera.Camera
	Light    Light
	Material Material
	Texture  *raster.FrameBuffer
	Mesh     mesh.Mesh

	Lighting  bool
	Textured  bool
	Wireframe bool
}

// New returns a scene with the default light and material and every
// toggle off.
func New(cam *camera.Camera, m mesh.Mesh) *Scene {
	return &Scene{
		Camera:   cam,
		Light:    DefaultLight(),
		Material: DefaultMaterial(),
		Mesh:     m,
	}
}

// DrawContext is the per-draw state the shaders read. It replaces any
// shared "current triangle" variable: Render points Triangle at each face
// in turn before dispatching it.
type DrawContext struct {
	Triangle *mesh.Triangle
	Texture  *raster.FrameBuffer

	Model        mathutil.Mat4
	View         mathutil.Mat4
	Projection   mathutil.Mat4
	NormalMatrix mathutil.Mat4
	Eye          mathutil.Vec3

	Light    Light
	Material Material
	Lighting bool
	Textured bool
}

// DrawContext snapshots the scene for one frame.
func (s *Scene) DrawContext() *DrawContext {
	c := s.Camera
	return &DrawContext{
		Texture:      s.Texture,
		Model:        c.Model,
		View:         c.View,
		Projection:   c.Projection,
		NormalMatrix: normalMatrix(c.Model),
		Eye:          c.LookFrom,
		Light:        s.Light,
		Material:     s.Material,
		Lighting:     s.Lighting,
		Textured:     s.Textured && s.Texture != nil,
	}
}

// normalMatrix is the inverse transpose of m, or m itself when m cannot be
// inverted.
func normalMatrix(m mathutil.Mat4) mathutil.Mat4 {
	inv, err := m.Inverse()
	if err != nil {
		logx.Logger().Debug("model matrix not invertible, normals use it directly", "err", err)
		return m
	}
	return inv.Transpose()
}

// Program returns shaders bound to dc.
func (dc *DrawContext) Program() raster.Program {
	return raster.Program{Vertex: dc.Vertex, Fragment: dc.Fragment}
}

// Vertex transforms corner i of dc.Triangle to clip space and emits its
// texture coordinate, normal, colour, world and view positions.
func (dc *DrawContext) Vertex(i int, out *raster.Context) mathutil.Vec4 {
	t := dc.Triangle
	world := dc.Model.MulVec4(t.V[i].XYZ().Vec4(1))
	view := dc.View.MulVec4(world)

	out.Vec2[Texcoord] = t.TexCoord[i]
	out.Vec3[Color] = t.Color[i]
	out.Vec4[Normal] = dc.NormalMatrix.MulVec4(t.Normal[i].Vec4(0))
	out.Vec4[WorldPosition] = world
	out.Vec4[ViewPosition] = view
	return dc.Projection.MulVec4(view)
}

// Fragment starts from the ambient colour, adds the point light when
// lighting is on, multiplies by the texture when texturing is on, then
// applies the output gamma.
func (dc *DrawContext) Fragment(in *raster.Context) mathutil.Vec4 {
	m := &dc.Material
	c := m.Ambient

	if dc.Lighting {
		wp := in.Vec4[WorldPosition]
		pos := wp.XYZ()
		if wp[3] != 0 {
			pos = pos.DivScalar(wp[3])
		}
		n := in.Vec4[Normal].XYZ().Normalize()
		c = c.Add(Shade(dc.Light, *m, pos, n, dc.Eye, in.Vec3[Color]))
		c = mathutil.Vec4{min(c[0], 1), min(c[1], 1), min(c[2], 1), 1}
	}

	if dc.Textured {
		uv := in.Vec2[Texcoord]
		c = c.Mul(raster.Sample(dc.Texture, mathutil.Vec2{uv[0], 1 - uv[1]}))
	}

	return gammaRGB(c, m.Gamma)
}

// Render clears r and draws every triangle of the mesh into it, returning
// the frame's counters.
func (s *Scene) Render(r *raster.Renderer) raster.Stats {
	r.ResetStats()
	r.SetFrustum(s.Camera.Planes)
	r.Clear()

	dc := s.DrawContext()
	prog := dc.Program()
	for i := range s.Mesh {
		dc.Triangle = &s.Mesh[i]
		if s.Wireframe {
			r.DrawWireframe(prog.Vertex)
		} else {
			r.DrawTriangle(prog)
		}
	}
	return r.Stats()
}
