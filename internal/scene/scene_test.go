package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softraster/internal/camera"
	"softraster/internal/mathutil"
	"softraster/internal/mesh"
	"softraster/internal/raster"
)

const colorTol = 1.0 / 255

var sky = mathutil.Vec4{0.678, 0.847, 0.902, 1}

func newTestScene(t *testing.T) (*Scene, *raster.Renderer) {
	t.Helper()
	r, err := raster.New(72, 48)
	require.NoError(t, err)
	r.SetBackground(sky)
	return New(camera.New(90, 72, 48, -0.1, -5), mesh.Cube(1)), r
}

func TestRenderCubeCullsHiddenFaces(t *testing.T) {
	s, r := newTestScene(t)
	stats := s.Render(r)

	assert.Equal(t, raster.Stats{
		Submitted:      12,
		BackfaceCulled: 10,
		Drawn:          2,
		Pixels:         stats.Pixels,
	}, stats)
	assert.Greater(t, stats.Pixels, 100)

	ambient := math.Pow(0.55, 0.454)
	centre := r.FrameBuffer().GetPixel(36, 24)
	assert.InDeltaSlice(t, []float64{ambient, ambient, ambient, 1}, centre[:], colorTol)

	corner := r.FrameBuffer().GetPixel(0, 0)
	assert.InDeltaSlice(t, sky[:], corner[:], colorTol)
}

func TestRenderResetsBetweenFrames(t *testing.T) {
	s, r := newTestScene(t)
	first := s.Render(r)
	second := s.Render(r)
	assert.Equal(t, first, second)
}

func TestLightingBrightens(t *testing.T) {
	s, r := newTestScene(t)
	s.Render(r)
	flat := r.FrameBuffer().GetPixel(36, 24)

	s.Lighting = true
	s.Render(r)
	lit := r.FrameBuffer().GetPixel(36, 24)

	assert.Greater(t, lit[0], flat[0])
	assert.LessOrEqual(t, lit[0], 1.0)
	assert.Equal(t, 1.0, lit[3])
}

func TestTexture(t *testing.T) {
	s, r := newTestScene(t)
	tex, err := raster.NewFrameBuffer(1, 1)
	require.NoError(t, err)
	tex.PutPixel(0, 0, mathutil.Vec4{1, 0, 0, 1})

	s.Textured = true
	assert.False(t, s.DrawContext().Textured, "no texture bound")

	s.Texture = tex
	s.Render(r)
	c := r.FrameBuffer().GetPixel(36, 24)
	assert.InDelta(t, math.Pow(0.55, 0.454), c[0], colorTol)
	assert.Zero(t, c[1])
	assert.Zero(t, c[2])
}

func TestWireframe(t *testing.T) {
	s, r := newTestScene(t)
	r.SetLineColor(mathutil.Vec4{1, 0, 1, 1})
	s.Wireframe = true
	stats := s.Render(r)

	assert.Equal(t, 12, stats.Drawn, "wireframe skips face culling")

	lines := 0
	fb := r.FrameBuffer()
	for y := range fb.Height {
		for x := range fb.Width {
			c := fb.GetPixel(x, y)
			if c == (mathutil.Vec4{1, 0, 1, 1}) {
				lines++
				continue
			}
			require.InDeltaSlice(t, sky[:], c[:], colorTol, "only lines and background at %d,%d", x, y)
		}
	}
	assert.Greater(t, lines, 30)
}

func TestShade(t *testing.T) {
	l := DefaultLight()
	m := DefaultMaterial()
	white := mathutil.Vec3{1, 1, 1}
	up := mathutil.Vec3{0, 1, 0}
	eye := mathutil.Vec3{0, 0, -2}

	below := l.Position.XYZ().Sub(mathutil.Vec3{0, 1, 0})
	c := Shade(l, m, below, up, eye, white)
	for i := range 3 {
		assert.Greater(t, c[i], 0.0)
	}

	assert.Equal(t, mathutil.Vec4{}, Shade(l, m, l.Position.XYZ(), up, eye, white), "at the light")

	far := mathutil.Vec3{0, -20, 0}
	assert.Equal(t, mathutil.Vec4{}, Shade(l, m, far, up, eye, white), "beyond radius")

	dark := Shade(l, m, below, up, eye, mathutil.Vec3{})
	assert.Less(t, dark[0], c[0], "diffuse follows the vertex colour")
}

func TestControls(t *testing.T) {
	s, _ := newTestScene(t)
	c := NewControls(s)

	c.Rotate(mathutil.Vec3{0, 190, 0})
	assert.Equal(t, mathutil.Vec3{0, -170, 0}, c.Euler())
	assert.Equal(t, mathutil.RotateQuat(0, mathutil.Deg2Rad(-170), 0), s.Camera.Model)

	planes := s.Camera.Planes
	c.Move(mathutil.Vec3{MoveStep, 0, 0})
	assert.InDelta(t, 0.1, s.Camera.LookFrom[0], 1e-12)
	assert.InDelta(t, 0.1, s.Camera.LookAt[0], 1e-12)
	assert.NotEqual(t, planes, s.Camera.Planes)

	c.Pan(mathutil.Vec3{0, PanStep, 0})
	assert.InDelta(t, 0.2, s.Camera.LookAt[1], 1e-12)
	assert.Zero(t, s.Camera.LookFrom[1])

	c.ToggleLight()
	c.ToggleTexture()
	c.ToggleWireframe()
	assert.True(t, s.Lighting)
	assert.True(t, s.Textured)
	assert.True(t, s.Wireframe)
	c.ToggleWireframe()
	assert.False(t, s.Wireframe)
}

func TestNormalMatrixFallsBack(t *testing.T) {
	var singular mathutil.Mat4
	assert.Equal(t, singular, normalMatrix(singular))

	rot := mathutil.RotateEuler(0.3, 0.2, 0.1)
	assert.True(t, normalMatrix(rot).ApproxEqual(rot, 1e-9), "rotations are their own normal matrix")
}

func TestControlsApply(t *testing.T) {
	s, _ := newTestScene(t)
	c := NewControls(s)

	c.Apply(MoveZPos)
	c.Apply(MoveZPos)
	assert.InDelta(t, -1.8, s.Camera.LookFrom[2], 1e-12)

	c.Apply(PanXNeg)
	assert.InDelta(t, -0.2, s.Camera.LookAt[0], 1e-12)

	c.Apply(RotateXPos)
	c.Apply(RotateZNeg)
	assert.Equal(t, mathutil.Vec3{10, 0, -10}, c.Euler())

	c.Apply(WireframeToggle)
	assert.True(t, s.Wireframe)
	c.Apply(Action(99))
	assert.True(t, s.Wireframe)
}
