package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"softraster/internal/mathutil"
)

func newTestCamera() *Camera {
	return New(90, 360, 240, -0.1, -5)
}

func TestZeroFrustumAcceptsEverything(t *testing.T) {
	var f Frustum
	for _, p := range []mathutil.Vec4{{}, {1e9, -1e9, 1e9, 1}, {0, 0, -1e9, 0}} {
		assert.True(t, f.Contains(p))
	}
}

func TestContainsTolerance(t *testing.T) {
	f := Frustum{{1, 0, 0, 0}}

	assert.True(t, f.Contains(mathutil.Vec4{0, 0, 0, 1}))
	assert.True(t, f.Contains(mathutil.Vec4{-0.5, 0, 0, 1}), "distance -0.5 is still inside")
	assert.False(t, f.Contains(mathutil.Vec4{-0.51, 0, 0, 1}))
	assert.True(t, f.Contains(mathutil.Vec4{-0.5, 0, 0, 100}), "w does not scale the distance")
}

func TestPlanesNormalised(t *testing.T) {
	c := newTestCamera()
	for i := PlaneLeft; i <= PlaneTop; i++ {
		assert.InDelta(t, 1.0, c.Planes[i].XYZ().Len(), 1e-9, "plane %d", i)
	}
	assert.InDeltaSlice(t, []float64{0, 0, 1, -1.1}, c.Planes[PlaneNear][:], 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, -1, 5}, c.Planes[PlaneFar][:], 1e-12)
}

func TestFrustumCulling(t *testing.T) {
	c := newTestCamera()

	cases := []struct {
		name   string
		p      mathutil.Vec3
		inside bool
	}{
		{"origin", mathutil.Vec3{0, 0, 0}, true},
		{"unit cube corner", mathutil.Vec3{0.5, 0.5, -0.5}, true},
		{"beyond far", mathutil.Vec3{0, 0, 50}, false},
		{"behind camera", mathutil.Vec3{0, 0, -10}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.inside, c.Planes.Contains(c.ClipPosition(tc.p)))
		})
	}
}

func TestPlanesFollowView(t *testing.T) {
	c := newTestCamera()
	before := c.Planes

	c.SetView(mathutil.LookAt(mathutil.Vec3{3, 0, -2}, mathutil.Vec3{3, 0, 1}, mathutil.Vec3{0, 1, 0}))
	assert.NotEqual(t, before, c.Planes)

	c.Move(mathutil.Vec3{0, 0.1, 0})
	assert.Equal(t, mathutil.Vec3{0, 0.1, -2}, c.LookFrom)
	assert.Equal(t, mathutil.LookAt(c.LookFrom, c.LookAt, c.Up), c.View)

	moved := c.Planes
	c.SetProjection(mathutil.Perspective(mathutil.Deg2Rad(30), c.Aspect, c.Near, c.Far))
	assert.NotEqual(t, moved, c.Planes)
}
