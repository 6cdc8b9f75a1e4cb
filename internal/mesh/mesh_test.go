package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softraster/internal/mathutil"
)

func TestSetColor(t *testing.T) {
	tri := NewTriangle()
	require.NoError(t, tri.SetColor(1, 255, 51, 0))
	assert.Equal(t, mathutil.Vec3{1, 0.2, 0}, tri.Color[1])

	for _, tc := range []struct {
		name    string
		r, g, b float64
	}{
		{"negative red", -1, 0, 0},
		{"green above range", 0, 256, 0},
		{"blue above range", 0, 0, 255.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tri := NewTriangle()
			err := tri.SetColor(0, tc.r, tc.g, tc.b)
			assert.ErrorIs(t, err, ErrColorRange)
			assert.Equal(t, mathutil.Vec3{}, tri.Color[0], "failed set leaves the colour alone")
		})
	}
}

func TestNewTriangleHomogeneous(t *testing.T) {
	tri := NewTriangle()
	for _, v := range tri.V {
		assert.Equal(t, 1.0, v[3])
	}
}

func TestFillPropagatesError(t *testing.T) {
	m := Cube(1)
	require.NoError(t, m.Fill(128, 128, 128))
	assert.InDelta(t, 128.0/255, m[5].Color[2][1], 1e-12)

	assert.ErrorIs(t, m.Fill(300, 0, 0), ErrColorRange)
}

// assertOutward checks every face winds counter-clockwise around its
// stored normal and that normals point away from the origin.
func assertOutward(t *testing.T, m Mesh) {
	t.Helper()
	for i := range m {
		tri := &m[i]
		face := tri.FaceNormal()
		centroid := tri.V[0].XYZ().Add(tri.V[1].XYZ()).Add(tri.V[2].XYZ()).Scale(1.0 / 3)
		assert.Greater(t, face.Dot(centroid), 0.0, "triangle %d faces inward", i)
		for k, n := range tri.Normal {
			assert.Greater(t, face.Dot(n), 0.0, "triangle %d normal %d disagrees with winding", i, k)
			assert.InDelta(t, 1.0, n.Len(), 1e-9)
		}
	}
}

func TestCube(t *testing.T) {
	m := Cube(2)
	assert.Len(t, m, 12)
	assertOutward(t, m)

	lo, hi := m.Bounds()
	assert.Equal(t, mathutil.Vec3{-1, -1, -1}, lo)
	assert.Equal(t, mathutil.Vec3{1, 1, 1}, hi)
}

func TestPlane(t *testing.T) {
	m := Plane(4)
	require.Len(t, m, 2)
	for i := range m {
		assert.InDeltaSlice(t, []float64{0, 1, 0}, m[i].FaceNormal()[:], 1e-12)
	}
	lo, hi := m.Bounds()
	assert.Equal(t, mathutil.Vec3{-2, 0, -2}, lo)
	assert.Equal(t, mathutil.Vec3{2, 0, 2}, hi)
}

func TestSphere(t *testing.T) {
	m := Sphere(1.5, 8, 12)
	assert.Len(t, m, 2*8*12-2*12, "pole bands emit one triangle per segment")
	assertOutward(t, m)

	for i := range m {
		for _, v := range m[i].V {
			assert.InDelta(t, 1.5, v.XYZ().Len(), 1e-9)
		}
		for _, uv := range m[i].TexCoord {
			assert.True(t, uv[0] >= 0 && uv[0] <= 1 && uv[1] >= 0 && uv[1] <= 1)
		}
	}

	assert.Len(t, Sphere(1, 0, 0), 2*2*3-2*3, "rings and segments are clamped")
}

func TestBoundsEmpty(t *testing.T) {
	lo, hi := Mesh(nil).Bounds()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestNamed(t *testing.T) {
	for name, n := range map[string]int{"": 12, "Cube": 12, "sphere": 2*16*24 - 2*24, "plane": 2} {
		m, err := Named(name)
		require.NoError(t, err, name)
		assert.Len(t, m, n, name)
	}

	_, err := Named("teapot")
	assert.ErrorIs(t, err, ErrUnknownShape)
}
