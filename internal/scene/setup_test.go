package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softraster/internal/config"
	"softraster/internal/mathutil"
	"softraster/internal/mesh"
)

func TestSetupScalesRenderer(t *testing.T) {
	cfg := config.Config{Width: 40, Height: 30, Lighting: true}
	cfg.Resolve(config.Flags{})

	s, r, err := Setup(cfg, mesh.Cube(1), nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 120, r.Width())
	assert.Equal(t, 90, r.Height())
	assert.InDelta(t, 40.0/30.0, s.Camera.Aspect, 1e-12, "aspect follows the output size")
	assert.True(t, s.Lighting)
	assert.False(t, s.Textured)

	stats := s.Render(r)
	assert.Equal(t, 2, stats.Drawn)
	assert.Equal(t, 10, stats.BackfaceCulled)

	bg := r.FrameBuffer().GetPixel(0, 0)
	assert.InDeltaSlice(t, cfg.Background[:], bg[:], colorTol)
}

func TestSetupCullNone(t *testing.T) {
	cfg := config.Config{Width: 40, Height: 30, FaceCull: "none"}
	cfg.Resolve(config.Flags{})

	s, r, err := Setup(cfg, mesh.Cube(1), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 40, r.Width(), "scale below one renders at native size")

	stats := s.Render(r)
	assert.Zero(t, stats.BackfaceCulled)
	assert.GreaterOrEqual(t, stats.Drawn, 4, "front and back faces both rasterize")
}

func TestSetupRejectsInvalid(t *testing.T) {
	cfg := config.Config{FaceCull: "sideways"}
	cfg.Resolve(config.Flags{})
	_, _, err := Setup(cfg, mesh.Cube(1), nil, 1)
	assert.Error(t, err)
}

func TestTint(t *testing.T) {
	cube := mesh.Cube(1)

	same, err := Tint(cube, [3]float64{255, 255, 255})
	require.NoError(t, err)
	assert.Same(t, &cube[0], &same[0], "white keeps the shared mesh")

	red, err := Tint(cube, [3]float64{255, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, mathutil.Vec3{1, 0, 0}, red[5].Color[2])
	assert.Equal(t, mathutil.Vec3{1, 1, 1}, cube[5].Color[2])

	_, err = Tint(cube, [3]float64{0, -1, 0})
	assert.ErrorIs(t, err, mesh.ErrColorRange)
}
