package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softraster/internal/config"
	"softraster/internal/mesh"
	"softraster/internal/raster"
)

func resolved(edit func(*config.Config)) config.Config {
	c := config.Config{Width: 32, Height: 24}
	if edit != nil {
		edit(&c)
	}
	c.Resolve(config.Flags{})
	return c
}

func TestReloaderKeepsStateOnFailure(t *testing.T) {
	tex, err := raster.NewFrameBuffer(1, 1)
	require.NoError(t, err)
	loads := 0
	l := &Reloader{ResolveTexture: func(cfg config.Config) (*raster.FrameBuffer, error) {
		loads++
		if cfg.Texture == "missing" {
			return nil, errors.New("not found")
		}
		return tex, nil
	}}

	s, _, err := l.Build(resolved(nil))
	require.NoError(t, err)
	assert.Len(t, s.Mesh, 12)

	for name, edit := range map[string]func(*config.Config){
		"unknown mesh":    func(c *config.Config) { c.Mesh = "torus" },
		"missing texture": func(c *config.Config) { c.Mesh = "sphere"; c.Texture = "missing" },
		"bad colour":      func(c *config.Config) { c.Mesh = "plane"; c.Color = [3]float64{0, 0, 999} },
		"bad cull":        func(c *config.Config) { c.Mesh = "sphere"; c.FaceCull = "sideways" },
	} {
		_, _, err := l.Build(resolved(edit))
		assert.Error(t, err, name)
	}

	// Only the size changes: the cube and the empty texture are still current.
	s, r, err := l.Build(resolved(func(c *config.Config) { c.Width = 64 }))
	require.NoError(t, err)
	assert.Len(t, s.Mesh, 12)
	assert.Nil(t, s.Texture)
	assert.Equal(t, 64, r.Width())

	s, _, err = l.Build(resolved(func(c *config.Config) { c.Texture = "spot" }))
	require.NoError(t, err)
	assert.Same(t, tex, s.Texture)
	_, _, err = l.Build(resolved(func(c *config.Config) { c.Texture = "spot"; c.Mesh = "sphere" }))
	require.NoError(t, err)
	assert.Equal(t, 2, loads, "the missing texture and spot, each once")
}

func TestReloaderTintsCopy(t *testing.T) {
	var l Reloader
	s, _, err := l.Build(resolved(func(c *config.Config) { c.Color = [3]float64{0, 255, 0} }))
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Mesh[0].Color[0][1])
	assert.Zero(t, s.Mesh[0].Color[0][0])

	s, _, err = l.Build(resolved(nil))
	require.NoError(t, err)
	assert.Equal(t, mesh.Cube(1)[0].Color[0], s.Mesh[0].Color[0], "white again after the tint is dropped")
}
