package config

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softraster/internal/raster"
)

var sources = map[string]string{
	"scene.json": `{
  "mesh": "sphere",
  "width": 320,
  "fov": 60,
  "look_from": [1, 2, -3],
  "face_cull": "ccw",
  "depth_test": false,
  "lighting": true
}`,
	"scene.toml": `
mesh = "sphere"
width = 320
fov = 60
look_from = [1, 2, -3]
face_cull = "ccw"
depth_test = false
lighting = true
`,
	"scene.yaml": `
mesh: sphere
width: 320
fov: 60
look_from: [1, 2, -3]
face_cull: ccw
depth_test: false
lighting: true
`,
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()
	for name, body := range sources {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, dir, name, body))
			require.NoError(t, err)

			assert.Equal(t, "sphere", cfg.Mesh)
			assert.Equal(t, 320, cfg.Width)
			assert.Equal(t, 60.0, cfg.FOV)
			assert.Equal(t, [3]float64{1, 2, -3}, cfg.LookFrom)
			assert.Equal(t, "ccw", cfg.FaceCull)
			require.NotNil(t, cfg.DepthTest)
			assert.False(t, *cfg.DepthTest)
			assert.True(t, cfg.Lighting)
			assert.Zero(t, cfg.Height)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "scene.ini", "mesh=cube"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "broken.toml", "mesh = "))
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, "cube", cfg.Mesh)
	assert.Equal(t, 720, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 90.0, cfg.FOV)
	assert.Equal(t, -0.1, cfg.Near)
	assert.Equal(t, -5.0, cfg.Far)
	assert.Equal(t, [3]float64{0, 0, -2}, cfg.LookFrom)
	assert.Equal(t, [3]float64{0, 0, 1}, cfg.LookAt)
	assert.Equal(t, [3]float64{0, 1, 0}, cfg.Up)
	assert.Equal(t, [4]float64{0.678, 0.847, 0.902, 1}, cfg.Background)
	assert.Equal(t, "cw", cfg.FaceCull)
	require.NotNil(t, cfg.DepthTest)
	assert.True(t, *cfg.DepthTest)
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, [3]float64{255, 255, 255}, cfg.Color)
	assert.Equal(t, 1, cfg.Supersample)
	assert.Equal(t, 1, cfg.Frames)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Empty(t, cfg.TextureDir)
	assert.NoError(t, cfg.Validate())
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{Mesh: "sphere", Width: 100, Frames: 4, Wireframe: true}
	cfg.Resolve(Flags{
		Mesh:     "plane",
		Texture:  "assets/spot.png",
		Frames:   24,
		Workers:  3,
		Textured: true,
	})

	assert.Equal(t, "plane", cfg.Mesh)
	assert.Equal(t, 100, cfg.Width, "unset flag keeps the file value")
	assert.Equal(t, 24, cfg.Frames)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Textured)
	assert.True(t, cfg.Wireframe)
	assert.Equal(t, "assets", cfg.TextureDir)
}

func TestValidateAndCull(t *testing.T) {
	for _, tc := range []struct {
		cull    string
		mode    raster.FaceCull
		enabled bool
	}{
		{"cw", raster.CullCW, true},
		{"CCW", raster.CullCCW, true},
		{"none", raster.CullCW, false},
	} {
		cfg := Config{FaceCull: tc.cull}
		mode, enabled, err := cfg.Cull()
		require.NoError(t, err, tc.cull)
		assert.Equal(t, tc.mode, mode, tc.cull)
		assert.Equal(t, tc.enabled, enabled, tc.cull)
	}

	bad := Config{FaceCull: "sideways"}
	bad.Resolve(Flags{})
	assert.Error(t, bad.Validate())

	bad = Config{Format: "gif"}
	bad.Resolve(Flags{})
	assert.Error(t, bad.Validate())

	bad = Config{Near: -1, Far: -1}
	bad.Resolve(Flags{})
	assert.Error(t, bad.Validate())

	// Resolve repairs these; callers that edit a resolved config afterwards
	// still get an error rather than a panic further down.
	for name, edit := range map[string]func(*Config){
		"frames":      func(c *Config) { c.Frames = -1 },
		"supersample": func(c *Config) { c.Supersample = 0 },
		"width":       func(c *Config) { c.Width = 0 },
		"height":      func(c *Config) { c.Height = -4 },
		"workers":     func(c *Config) { c.Workers = -2 },
	} {
		var c Config
		c.Resolve(Flags{})
		edit(&c)
		err := c.Validate()
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "config: "+name, name)
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "live.yaml", "width: 100\n")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	got := make(chan Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, Flags{Height: 50}, func(c Config) { got <- c })
	}()

	// The watcher registers asynchronously; keep rewriting until it reports.
	// A bad write in between must be skipped rather than delivered.
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-got:
			if c.Width != 200 {
				continue // caught mid-write, still a valid file
			}
			assert.Equal(t, 50, c.Height)
			cancel()
			assert.NoError(t, <-done)
			return
		case <-tick.C:
			writeFile(t, dir, "live.yaml", "width: [oops\n")
			writeFile(t, dir, "live.yaml", "width: 200\n")
		case <-ctx.Done():
			t.Fatal("no reload observed")
		}
	}
}
