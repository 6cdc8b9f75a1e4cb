package scene

import (
	"fmt"
	"slices"

	"softraster/internal/camera"
	"softraster/internal/config"
	"softraster/internal/mathutil"
	"softraster/internal/mesh"
	"softraster/internal/raster"
)

// Setup builds a renderer and a scene from resolved settings. The renderer
// is scale times the configured size in each direction, for supersampling;
// the camera keeps the configured aspect. m and tex are shared, not copied.
func Setup(cfg config.Config, m mesh.Mesh, tex *raster.FrameBuffer, scale int) (*Scene, *raster.Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	scale = max(scale, 1)

	r, err := raster.New(cfg.Width*scale, cfg.Height*scale)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: %w", err)
	}
	mode, cull, _ := cfg.Cull()
	r.SetFaceCull(mode)
	r.EnableFaceCull(cull)
	r.EnableDepthTest(cfg.DepthTest == nil || *cfg.DepthTest)
	r.SetBackground(mathutil.Vec4(cfg.Background))

	cam := camera.New(cfg.FOV, float64(cfg.Width), float64(cfg.Height), cfg.Near, cfg.Far)
	cam.LookFrom = mathutil.Vec3(cfg.LookFrom)
	cam.LookAt = mathutil.Vec3(cfg.LookAt)
	cam.Up = mathutil.Vec3(cfg.Up)
	cam.Update()

	s := New(cam, m)
	s.Texture = tex
	s.Lighting = cfg.Lighting
	s.Textured = cfg.Textured
	s.Wireframe = cfg.Wireframe
	return s, r, nil
}

// Tint returns m with every vertex coloured rgb (0..255 per channel). White
// returns m itself; any other colour works on a copy so a shared mesh is
// never written. A channel out of range yields mesh.ErrColorRange.
func Tint(m mesh.Mesh, rgb [3]float64) (mesh.Mesh, error) {
	if rgb == [3]float64{255, 255, 255} {
		return m, nil
	}
	out := slices.Clone(m)
	if err := out.Fill(rgb[0], rgb[1], rgb[2]); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return out, nil
}
