package scene

import (
	"softraster/internal/config"
	"softraster/internal/mesh"
	"softraster/internal/raster"
)

// Reloader rebuilds scenes from successive configs, reusing the mesh and
// texture while their names stay the same. A failed Build changes nothing,
// so the caller can keep showing the previous scene.
type Reloader struct {
	// ResolveTexture loads cfg.Texture. It is only called when the name
	// changes and is never called for an empty name.
	ResolveTexture func(cfg config.Config) (*raster.FrameBuffer, error)

	meshName string
	mesh     mesh.Mesh
	texName  string
	tex      *raster.FrameBuffer
}

// Build returns a scene and a native-size renderer for cfg.
func (l *Reloader) Build(cfg config.Config) (*Scene, *raster.Renderer, error) {
	base := l.mesh
	if base == nil || cfg.Mesh != l.meshName {
		m, err := mesh.Named(cfg.Mesh)
		if err != nil {
			return nil, nil, err
		}
		base = m
	}

	tex := l.tex
	if cfg.Texture != l.texName {
		tex = nil
		if cfg.Texture != "" && l.ResolveTexture != nil {
			t, err := l.ResolveTexture(cfg)
			if err != nil {
				return nil, nil, err
			}
			tex = t
		}
	}

	tinted, err := Tint(base, cfg.Color)
	if err != nil {
		return nil, nil, err
	}
	s, r, err := Setup(cfg, tinted, tex, 1)
	if err != nil {
		return nil, nil, err
	}

	l.mesh, l.meshName = base, cfg.Mesh
	l.tex, l.texName = tex, cfg.Texture
	return s, r, nil
}
