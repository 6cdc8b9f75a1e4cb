// Package batch renders turntable sequences headlessly.
package batch

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/sync/errgroup"

	"softraster/internal/config"
	"softraster/internal/logx"
	"softraster/internal/mathutil"
	"softraster/internal/mesh"
	"softraster/internal/postprocess"
	"softraster/internal/raster"
	"softraster/internal/scene"
	"softraster/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Settings    config.Config // resolved
	Mesh        mesh.Mesh
	TexResolver texture.Resolver // may be nil when Settings.Texture is empty
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame    int
	Angle    float64 // degrees about Y
	Path     string
	Stats    raster.Stats
	Duration time.Duration
	Success  bool
	Error    string
}

// Run renders Settings.Frames frames, frame k turning the model by
// 360·k/Frames degrees about Y. Every worker owns its renderer; the mesh and
// texture are shared read-only. Per-frame failures are reported in the
// results; the returned error is for setup failures and cancellation.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	s := cfg.Settings
	if err := s.Validate(); err != nil {
		return nil, err
	}
	m, err := scene.Tint(cfg.Mesh, s.Color)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	var tex *raster.FrameBuffer
	if s.Texture != "" {
		if cfg.TexResolver == nil {
			return nil, fmt.Errorf("batch: texture %q set without a resolver", s.Texture)
		}
		if tex, err = cfg.TexResolver.Resolve(s.Texture); err != nil {
			return nil, fmt.Errorf("batch: %w", err)
		}
	}

	total := s.Frames
	results := make([]Result, total)
	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logx.Logger().Info("rendering", "done", p, "total", total, "fps", rate)
				}
			}
		}
	}()

	workers := min(max(s.Workers, 1), total)
	g, ctx := errgroup.WithContext(ctx)
	frames := make(chan int, workers*2)

	g.Go(func() error {
		defer close(frames)
		for i := range total {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case frames <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range workers {
		g.Go(func() error {
			w, err := newWorker(s, m, tex)
			if err != nil {
				return err
			}
			for idx := range frames {
				results[idx] = w.render(idx, total)
				processed.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}

	if err := WriteManifest(filepath.Join(s.OutputDir, "manifest.json"), results); err != nil {
		return results, fmt.Errorf("batch: manifest: %w", err)
	}
	return results, nil
}

type worker struct {
	settings config.Config
	scene    *scene.Scene
	controls *scene.Controls
	r        *raster.Renderer
}

func newWorker(s config.Config, m mesh.Mesh, tex *raster.FrameBuffer) (*worker, error) {
	sc, r, err := scene.Setup(s, m, tex, s.Supersample)
	if err != nil {
		return nil, err
	}
	return &worker{settings: s, scene: sc, controls: scene.NewControls(sc), r: r}, nil
}

func (w *worker) render(idx, total int) Result {
	start := time.Now()
	angle := 360 * float64(idx) / float64(total)
	res := Result{
		Frame: idx,
		Angle: angle,
		Path:  filepath.Join(w.settings.OutputDir, FrameName(idx, w.settings.Format)),
	}

	w.controls.SetRotation(mathutil.Vec3{0, angle, 0})
	res.Stats = w.scene.Render(w.r)

	img := w.r.FrameBuffer().Image()
	if w.settings.Supersample > 1 {
		img = postprocess.Downsample(img, w.settings.Width, w.settings.Height)
	}

	if err := writeImage(res.Path, w.settings.Format, img); err != nil {
		res.Error = err.Error()
		logx.Logger().Warn("frame failed", "frame", idx, "err", err)
		return res
	}
	res.Duration = time.Since(start)
	res.Success = true
	logx.Logger().Debug("frame done", "frame", idx, "pixels", res.Stats.Pixels, "took", res.Duration)
	return res
}

// FrameName returns the file name of frame idx.
func FrameName(idx int, format string) string {
	return fmt.Sprintf("frame_%04d.%s", idx, format)
}

func writeImage(path, format string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "png":
		err = png.Encode(f, img)
	default:
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		return fmt.Errorf("%s encode: %w", format, err)
	}
	return f.Close()
}
