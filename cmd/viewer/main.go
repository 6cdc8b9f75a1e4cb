// Command viewer shows a mesh in a window and lets the keyboard drive the
// camera, the model rotation and the shading toggles.
//
//	W/S A/D Q/E   move the camera along y, x and z
//	1/2 3/4       pan the target along x and y
//	numpad 1-6    rotate the model
//	J K L         toggle lighting, texture and wireframe
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"softraster/internal/config"
	"softraster/internal/logx"
	"softraster/internal/raster"
	"softraster/internal/scene"
	"softraster/internal/texture"
)

var bindings = []struct {
	key    ebiten.Key
	action scene.Action
}{
	{ebiten.KeyW, scene.MoveYNeg},
	{ebiten.KeyS, scene.MoveYPos},
	{ebiten.KeyA, scene.MoveXNeg},
	{ebiten.KeyD, scene.MoveXPos},
	{ebiten.KeyQ, scene.MoveZPos},
	{ebiten.KeyE, scene.MoveZNeg},
	{ebiten.KeyDigit1, scene.PanXNeg},
	{ebiten.KeyDigit2, scene.PanXPos},
	{ebiten.KeyDigit3, scene.PanYNeg},
	{ebiten.KeyDigit4, scene.PanYPos},
	{ebiten.KeyNumpad1, scene.RotateYNeg},
	{ebiten.KeyNumpad4, scene.RotateYPos},
	{ebiten.KeyNumpad2, scene.RotateXPos},
	{ebiten.KeyNumpad5, scene.RotateXNeg},
	{ebiten.KeyNumpad3, scene.RotateZPos},
	{ebiten.KeyNumpad6, scene.RotateZNeg},
	{ebiten.KeyJ, scene.LightToggle},
	{ebiten.KeyK, scene.TextureToggle},
	{ebiten.KeyL, scene.WireframeToggle},
}

var errQuit = errors.New("quit")

type viewer struct {
	ctx      context.Context
	loader   scene.Reloader
	scene    *scene.Scene
	controls *scene.Controls
	r        *raster.Renderer
	screen   *ebiten.Image
	dirty    bool
	reloads  <-chan config.Config
}

// apply rebuilds the scene from cfg. A rejected config leaves the current
// scene on screen.
func (v *viewer) apply(cfg config.Config) error {
	s, r, err := v.loader.Build(cfg)
	if err != nil {
		return err
	}
	c := scene.NewControls(s)
	if v.controls != nil {
		c.SetRotation(v.controls.Euler())
	}

	if v.r != nil && (v.r.Width() != r.Width() || v.r.Height() != r.Height()) {
		if v.screen != nil {
			v.screen.Deallocate()
			v.screen = nil
		}
		ebiten.SetWindowSize(r.Width(), r.Height())
	}
	v.scene, v.controls, v.r = s, c, r
	v.dirty = true
	return nil
}

func (v *viewer) Update() error {
	if v.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	select {
	case cfg := <-v.reloads:
		if err := v.apply(cfg); err != nil {
			logx.Logger().Warn("reload rejected", "err", err)
		} else {
			logx.Logger().Debug("scene rebuilt", "mesh", cfg.Mesh, "width", cfg.Width, "height", cfg.Height)
		}
	default:
	}

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			v.controls.Apply(b.action)
			v.dirty = true
		}
	}

	if v.dirty {
		stats := v.scene.Render(v.r)
		logx.Logger().Debug("frame", "drawn", stats.Drawn, "culled", stats.BackfaceCulled+stats.FrustumCulled, "pixels", stats.Pixels)
		v.dirty = false
		if v.screen == nil {
			v.screen = ebiten.NewImage(v.r.Width(), v.r.Height())
		}
		v.screen.WritePixels(v.r.FrameBuffer().Pix)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.screen != nil {
		screen.DrawImage(v.screen, nil)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.r.Width(), v.r.Height()
}

func resolveTexture(cfg config.Config) (*raster.FrameBuffer, error) {
	index, err := texture.BuildIndex(cfg.TextureDir)
	if err != nil {
		return nil, err
	}
	return texture.NewCache(index).Resolve(cfg.Texture)
}

func main() {
	configFile := flag.String("config", "", "Path to a .json, .toml or .yaml config file")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	meshName := flag.String("mesh", "", "Built-in mesh: cube, sphere or plane (default: cube)")
	tex := flag.String("texture", "", "Texture name or path")
	width := flag.Int("width", 0, "Window width in pixels (default: 720)")
	height := flag.Int("height", 0, "Window height in pixels (default: 480)")
	light := flag.Bool("light", false, "Start with lighting on")
	textured := flag.Bool("textured", false, "Start with texturing on")
	wireframe := flag.Bool("wireframe", false, "Start in wireframe")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	logx.SetLogger(logx.NewText(os.Stderr, *verbose))

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	flags := config.Flags{
		Mesh:      *meshName,
		Texture:   *tex,
		Width:     *width,
		Height:    *height,
		Lighting:  *light,
		Textured:  *textured,
		Wireframe: *wireframe,
	}
	cfg.Resolve(flags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reloads := make(chan config.Config, 1)
	v := &viewer{ctx: ctx, reloads: reloads}
	v.loader.ResolveTexture = resolveTexture
	if err := v.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *watch && *configFile != "" {
		go func() {
			err := config.Watch(ctx, *configFile, flags, func(c config.Config) {
				// Keep only the newest config.
				select {
				case <-reloads:
				default:
				}
				reloads <- c
			})
			if err != nil {
				logx.Logger().Warn("config watch stopped", "err", err)
			}
		}()
	}

	ebiten.SetWindowTitle(fmt.Sprintf("softraster: %s", cfg.Mesh))
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
