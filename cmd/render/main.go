package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"softraster/internal/batch"
	"softraster/internal/config"
	"softraster/internal/logx"
	"softraster/internal/mesh"
	"softraster/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json, .toml or .yaml config file")
	meshName := flag.String("mesh", "", "Built-in mesh: cube, sphere or plane (default: cube)")
	tex := flag.String("texture", "", "Texture name or path")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: webp or png (default: webp)")
	width := flag.Int("width", 0, "Output width in pixels (default: 720)")
	height := flag.Int("height", 0, "Output height in pixels (default: 480)")
	frames := flag.Int("frames", 0, "Turntable frames (default: 1)")
	supersample := flag.Int("supersample", 0, "Render at N times the size and downsample (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	light := flag.Bool("light", false, "Enable Blinn-Phong lighting")
	textured := flag.Bool("textured", false, "Sample the texture")
	wireframe := flag.Bool("wireframe", false, "Draw triangle edges only")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	logx.SetLogger(logx.NewText(os.Stderr, *verbose))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Mesh:        *meshName,
		Texture:     *tex,
		OutputDir:   *outputDir,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		Frames:      *frames,
		Supersample: *supersample,
		Workers:     *workers,
		Lighting:    *light,
		Textured:    *textured,
		Wireframe:   *wireframe,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := mesh.Named(cfg.Mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Build texture index
	var resolver texture.Resolver
	if cfg.Texture != "" {
		index, err := texture.BuildIndex(cfg.TextureDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		resolver = texture.NewCache(index)
		fmt.Printf("Textures: %d indexed in %s\n", index.Len(), cfg.TextureDir)
	}

	fmt.Printf("Software rasterizer → %s\n", cfg.Format)
	fmt.Printf("Mesh: %s (%d triangles), Frames: %d, Workers: %d\n", cfg.Mesh, len(m), cfg.Frames, cfg.Workers)
	fmt.Printf("Size: %dx%d (x%d supersample)\n", cfg.Width, cfg.Height, cfg.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()

	// Run batch
	results, err := batch.Run(ctx, batch.Config{
		Settings:    cfg,
		Mesh:        m,
		TexResolver: resolver,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	var failed []batch.Result
	pixels := 0
	for _, r := range results {
		pixels += r.Stats.Pixels
		if !r.Success {
			failed = append(failed, r)
		}
	}

	fmt.Printf("Rendered: %d/%d, %d pixels shaded\n", len(results)-len(failed), len(results), pixels)

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, r := range failed[:min(len(failed), 20)] {
			fmt.Printf("  %s: %s\n", batch.FrameName(r.Frame, cfg.Format), r.Error)
		}
		os.Exit(1)
	}
}
