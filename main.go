package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfnt/resize"

	"github.com/styxx3542/ray-tracer/pkg/renderer"
	"github.com/styxx3542/ray-tracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene to render, one of: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	out := flag.String("out", "render.png", "Output file, .png or .ppm")
	depth := flag.Int("depth", 5, "Maximum reflection/refraction bounces")
	scale := flag.Int("scale", 1, "Supersampling factor; render at scale x size and downsample")
	workers := flag.Int("workers", 0, "Render workers, 0 for one per CPU")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray Tracer")
		fmt.Println("Usage: ray-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if err := run(*sceneName, *width, *height, *out, *depth, *scale, *workers, logger); err != nil {
		logger.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run(sceneName string, width, height int, out string, depth, scale, workers int, logger *log.Logger) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}
	if scale < 1 {
		scale = 1
	}

	s, err := scene.Build(sceneName, width*scale, height*scale)
	if err != nil {
		return err
	}
	if depth > 0 {
		s.World.MaxDepth = depth
	}

	logger.Printf("Rendering scene %q at %dx%d (scale %d)...", sceneName, width, height, scale)
	start := time.Now()
	canvas := renderer.RenderParallel(s.Camera, s.World, workers, logger)
	logger.Printf("Render completed in %v", time.Since(start))

	if err := writeOutput(canvas, out, width, height, scale); err != nil {
		return err
	}
	logger.Printf("Render saved as %s", out)
	return nil
}

// writeOutput saves the canvas in the format implied by the file extension,
// downsampling first when the render was supersampled.
func writeOutput(canvas *renderer.Canvas, out string, width, height, scale int) error {
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(out)) {
	case ".ppm":
		// PPM output skips downsampling; the format is for quick inspection.
		if err := canvas.WritePPM(file); err != nil {
			return err
		}
	case ".png", "":
		img := canvas.ToImage()
		if scale > 1 {
			small := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
			if err := png.Encode(file, small); err != nil {
				return fmt.Errorf("encode png: %w", err)
			}
			break
		}
		if err := png.Encode(file, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q, use .png or .ppm", filepath.Ext(out))
	}
	return nil
}
