package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/example/go-ray-tracer/pkg/renderer"
	"github.com/example/go-ray-tracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "weekend", "Scene type: 'weekend', 'perlin', 'light', 'cornell' or 'smoke'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (0 = derived from the scene's aspect ratio)")
	samples := flag.Int("samples", 100, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	seed := flag.Int64("seed", 42, "Random seed (same seed, same image)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  weekend - Random sphere field with motion blur and depth of field")
		fmt.Println("  perlin  - Marble-textured spheres under a gradient sky")
		fmt.Println("  light   - Marble spheres lit by area lights on a black background")
		fmt.Println("  cornell - Cornell box with two rotated boxes and a ceiling light")
		fmt.Println("  smoke   - Cornell box with smoke and fog volumes")
		return
	}

	// Cornell variants are square; the others default to 16:9
	aspectRatio := 16.0 / 9.0
	if *sceneType == "cornell" || *sceneType == "smoke" {
		aspectRatio = 1.0
	}
	if *height <= 0 {
		*height = int(float64(*width) / aspectRatio)
	} else {
		aspectRatio = float64(*width) / float64(*height)
	}

	var selectedScene *scene.Scene
	var err error

	switch *sceneType {
	case "weekend":
		selectedScene, err = scene.NewWeekendScene(*seed, aspectRatio)
		if err != nil {
			fmt.Printf("Error building scene: %v\n", err)
			os.Exit(1)
		}
	case "perlin":
		selectedScene = scene.NewPerlinSpheres(*seed, aspectRatio)
	case "light":
		selectedScene = scene.NewSimpleLight(*seed, aspectRatio)
	case "cornell":
		selectedScene = scene.NewCornellBox(aspectRatio)
	case "smoke":
		selectedScene = scene.NewCornellSmoke(aspectRatio)
	default:
		fmt.Printf("Unknown scene type: %s\n", *sceneType)
		os.Exit(1)
	}

	camera, err := renderer.NewCamera(selectedScene.Camera)
	if err != nil {
		fmt.Printf("Error creating camera: %v\n", err)
		os.Exit(1)
	}

	config := renderer.RenderConfig{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		Seed:            *seed,
		NumWorkers:      *workers,
		Logger:          renderer.StdoutLogger{},
	}

	fmt.Printf("Rendering %s at %dx%d, %d samples per pixel...\n", *sceneType, *width, *height, *samples)

	startTime := time.Now()
	fb, err := renderer.Render(selectedScene, camera, config)
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
