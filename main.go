package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/regexPattern/raytracer/pkg/renderer"
	"github.com/regexPattern/raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "reflections", "Scene to render: "+strings.Join(scene.List(), ", "))
	objPath := flag.String("obj", "", "Render a Wavefront OBJ file instead of a built-in scene")
	width := flag.Int("width", 800, "Output width in pixels")
	height := flag.Int("height", 600, "Output height in pixels")
	depth := flag.Int("depth", 5, "Reflection/refraction recursion limit")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("output", "render.png", "Output PNG file")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	var s *scene.Scene
	var err error
	if *objPath != "" {
		fmt.Printf("Loading mesh from %s...\n", *objPath)
		s, err = scene.NewMeshScene(*objPath, *width, *height)
	} else {
		s, err = scene.New(*sceneName, *width, *height)
	}
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	bar := progressbar.NewOptions(s.Camera.Height(),
		progressbar.OptionSetDescription("Rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	config := renderer.DefaultConfig()
	config.MaxDepth = *depth
	config.NumWorkers = *workers
	config.Logger = renderer.NewDefaultLogger()
	config.Progress = func(rows int) {
		_ = bar.Add(rows)
	}

	startTime := time.Now()
	canvas := renderer.Render(s.World, s.Camera, config)
	fmt.Printf("Rendered %dx%d pixels in %v\n", canvas.Width(), canvas.Height(), time.Since(startTime))

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, canvas.ToImage()); err != nil {
		fmt.Printf("Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved render to %s\n", *output)
}
