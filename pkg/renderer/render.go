package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/regexPattern/raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains configuration for rendering
type Config struct {
	MaxDepth   int            // Reflection/refraction recursion limit
	NumWorkers int            // Number of parallel workers (0 = use CPU count)
	Progress   func(rows int) // Called once per finished row, if non-nil
	Logger     core.Logger    // Logger for rendering output (nil = silent)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:   5,
		NumWorkers: 0,
	}
}

// Render traces every pixel of the camera's canvas through the world and
// returns the finished canvas. Rows are distributed over a pool of workers;
// each pixel is written exactly once at a fixed location, so the output is
// identical across runs regardless of worker count or scheduling.
func Render(world *World, camera *Camera, config Config) *Canvas {
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	width := camera.Width()
	height := camera.Height()
	canvas := NewCanvas(width, height)

	if config.Logger != nil {
		config.Logger.Printf("Rendering %dx%d pixels with %d workers...\n", width, height, numWorkers)
	}

	rows := make(chan int, height)

	var progressMu sync.Mutex
	rowDone := func() {
		if config.Progress == nil {
			return
		}
		progressMu.Lock()
		config.Progress(1)
		progressMu.Unlock()
	}

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < width; x++ {
					ray := camera.RayForPixel(x, y)
					canvas.WritePixel(x, y, world.ColorAt(ray, config.MaxDepth))
				}
				rowDone()
			}
		}()
	}

	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return canvas
}
