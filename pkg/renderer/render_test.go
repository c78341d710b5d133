package renderer

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/regexPattern/raytracer/pkg/core"
	"github.com/regexPattern/raytracer/pkg/geometry"
	"github.com/regexPattern/raytracer/pkg/lights"
)

func TestRender_CenterPixel(t *testing.T) {
	w := testWorld()

	view, err := core.ViewTransform(
		core.NewVec3(0, 0, -5),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera, err := NewCamera(11, 11, math.Pi/2, view)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	canvas := Render(w, camera, DefaultConfig())

	expected := core.NewColor(0.38066, 0.47583, 0.2855)
	if got := canvas.PixelAt(5, 5); !got.ApproxEqual(expected) {
		t.Errorf("Expected center pixel %v, got %v", expected, got)
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	w := testWorld()

	view, err := core.ViewTransform(
		core.NewVec3(0, 0, -5),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera, err := NewCamera(16, 12, math.Pi/2, view)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	render := func(workers int) *Canvas {
		config := DefaultConfig()
		config.NumWorkers = workers
		return Render(w, camera, config)
	}

	serial := render(1)
	for _, workers := range []int{2, 7} {
		parallel := render(workers)
		for y := 0; y < camera.Height(); y++ {
			for x := 0; x < camera.Width(); x++ {
				if serial.PixelAt(x, y) != parallel.PixelAt(x, y) {
					t.Fatalf("Pixel (%d, %d) differs with %d workers", x, y, workers)
				}
			}
		}
	}
}

func TestRender_ReportsProgressPerRow(t *testing.T) {
	w := testWorld()

	view, err := core.ViewTransform(
		core.NewVec3(0, 0, -5),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera, err := NewCamera(8, 6, math.Pi/2, view)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var rows atomic.Int64
	config := DefaultConfig()
	config.Progress = func(n int) {
		rows.Add(int64(n))
	}

	Render(w, camera, config)
	if got := rows.Load(); got != int64(camera.Height()) {
		t.Errorf("Expected %d progress callbacks, got %d", camera.Height(), got)
	}
}

func TestRender_MaxDepthZeroDisablesSecondaryRays(t *testing.T) {
	// A mirror floor under a self-lit sphere: the center ray bounces off
	// the floor straight up into the sphere, so the reflected term is
	// provably nonzero at full depth and must vanish at depth 0.
	mirror := geometry.NewPlane()
	mirror.Material().Reflectivity = 0.5

	glow := geometry.NewSphere()
	glow.SetTransform(core.Translation(0, 2, 2))
	glow.Material().Ambient = 1

	w := NewWorld()
	w.AddObject(mirror)
	w.AddObject(glow)
	w.AddLight(lights.NewPointLight(core.NewVec3(0, 10, -10), core.White))

	// The center ray strikes the floor at the origin and reflects up into
	// the sphere.
	view, err := core.ViewTransform(
		core.NewVec3(0, 1, -1),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera, err := NewCamera(11, 11, math.Pi/2, view)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	config := DefaultConfig()
	config.MaxDepth = 0
	zeroDepth := Render(w, camera, config).PixelAt(5, 5)
	fullDepth := Render(w, camera, DefaultConfig()).PixelAt(5, 5)

	if zeroDepth == fullDepth {
		t.Error("Expected depth 0 to drop the reflected contribution")
	}
}
