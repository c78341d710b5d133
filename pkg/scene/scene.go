// Package scene bundles ready-made worlds with matching cameras. Each scene
// constructor builds its geometry from scratch so renders are reproducible.
package scene

import (
	"fmt"
	"sort"

	"github.com/regexPattern/raytracer/pkg/renderer"
)

// Scene pairs a world with the camera it was composed for
type Scene struct {
	World  *renderer.World
	Camera *renderer.Camera
}

// Builder constructs a scene at the given output resolution
type Builder func(width, height int) (*Scene, error)

var registry = map[string]Builder{
	"reflections": NewReflectionsScene,
	"glass":       NewGlassScene,
	"softshadows": NewSoftShadowsScene,
}

// List returns the registered scene names in sorted order
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene at the given resolution. The error names the
// available scenes when the name is unknown.
func New(name string, width, height int) (*Scene, error) {
	builder, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, List())
	}
	return builder(width, height)
}
