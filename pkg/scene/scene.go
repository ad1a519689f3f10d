// Package scene provides ready-made worlds with matching cameras, looked up
// by name.
package scene

import (
	"fmt"
	"sort"

	"github.com/styxx3542/ray-tracer/pkg/renderer"
	"github.com/styxx3542/ray-tracer/pkg/world"
)

// Scene pairs a world with a camera sized for the requested image.
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// Builder constructs a scene for a width by height image.
type Builder func(width, height int) (*Scene, error)

var builders = map[string]Builder{
	"default": buildDefault,
	"room":    buildRoom,
	"glass":   buildGlass,
	"shapes":  buildShapes,
}

// Names returns the registered scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named scene. The name must be one of Names.
func Build(name string, width, height int) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, available: %v", name, Names())
	}
	return builder(width, height)
}
