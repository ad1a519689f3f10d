package renderer

import (
	"math"
	"testing"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
	"github.com/styxx3542/ray-tracer/pkg/world"
)

func defaultWorldCamera(t *testing.T, hsize, vsize int) *Camera {
	t.Helper()
	view := rtmath.ViewTransform(
		rtmath.NewPoint(0, 0, -5),
		rtmath.NewPoint(0, 0, 0),
		rtmath.NewVector(0, 1, 0),
	)
	c, err := NewCamera(hsize, vsize, math.Pi/2, view)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	return c
}

func TestRender_DefaultWorld(t *testing.T) {
	w := world.Default()
	c := defaultWorldCamera(t, 11, 11)
	canvas := Render(c, w)
	got := canvas.PixelAt(5, 5)
	if !got.ApproxEq(rtmath.NewColor(0.38066, 0.47583, 0.2855)) {
		t.Errorf("center pixel = %v", got)
	}
}

func TestRenderParallel_MatchesSequential(t *testing.T) {
	w := world.Default()
	c := defaultWorldCamera(t, 11, 11)
	sequential := Render(c, w)
	parallel := RenderParallel(c, w, 4, nil)
	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			if !parallel.PixelAt(x, y).ApproxEq(sequential.PixelAt(x, y)) {
				t.Fatalf("pixel (%d, %d): parallel %v != sequential %v",
					x, y, parallel.PixelAt(x, y), sequential.PixelAt(x, y))
			}
		}
	}
}
