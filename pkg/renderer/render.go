package renderer

import (
	"runtime"
	"sync"

	"github.com/styxx3542/ray-tracer/pkg/world"
)

// Render traces one ray per pixel and returns the finished canvas.
func Render(c *Camera, w *world.World) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		renderRow(c, w, canvas, y)
	}
	return canvas
}

// RenderParallel renders with a pool of workers, each tracing whole rows.
// workers <= 0 uses one worker per CPU. logger, which may be NopLogger,
// receives progress roughly every tenth of the image.
func RenderParallel(c *Camera, w *world.World, workers int, logger Logger) *Canvas {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NopLogger
	}

	canvas := NewCanvas(c.HSize, c.VSize)
	rows := make(chan int)
	var done int64
	var mu sync.Mutex
	reportEvery := c.VSize / 10
	if reportEvery == 0 {
		reportEvery = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(c, w, canvas, y)
				mu.Lock()
				done++
				if done%int64(reportEvery) == 0 {
					logger.Printf("rendered %d/%d rows", done, c.VSize)
				}
				mu.Unlock()
			}
		}()
	}

	for y := 0; y < c.VSize; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
	return canvas
}

// renderRow traces every pixel of row y. Workers touch disjoint rows, so no
// locking is needed around the canvas writes.
func renderRow(c *Camera, w *world.World, canvas *Canvas, y int) {
	for x := 0; x < c.HSize; x++ {
		ray := c.RayForPixel(x, y)
		canvas.WritePixel(x, y, w.ColorAt(ray))
	}
}
