package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// Canvas is a rectangular grid of colors. Pixel (0, 0) is the top left.
type Canvas struct {
	Width  int
	Height int
	pixels []rtmath.Color
}

// NewCanvas returns a black canvas of the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]rtmath.Color, width*height),
	}
}

// WritePixel sets the color at (x, y). Writes outside the canvas are
// ignored.
func (c *Canvas) WritePixel(x, y int, col rtmath.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) rtmath.Color {
	return c.pixels[y*c.Width+x]
}

// clampByte maps a color component to 0..255, clamping out-of-gamut values.
func clampByte(v float64) int {
	scaled := int(math.Round(v * 255))
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return scaled
}

// WritePPM writes the canvas as a plain PPM (P3) image. Lines are kept at 70
// columns or fewer and the output ends with a newline, which keeps older
// viewers happy.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}
	var line strings.Builder
	for y := 0; y < c.Height; y++ {
		line.Reset()
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			for _, v := range []float64{p.R, p.G, p.B} {
				token := fmt.Sprintf("%d", clampByte(v))
				if line.Len() > 0 && line.Len()+1+len(token) > 70 {
					if _, err := fmt.Fprintln(w, line.String()); err != nil {
						return fmt.Errorf("write ppm row: %w", err)
					}
					line.Reset()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(token)
			}
		}
		if line.Len() > 0 {
			if _, err := fmt.Fprintln(w, line.String()); err != nil {
				return fmt.Errorf("write ppm row: %w", err)
			}
		}
	}
	return nil
}

// ToImage converts the canvas to an image.RGBA for PNG encoding.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: uint8(clampByte(p.R)),
				G: uint8(clampByte(p.G)),
				B: uint8(clampByte(p.B)),
				A: 255,
			})
		}
	}
	return img
}
