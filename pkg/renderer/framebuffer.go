package renderer

import (
	"image"
	"image/color"
	"slices"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Framebuffer is a row-major grid of packed RGB pixels. It implements
// image.Image so it can be handed straight to image encoders.
//
// Concurrent writers are safe as long as they touch disjoint pixels.
type Framebuffer struct {
	width, height int
	pixels        []core.Color
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// Pixel returns the color at (x, y). Coordinates must be in bounds.
func (fb *Framebuffer) Pixel(x, y int) core.Color {
	return fb.pixels[y*fb.width+x]
}

// SetPixel stores the color at (x, y). Coordinates must be in bounds.
func (fb *Framebuffer) SetPixel(x, y int, c core.Color) {
	fb.pixels[y*fb.width+x] = c
}

// Pixels returns a copy of the pixel data in row-major order
func (fb *Framebuffer) Pixels() []core.Color {
	return slices.Clone(fb.pixels)
}

// Equal reports whether two framebuffers have the same size and pixels
func (fb *Framebuffer) Equal(other *Framebuffer) bool {
	return fb.width == other.width && fb.height == other.height && slices.Equal(fb.pixels, other.pixels)
}

// ToRGBA converts the framebuffer to an opaque *image.RGBA
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.Pixel(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 255})
		}
	}
	return img
}

// ColorModel implements image.Image. At always returns a core.Color.
func (fb *Framebuffer) ColorModel() color.Model {
	return core.ColorModel
}

// Bounds implements image.Image
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// At implements image.Image. Out of range coordinates read as black.
func (fb *Framebuffer) At(x, y int) color.Color {
	if !image.Pt(x, y).In(fb.Bounds()) {
		return core.Black
	}
	return fb.Pixel(x, y)
}
