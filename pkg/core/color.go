package core

import (
	"fmt"
	"image/color"
)

// Color is a packed 0xRRGGBB value. It satisfies image/color.Color and is
// always fully opaque.
type Color uint32

// Black is the zero color and the default background
const Black Color = 0

// NewColor packs 8-bit channels into a Color
func NewColor(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ColorModel converts any color to a packed Color. Alpha is dropped.
var ColorModel color.Model = color.ModelFunc(toColor)

func toColor(c color.Color) color.Color {
	if packed, ok := c.(Color); ok {
		return packed
	}
	r, g, b, _ := c.RGBA()
	return NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// R returns the red channel
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel
func (c Color) B() uint8 { return uint8(c) }

// RGB returns the color with any bits above the 24-bit RGB range cleared
func (c Color) RGB() Color { return c & 0xffffff }

// IsBlack reports whether all three channels are zero
func (c Color) IsBlack() bool { return c.RGB() == 0 }

// RGBA implements color.Color with 16-bit alpha-premultiplied channels
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c.RGB()))
}
