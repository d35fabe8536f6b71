package output

import (
	"bufio"
	"image"
	"io"
)

// PreviewLimit is the exclusive upper bound on each dimension for console previews
const PreviewLimit = 100

// CanPreview reports whether an image is small enough to print
func CanPreview(width, height int) bool {
	return width < PreviewLimit && height < PreviewLimit
}

// WriteASCII prints one line per image row with '#' for every non-black
// pixel and a space otherwise. Alpha is ignored.
func WriteASCII(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ch := byte(' ')
			if r, g, b, _ := img.At(x, y).RGBA(); r|g|b != 0 {
				ch = '#'
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
