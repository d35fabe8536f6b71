package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is a lossless raster file format
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath picks the format from the file extension. A path without an
// extension is written as PNG.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", ext)
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// Save writes img to path, choosing the encoder from the extension
func Save(path string, img image.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing file: %w", closeErr)
		}
	}()

	if err := Encode(file, img, format); err != nil {
		return fmt.Errorf("error saving %s: %w", strings.ToUpper(string(format)), err)
	}
	return nil
}
