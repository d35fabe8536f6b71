package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to an io.Writer
type DefaultLogger struct {
	out io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.out, format, args...)
}

// NewDefaultLogger creates a logger writing to stderr. Stdout is left for
// the console preview.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{out: os.Stderr}
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &DefaultLogger{out: w}
}
