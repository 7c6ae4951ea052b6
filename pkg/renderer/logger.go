package renderer

import (
	"fmt"
	"io"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
)

// DefaultLogger implements core.Logger by writing to a side channel such as stderr
type DefaultLogger struct {
	w io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.w, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger(w io.Writer) core.Logger {
	return &DefaultLogger{w: w}
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// NewDiscardLogger returns a logger that drops everything
func NewDiscardLogger() core.Logger {
	return discardLogger{}
}
