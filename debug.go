package panzoom

import (
	"fmt"
	"io"
)

// SetDebugMode enables or disables debug logging. When enabled, every
// recognized gesture, cancelled long-press and dropped event is written to
// the debug output (stderr by default).
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// SetDebugOutput redirects debug logging. A nil writer discards it.
func (c *Controller) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.debugOut = w
}

// debugf prints a "[panzoom]" prefixed line when debug mode is on.
func (c *Controller) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(c.debugOut, "[panzoom] %8.3fs "+format+"\n",
		append([]any{c.now.Seconds()}, args...)...)
}
