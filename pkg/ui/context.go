package ui

import (
	"github.com/go-panelkit/panelkit/pkg/container"
	"github.com/go-panelkit/panelkit/pkg/driver"
)

// DefaultLabelWidth is the initial width in pixels of the label column
// used by the labeled widget conveniences.
const DefaultLabelWidth = 60

// Context is one independent UI context: it owns the container stack,
// the per-frame error flag, and the style state for a single backend
// driver. Create one per drawing surface.
//
// Context performs no locking. All calls must come from the single
// thread that owns the backend's drawing context.
type Context struct {
	drv        driver.Driver
	stack      container.Stack
	errorFlag  bool
	labelWidth int
	style      driver.StyleOptions
}

// New creates a Context driving the given backend.
func New(drv driver.Driver) *Context {
	return &Context{
		drv:        drv,
		labelWidth: DefaultLabelWidth,
	}
}

// Depth returns the number of currently-open containers.
func (c *Context) Depth() int {
	return c.stack.Len()
}

// ErrorsOccurred reports whether any mismatch was detected since the
// last Draw. Draw clears it after emitting the frame summary.
func (c *Context) ErrorsOccurred() bool {
	return c.errorFlag
}
