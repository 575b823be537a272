package ui

import "github.com/go-panelkit/panelkit/pkg/errors"

// sanityCheck runs at the start of every public operation. A frame the
// caller forgot to start is started for them; a backend whose item
// capacity is exhausted is restarted so unbounded growth cannot crash
// the process. Both cases are reported as recoverable warnings.
func (c *Context) sanityCheck() {
	if !c.drv.IsStarted() {
		errors.ReportFrame(&errors.FrameError{Kind: errors.KindFrameNotStarted})
		c.drv.Start()
	}
	if c.drv.CapacityLimited() {
		errors.ReportFrame(&errors.FrameError{Kind: errors.KindCapacityExceeded})
		c.drv.Start()
	}
}

// forceCloseAll closes every container still open, innermost first,
// reporting each one. The stack is unconditionally empty afterwards;
// a frame never carries container state into the next one.
func (c *Context) forceCloseAll() {
	for c.stack.Len() > 0 {
		rec := c.stack.Peek()
		errors.ReportUnclosed(&errors.UnclosedError{
			Container: rec.Kind.String(),
			Name:      rec.Name,
			EndCall:   endCall(rec.Kind, rec.Name),
		})
		c.endContainerKind(rec.Kind)
		c.stack.Pop()
		c.errorFlag = true
	}
}

// Draw ends the frame: anything left open is force-closed, a summary
// is emitted if any mismatch occurred since the last Draw, and the
// backend renders with the current style options. Call exactly once
// per frame after all container calls.
func (c *Context) Draw() {
	c.sanityCheck()

	c.forceCloseAll()

	if c.errorFlag {
		errors.ReportFrame(&errors.FrameError{Kind: errors.KindFrameSummary})
	}
	c.errorFlag = false

	c.drv.Draw(c.style)
}
