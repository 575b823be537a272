package ui

import "github.com/go-panelkit/panelkit/pkg/container"

// updateLayout pushes the current top-of-stack layout to the backend.
// Called after every stack push/pop and layout mutation.
func (c *Context) updateLayout() {
	top := c.stack.Peek()
	if top == nil {
		return
	}
	c.drv.SetLayout(top.LayoutWidths, top.LayoutHeight)
}

// ResetLayout restores the current container's default layout: a
// single column filling the remaining space. No-op if no container is
// open.
func (c *Context) ResetLayout() {
	c.sanityCheck()

	top := c.stack.Peek()
	if top == nil {
		return
	}
	top.LayoutWidths = append(top.LayoutWidths[:0], container.FillWidth)
	c.updateLayout()
}

// SingleLineLayout clears the current container's columns so widgets
// flow one per line at their natural width. No-op if no container is
// open.
func (c *Context) SingleLineLayout() {
	c.sanityCheck()
	c.clearLayout()
}

// StartCustomLayout clears the current container's columns; follow
// with AddColumn or AddColumnRelative to supply them one at a time.
// No-op if no container is open.
func (c *Context) StartCustomLayout() {
	c.sanityCheck()
	c.clearLayout()
}

func (c *Context) clearLayout() {
	top := c.stack.Peek()
	if top == nil {
		return
	}
	top.LayoutWidths = top.LayoutWidths[:0]
	c.updateLayout()
}

// AddColumn appends a fixed-width column to the current container's
// layout. Use container.FillWidth to fill the remaining space. No-op
// if no container is open.
func (c *Context) AddColumn(width int) {
	c.sanityCheck()

	top := c.stack.Peek()
	if top == nil {
		return
	}
	top.LayoutWidths = append(top.LayoutWidths, width)
	c.updateLayout()
}

// AddColumnRelative appends a column sized as a fraction of the
// current container's width, queried from the backend at call time.
// No-op if no container is open.
func (c *Context) AddColumnRelative(fraction float64) {
	c.sanityCheck()

	top := c.stack.Peek()
	if top == nil {
		return
	}
	w, _ := c.drv.ContainerSize()
	top.LayoutWidths = append(top.LayoutWidths, int(float64(w)*fraction))
	c.updateLayout()
}

// SetLayoutHeight sets the current container's row height in pixels.
// No-op if no container is open.
func (c *Context) SetLayoutHeight(height int) {
	c.sanityCheck()

	top := c.stack.Peek()
	if top == nil {
		return
	}
	top.LayoutHeight = height
	c.updateLayout()
}

// twoColumnLayout switches the current container to a fixed-width
// label column followed by a fill column. Used by every labeled
// widget convenience.
func (c *Context) twoColumnLayout() {
	top := c.stack.Peek()
	if top == nil {
		return
	}
	top.LayoutWidths = append(top.LayoutWidths[:0], c.labelWidth, container.FillWidth)
	c.updateLayout()
}
