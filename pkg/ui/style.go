package ui

import "golang.org/x/image/font"

// SetFont sets the interface font face, forwarded to the backend and
// carried in the style options handed to Draw.
func (c *Context) SetFont(face font.Face) {
	c.style.Font = face
	c.drv.SetFont(face)
}

// SetFontSize sets the interface font size in points.
func (c *Context) SetFontSize(size int) {
	c.style.FontSize = size
	c.drv.SetFontSize(size)
}

// SetLabelWidth sets the pixel width of the label column used by the
// labeled widget conveniences.
func (c *Context) SetLabelWidth(width int) {
	c.labelWidth = width
}

// LabelWidth returns the current label column width in pixels.
func (c *Context) LabelWidth() int {
	return c.labelWidth
}
