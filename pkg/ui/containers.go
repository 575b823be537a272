package ui

import (
	"github.com/go-panelkit/panelkit/pkg/container"
	"github.com/go-panelkit/panelkit/pkg/driver"
)

// StartPanel opens a movable panel, returning whether it is open this
// frame. The rectangle positions the panel on first use. When the
// panel is open, show its contents and close it with EndPanel; when
// closed, skip both.
func (c *Context) StartPanel(name string, initial driver.Rect) bool {
	c.sanityCheck()

	open := c.drv.StartPanel(name, initial)
	c.pushContainer(open, container.Panel, name)
	return open
}

// EndPanel closes the named panel.
func (c *Context) EndPanel(name string) {
	c.sanityCheck()
	c.popContainer(container.Panel, name)
}

// StartPopup opens the named popup if OpenPopup was triggered for it,
// returning whether it is open this frame. Open popups default to the
// single-line layout. Pair with EndPopup only when open: skip the
// popup's contents and its EndPopup call when StartPopup returns false.
func (c *Context) StartPopup(name string) bool {
	c.sanityCheck()

	open := c.drv.StartPopup(name)
	c.pushContainer(open, container.Popup, name)

	if open {
		c.SingleLineLayout()
	}
	return open
}

// EndPopup closes the named popup.
func (c *Context) EndPopup(name string) {
	c.sanityCheck()
	c.popContainer(container.Popup, name)
}

// StartInset opens a grouping inset of the given pixel height inside
// the current container. Insets are always open. The height applies
// to the enclosing container's layout row holding the inset.
func (c *Context) StartInset(name string, height int) {
	c.sanityCheck()

	c.SetLayoutHeight(height)
	c.drv.StartInset(name)
	c.pushContainer(true, container.Inset, name)
}

// EndInset closes the named inset.
func (c *Context) EndInset(name string) {
	c.sanityCheck()
	c.popContainer(container.Inset, name)
}

// StartTreeNode opens a collapsible tree section, returning whether
// it is expanded this frame. When expanded, show its contents and
// close it with EndTreeNode; when collapsed, skip both.
func (c *Context) StartTreeNode(name string) bool {
	c.sanityCheck()

	open := c.drv.StartTreeNode(name)
	c.pushContainer(open, container.TreeNode, name)
	return open
}

// EndTreeNode closes the named tree node.
func (c *Context) EndTreeNode(name string) {
	c.sanityCheck()
	c.popContainer(container.TreeNode, name)
}

// OpenPopup requests that the named popup open on its next StartPopup
// call.
func (c *Context) OpenPopup(name string) {
	c.sanityCheck()
	c.drv.OpenPopup(name)
}

// EnterColumn moves widgets into the next layout column. Columns are
// anonymous containers; pair with LeaveColumn.
func (c *Context) EnterColumn() {
	c.sanityCheck()

	c.drv.StartColumn()
	c.pushContainer(true, container.Column, "")
}

// LeaveColumn closes the current layout column.
func (c *Context) LeaveColumn() {
	c.sanityCheck()
	c.popContainer(container.Column, "")
}
