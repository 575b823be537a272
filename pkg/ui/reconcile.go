package ui

import (
	"fmt"

	"github.com/go-panelkit/panelkit/pkg/container"
	"github.com/go-panelkit/panelkit/pkg/errors"
)

// endCall formats the close call a caller would write for kind/name,
// for diagnostics: `end_panel("main")`, `leave_column("")`.
func endCall(kind container.Kind, name string) string {
	return fmt.Sprintf("%s_%s(%q)", kind.EndPrefix(), kind, name)
}

// pushContainer records a newly-opened container. Opens are accepted
// unconditionally: the backend's own open calls never mismatch, so
// there is nothing to validate here. Closes carry all the
// reconciliation.
func (c *Context) pushContainer(open bool, kind container.Kind, name string) {
	if open {
		c.stack.Push(kind, name)
	}
	c.updateLayout()
}

// endContainerKind forwards the type-specific backend close for kind.
func (c *Context) endContainerKind(kind container.Kind) {
	switch kind {
	case container.Panel:
		c.drv.EndPanel()
	case container.Popup:
		c.drv.EndPopup()
	case container.Inset:
		c.drv.EndInset()
	case container.TreeNode:
		c.drv.EndTreeNode()
	case container.Column:
		c.drv.EndColumn()
	}
}

// popContainer handles closing a container, and also recovering when
// the caller has mismatched an open/close pair. The backend mirrors
// every open/close 1:1, so each record popped here must see exactly
// one backend close first, in innermost-to-outermost order.
func (c *Context) popContainer(kind container.Kind, name string) {
	if c.stack.Len() == 0 {
		c.errorFlag = true
		errors.ReportClose(&errors.CloseError{
			Kind:      errors.KindOrphanClose,
			Call:      endCall(kind, name),
			Container: kind.String(),
			Name:      name,
		})
		return
	}

	top := c.stack.Peek()
	if top.Kind == kind && top.Name == name {
		c.endContainerKind(top.Kind)
		c.stack.Pop()
		c.updateLayout()
		return
	}

	// The caller has made a mistake. Look for the container anywhere
	// below the top so we can unwind to it.
	c.errorFlag = true

	depth, found := c.stack.FindFromTop(kind, name)
	if !found {
		// Never opened, or a name typo. Ignore the call entirely so the
		// backend's stack stays in step.
		errors.ReportClose(&errors.CloseError{
			Kind:      errors.KindOrphanClose,
			Call:      endCall(kind, name),
			Container: kind.String(),
			Name:      name,
			Expected:  endCall(top.Kind, top.Name),
		})
		return
	}

	closeFirst := make([]string, 0, depth)
	for i := 0; i < depth; i++ {
		rec := c.stack.FromTop(i)
		closeFirst = append(closeFirst, endCall(rec.Kind, rec.Name))
	}
	errors.ReportClose(&errors.CloseError{
		Kind:       errors.KindPrematureClose,
		Call:       endCall(kind, name),
		Container:  kind.String(),
		Name:       name,
		CloseFirst: closeFirst,
	})

	// Unwind the skipped containers innermost-out, then the target
	// itself. Backend close before pop, one per record.
	for i := 0; i <= depth; i++ {
		rec := c.stack.Peek()
		c.endContainerKind(rec.Kind)
		c.stack.Pop()
	}
	c.updateLayout()
}
