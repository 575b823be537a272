package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-panelkit/panelkit/pkg/container"
	"github.com/go-panelkit/panelkit/pkg/driver"
	"github.com/go-panelkit/panelkit/pkg/errors"
	pktest "github.com/go-panelkit/panelkit/pkg/testing"
)

// TestWellNestedRoundTrip verifies that a well-nested sequence of
// opens and closes empties the stack, pairs every backend open with
// exactly one backend close in LIFO order, and raises no diagnostics.
func TestWellNestedRoundTrip(t *testing.T) {
	capture := installCapture(t)
	drv := pktest.NewFakeDriver()
	ctx := New(drv)

	ctx.StartPanel("main", driver.Rect{Width: 200, Height: 100})
	ctx.StartTreeNode("files")
	ctx.EnterColumn()
	ctx.LeaveColumn()
	ctx.EndTreeNode("files")
	ctx.EndPanel("main")

	if ctx.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", ctx.Depth())
	}
	if ctx.ErrorsOccurred() {
		t.Error("well-nested calls should not set the error flag")
	}
	if len(capture.closes)+len(capture.unclosed)+len(capture.frames) != 0 {
		t.Errorf("well-nested calls reported diagnostics: %v %v %v",
			capture.closes, capture.unclosed, capture.frames)
	}

	want := []string{
		`start_panel("main")`,
		`start_treenode("files")`,
		"start_column",
		"end_column",
		"end_treenode",
		"end_panel",
	}
	if diff := cmp.Diff(want, containerCalls(drv.Calls)); diff != "" {
		t.Errorf("backend call order mismatch (-want +got):\n%s", diff)
	}
}

// TestOrphanCloseOnEmptyStack verifies that closing with nothing open
// is a backend no-op that sets the error flag.
func TestOrphanCloseOnEmptyStack(t *testing.T) {
	capture := installCapture(t)
	drv := pktest.NewFakeDriver()
	ctx := New(drv)

	ctx.EndPanel("main")

	if ctx.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", ctx.Depth())
	}
	if !ctx.ErrorsOccurred() {
		t.Error("orphan close should set the error flag")
	}
	if got := drv.CallsOf("end_panel"); len(got) != 0 {
		t.Errorf("backend received %v, want no close calls", got)
	}
	if len(capture.closes) != 1 {
		t.Fatalf("reported %d close diagnostics, want 1", len(capture.closes))
	}
	diag := capture.closes[0]
	if diag.Kind != errors.KindOrphanClose {
		t.Errorf("diagnostic kind = %v, want orphan close", diag.Kind)
	}
	if diag.Call != `end_panel("main")` {
		t.Errorf("diagnostic call = %q, want end_panel(\"main\")", diag.Call)
	}
}

// TestPrematureCloseUnwinds verifies that closing an outer container
// closes the skipped inner containers first, innermost out, each
// exactly once.
func TestPrematureCloseUnwinds(t *testing.T) {
	capture := installCapture(t)
	drv := pktest.NewFakeDriver()
	ctx := New(drv)

	ctx.StartPanel("a", driver.Rect{})
	ctx.StartTreeNode("b")
	ctx.StartInset("c", 40)

	ctx.EndPanel("a")

	if ctx.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", ctx.Depth())
	}
	if !ctx.ErrorsOccurred() {
		t.Error("premature close should set the error flag")
	}

	want := []string{
		`start_panel("a")`,
		`start_treenode("b")`,
		`start_inset("c")`,
		"end_inset",
		"end_treenode",
		"end_panel",
	}
	if diff := cmp.Diff(want, containerCalls(drv.Calls)); diff != "" {
		t.Errorf("backend call order mismatch (-want +got):\n%s", diff)
	}

	if len(capture.closes) != 1 {
		t.Fatalf("reported %d close diagnostics, want 1", len(capture.closes))
	}
	diag := capture.closes[0]
	if diag.Kind != errors.KindPrematureClose {
		t.Errorf("diagnostic kind = %v, want premature close", diag.Kind)
	}
	wantFirst := []string{`end_inset("c")`, `end_treenode("b")`}
	if diff := cmp.Diff(wantFirst, diag.CloseFirst); diff != "" {
		t.Errorf("CloseFirst mismatch (-want +got):\n%s", diff)
	}
}

// TestNotFoundCloseIsInert verifies that closing a container absent
// from the entire stack mutates nothing and issues no backend close.
func TestNotFoundCloseIsInert(t *testing.T) {
	capture := installCapture(t)
	drv := pktest.NewFakeDriver()
	ctx := New(drv)

	ctx.StartPanel("a", driver.Rect{})
	ctx.EnterColumn()
	callsBefore := append([]string(nil), drv.Calls...)

	ctx.EndTreeNode("typo")

	if ctx.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", ctx.Depth())
	}
	if top := ctx.stack.FromTop(0); top.Kind != container.Column {
		t.Errorf("top = %v, want the column still innermost", top.Kind)
	}
	if outer := ctx.stack.FromTop(1); outer.Kind != container.Panel || outer.Name != "a" {
		t.Errorf("outer = %v/%q, want panel a", outer.Kind, outer.Name)
	}
	if !ctx.ErrorsOccurred() {
		t.Error("not-found close should set the error flag")
	}
	if diff := cmp.Diff(callsBefore, drv.Calls); diff != "" {
		t.Errorf("backend received calls for an inert close (-want +got):\n%s", diff)
	}

	if len(capture.closes) != 1 {
		t.Fatalf("reported %d close diagnostics, want 1", len(capture.closes))
	}
	diag := capture.closes[0]
	if diag.Kind != errors.KindOrphanClose {
		t.Errorf("diagnostic kind = %v, want orphan close", diag.Kind)
	}
	if diag.Expected != `leave_column("")` {
		t.Errorf("diagnostic expected = %q, want the innermost close", diag.Expected)
	}
}

// TestPrematureCloseOfPanelWithOpenColumn pins the Panel/Column
// recovery: closing the panel while its column is open closes the
// column first, then the panel, and the diagnostic tells the caller
// to leave the column.
func TestPrematureCloseOfPanelWithOpenColumn(t *testing.T) {
	capture := installCapture(t)
	drv := pktest.NewFakeDriver()
	ctx := New(drv)

	ctx.StartPanel("p", driver.Rect{})
	ctx.EnterColumn()

	ctx.EndPanel("p")

	want := []string{
		`start_panel("p")`,
		"start_column",
		"end_column",
		"end_panel",
	}
	if diff := cmp.Diff(want, containerCalls(drv.Calls)); diff != "" {
		t.Errorf("backend call order mismatch (-want +got):\n%s", diff)
	}
	if ctx.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", ctx.Depth())
	}
	if !ctx.ErrorsOccurred() {
		t.Error("error flag should be set")
	}

	if len(capture.closes) != 1 {
		t.Fatalf("reported %d close diagnostics, want 1", len(capture.closes))
	}
	diag := capture.closes[0]
	if diag.Call != `end_panel("p")` {
		t.Errorf("diagnostic call = %q, want end_panel(\"p\")", diag.Call)
	}
	wantFirst := []string{`leave_column("")`}
	if diff := cmp.Diff(wantFirst, diag.CloseFirst); diff != "" {
		t.Errorf("CloseFirst mismatch (-want +got):\n%s", diff)
	}
}

// TestPrematureCloseKeepsOuterContainers verifies unwinding stops at
// the target: containers outside it stay open.
func TestPrematureCloseKeepsOuterContainers(t *testing.T) {
	installCapture(t)
	drv := pktest.NewFakeDriver()
	ctx := New(drv)

	ctx.StartPanel("outer", driver.Rect{})
	ctx.StartTreeNode("target")
	ctx.EnterColumn()

	ctx.EndTreeNode("target")

	if ctx.Depth() != 1 {
		t.Errorf("Depth = %d, want 1 (outer panel still open)", ctx.Depth())
	}
	want := []string{
		`start_panel("outer")`,
		`start_treenode("target")`,
		"start_column",
		"end_column",
		"end_treenode",
	}
	if diff := cmp.Diff(want, containerCalls(drv.Calls)); diff != "" {
		t.Errorf("backend call order mismatch (-want +got):\n%s", diff)
	}
}

// TestDuplicateNamesCloseInnermost verifies the innermost of two
// same-kind same-name containers closes first.
func TestDuplicateNamesCloseInnermost(t *testing.T) {
	capture := installCapture(t)
	drv := pktest.NewFakeDriver()
	ctx := New(drv)

	ctx.StartPanel("p", driver.Rect{})
	ctx.StartTreeNode("n")
	ctx.StartTreeNode("n")

	ctx.EndTreeNode("n")

	if len(capture.closes) != 0 {
		t.Errorf("closing the innermost duplicate should not mismatch, got %v", capture.closes)
	}
	if ctx.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", ctx.Depth())
	}
}

// TestClosedOpenIsNotPushed verifies that a container the backend
// reports closed never lands on the stack.
func TestClosedOpenIsNotPushed(t *testing.T) {
	installCapture(t)
	drv := pktest.NewFakeDriver()
	drv.OpenResults = map[string]bool{"treenode:files": false}
	ctx := New(drv)

	ctx.StartPanel("p", driver.Rect{})
	open := ctx.StartTreeNode("files")

	if open {
		t.Error("StartTreeNode should report closed")
	}
	if ctx.Depth() != 1 {
		t.Errorf("Depth = %d, want 1 (closed treenode not pushed)", ctx.Depth())
	}
}
