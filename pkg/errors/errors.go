// Package errors provides structured diagnostics for the panelkit
// container engine. Every mismatch the engine detects is recoverable:
// it is reported through the configured Handler and resolved by
// mutating the engine's state, never surfaced as an error return to
// the caller that made the mismatched call.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// Kind categorizes a diagnostic.
type Kind int

const (
	// KindUnknown indicates a diagnostic of unknown type.
	KindUnknown Kind = iota
	// KindOrphanClose indicates a close call with no matching open
	// container anywhere on the stack.
	KindOrphanClose
	// KindPrematureClose indicates a close call for a container that is
	// open but not innermost, implying unclosed inner containers.
	KindPrematureClose
	// KindUnclosedAtDraw indicates a container still open when the
	// frame was drawn.
	KindUnclosedAtDraw
	// KindCapacityExceeded indicates the backend's item-count guard
	// tripped and the frame was forcibly reset.
	KindCapacityExceeded
	// KindFrameNotStarted indicates an interface call before the frame
	// was started; the engine started it implicitly.
	KindFrameNotStarted
	// KindFrameSummary is the once-per-frame summary emitted at draw
	// time when any of the above occurred during the frame.
	KindFrameSummary
)

func (k Kind) String() string {
	switch k {
	case KindOrphanClose:
		return "orphan close"
	case KindPrematureClose:
		return "premature close"
	case KindUnclosedAtDraw:
		return "unclosed at draw"
	case KindCapacityExceeded:
		return "capacity exceeded"
	case KindFrameNotStarted:
		return "frame not started"
	case KindFrameSummary:
		return "frame summary"
	default:
		return "unknown"
	}
}

// CloseError describes a close call that did not match the innermost
// open container.
type CloseError struct {
	// Kind is KindOrphanClose or KindPrematureClose.
	Kind Kind
	// Call is the offending close call, e.g. `end_panel("main")`.
	Call string
	// Container is the display name of the container type being closed.
	Container string
	// Name is the name the close call referred to.
	Name string
	// Expected is the close call that was expected instead, when the
	// close named a container that is not open at all. Empty otherwise.
	Expected string
	// CloseFirst lists, innermost first, the close calls that must be
	// made before Call. Set only for premature closes.
	CloseFirst []string
	// Timestamp is when the mismatch was detected.
	Timestamp time.Time
}

func (e *CloseError) Error() string {
	if e.Kind == KindPrematureClose {
		return fmt.Sprintf("%s called too early; close these first: %s",
			e.Call, strings.Join(e.CloseFirst, ", "))
	}
	if e.Expected != "" {
		return fmt.Sprintf("unexpected call to %s: no %s named %q open; expected %s instead",
			e.Call, e.Container, e.Name, e.Expected)
	}
	return fmt.Sprintf("unexpected call to %s: no %ss (or any other containers) started",
		e.Call, e.Container)
}

// UnclosedError describes a container still open when the frame was
// drawn. The engine closes it before drawing.
type UnclosedError struct {
	// Container is the display name of the container type.
	Container string
	// Name is the container's name.
	Name string
	// EndCall is the close call the caller forgot, e.g. `end_panel("main")`.
	EndCall string
	// Timestamp is when the forced closure happened.
	Timestamp time.Time
}

func (e *UnclosedError) Error() string {
	return fmt.Sprintf("%q (a %s) not closed before drawing; call %s",
		e.Name, e.Container, e.EndCall)
}

// FrameError describes a frame-lifecycle diagnostic: an implicit frame
// start, a capacity reset, or the per-frame error summary.
type FrameError struct {
	// Kind is KindFrameNotStarted, KindCapacityExceeded, or
	// KindFrameSummary.
	Kind Kind
	// Timestamp is when the condition was detected.
	Timestamp time.Time
}

func (e *FrameError) Error() string {
	switch e.Kind {
	case KindFrameNotStarted:
		return "interface call before the frame was started; starting it now"
	case KindCapacityExceeded:
		return "too many interface items created without drawing; the frame has been reset to keep the program running"
	case KindFrameSummary:
		return "errors occurred in the interface this frame"
	default:
		return e.Kind.String()
	}
}

// Handler receives diagnostics reported by the container engine.
type Handler interface {
	// HandleClose is called for orphan and premature close calls.
	HandleClose(err *CloseError)
	// HandleUnclosed is called for each container force-closed at draw.
	HandleUnclosed(err *UnclosedError)
	// HandleFrame is called for frame-lifecycle diagnostics.
	HandleFrame(err *FrameError)
}
