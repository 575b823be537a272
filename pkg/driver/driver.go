// Package driver defines the backend interface the container engine
// drives. The backend owns actual widget rendering and maintains its
// own open/close call stack mirroring the engine's; the engine
// guarantees every Start* it forwards is paired with exactly one
// matching End* call, in LIFO order, even when caller code mismatches
// its own calls.
package driver

import "golang.org/x/image/font"

// Rect is a panel's initial position and size, in pixels.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// StyleOptions carries the style state handed to Draw.
type StyleOptions struct {
	// Font is the interface font face. Nil means the backend default.
	Font font.Face

	// FontSize is the interface font size in points. Zero means the
	// backend default.
	FontSize int
}

// Driver is the rendering backend. Implementations are external to
// this module; pkg/testing provides a recording fake for tests.
//
// All calls are made from the single frame thread; implementations
// need no internal locking on behalf of the engine.
type Driver interface {
	// IsStarted reports whether the backend has begun the current frame.
	IsStarted() bool

	// Start begins (or forcibly restarts) the backend's frame state,
	// discarding any items created since the last Draw.
	Start()

	// CapacityLimited reports whether the backend's item capacity is
	// exhausted because too many widgets were created without a Draw.
	CapacityLimited() bool

	// SetLayout configures column widths and row height for subsequent
	// widgets. A width of container.FillWidth expands to the remaining
	// space.
	SetLayout(widths []int, height int)

	// ContainerSize returns the current container's inner size in
	// pixels, used to resolve relative column widths.
	ContainerSize() (width, height int)

	// StartPanel opens a movable panel, returning whether it is open
	// this frame. The rectangle positions the panel on first use only.
	StartPanel(name string, initial Rect) bool
	EndPanel()

	// StartPopup opens the named popup if OpenPopup was triggered for
	// it, returning whether it is open this frame.
	StartPopup(name string) bool
	EndPopup()

	// StartInset opens a grouping inset. Insets are always open.
	StartInset(name string)
	EndInset()

	// StartTreeNode opens a collapsible tree section, returning whether
	// it is expanded this frame.
	StartTreeNode(name string) bool
	EndTreeNode()

	// StartColumn enters the next layout column.
	StartColumn()
	EndColumn()

	// OpenPopup requests that the named popup open on its next
	// StartPopup call.
	OpenPopup(name string)

	// Header shows a collapsible header, returning whether its section
	// is expanded.
	Header(label string) bool
	Label(text string)
	Text(text string)
	Button(text string) bool
	Checkbox(text string, value bool) bool
	Slider(value, min, max float64) float64
	Number(value, step float64) float64
	TextBox(value string) string

	// Changed reports whether the last widget's value changed this frame.
	Changed() bool
	// Confirmed reports whether the last widget's value was confirmed
	// (for example by pressing enter in a text box).
	Confirmed() bool

	SetFont(face font.Face)
	SetFontSize(size int)

	// Draw renders the frame's accumulated items and resets the
	// backend's per-frame state. Called exactly once per frame.
	Draw(opts StyleOptions)
}
