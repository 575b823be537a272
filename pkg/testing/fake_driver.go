package testing

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"

	"github.com/go-panelkit/panelkit/pkg/driver"
)

const (
	// DefaultContainerWidth is the container width FakeDriver reports,
	// used to resolve relative column widths in tests.
	DefaultContainerWidth = 400
	// DefaultContainerHeight is the container height FakeDriver reports.
	DefaultContainerHeight = 300
)

// FakeDriver is a driver.Driver that renders nothing and records every
// backend call in order. Zero-configuration behavior: the frame is
// started, capacity is unlimited, and every container reports open.
type FakeDriver struct {
	// Calls records every backend call in order, formatted as the call
	// a real backend would receive, e.g. `start_panel("main")`.
	Calls []string

	// OpenResults scripts the result of Start* calls per container,
	// keyed "kind:name" (e.g. "treenode:files"). Containers without an
	// entry report open.
	OpenResults map[string]bool

	// Started reports whether the frame has begun. NewFakeDriver sets
	// it; zero it to exercise the engine's implicit-start guard.
	Started bool

	// Capacity reports the item-count guard as tripped until the next
	// Start.
	Capacity bool

	// ContainerWidth and ContainerHeight are returned by ContainerSize.
	ContainerWidth  int
	ContainerHeight int

	// Layouts and LayoutHeights record every SetLayout call.
	Layouts       [][]int
	LayoutHeights []int

	// Scripted widget results.
	HeaderResult   bool
	ButtonResult   bool
	CheckboxResult bool
	SliderResult   float64
	NumberResult   float64
	TextBoxResult  string
	ChangedFlag    bool
	ConfirmedFlag  bool

	// Style state recorded from the engine.
	Font     font.Face
	FontSize int
	DrawOpts []driver.StyleOptions
}

var _ driver.Driver = (*FakeDriver)(nil)

// NewFakeDriver returns a FakeDriver with a started frame and default
// container size.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{
		Started:         true,
		ContainerWidth:  DefaultContainerWidth,
		ContainerHeight: DefaultContainerHeight,
	}
}

func (d *FakeDriver) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *FakeDriver) open(kind, name string) bool {
	if result, ok := d.OpenResults[kind+":"+name]; ok {
		return result
	}
	return true
}

// CallsOf returns the recorded calls whose name matches call exactly,
// ignoring arguments.
func (d *FakeDriver) CallsOf(call string) []string {
	var out []string
	for _, c := range d.Calls {
		name := c
		if i := strings.IndexByte(c, '('); i >= 0 {
			name = c[:i]
		}
		if name == call {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears all recorded calls and layouts.
func (d *FakeDriver) Reset() {
	d.Calls = nil
	d.Layouts = nil
	d.LayoutHeights = nil
	d.DrawOpts = nil
}

func (d *FakeDriver) IsStarted() bool { return d.Started }

func (d *FakeDriver) Start() {
	d.Started = true
	d.Capacity = false
	d.record("start")
}

func (d *FakeDriver) CapacityLimited() bool { return d.Capacity }

func (d *FakeDriver) SetLayout(widths []int, height int) {
	copied := append([]int(nil), widths...)
	d.Layouts = append(d.Layouts, copied)
	d.LayoutHeights = append(d.LayoutHeights, height)
	d.record("set_layout(%v, %d)", copied, height)
}

func (d *FakeDriver) ContainerSize() (int, int) {
	return d.ContainerWidth, d.ContainerHeight
}

func (d *FakeDriver) StartPanel(name string, initial driver.Rect) bool {
	d.record("start_panel(%q)", name)
	return d.open("panel", name)
}

func (d *FakeDriver) EndPanel() { d.record("end_panel") }

func (d *FakeDriver) StartPopup(name string) bool {
	d.record("start_popup(%q)", name)
	return d.open("popup", name)
}

func (d *FakeDriver) EndPopup() { d.record("end_popup") }

func (d *FakeDriver) StartInset(name string) {
	d.record("start_inset(%q)", name)
}

func (d *FakeDriver) EndInset() { d.record("end_inset") }

func (d *FakeDriver) StartTreeNode(name string) bool {
	d.record("start_treenode(%q)", name)
	return d.open("treenode", name)
}

func (d *FakeDriver) EndTreeNode() { d.record("end_treenode") }

func (d *FakeDriver) StartColumn() { d.record("start_column") }

func (d *FakeDriver) EndColumn() { d.record("end_column") }

func (d *FakeDriver) OpenPopup(name string) {
	d.record("open_popup(%q)", name)
}

func (d *FakeDriver) Header(label string) bool {
	d.record("header(%q)", label)
	return d.HeaderResult
}

func (d *FakeDriver) Label(text string) { d.record("label(%q)", text) }

func (d *FakeDriver) Text(text string) { d.record("text(%q)", text) }

func (d *FakeDriver) Button(text string) bool {
	d.record("button(%q)", text)
	return d.ButtonResult
}

func (d *FakeDriver) Checkbox(text string, value bool) bool {
	d.record("checkbox(%q, %v)", text, value)
	return d.CheckboxResult
}

func (d *FakeDriver) Slider(value, min, max float64) float64 {
	d.record("slider(%v, %v, %v)", value, min, max)
	return d.SliderResult
}

func (d *FakeDriver) Number(value, step float64) float64 {
	d.record("number(%v, %v)", value, step)
	return d.NumberResult
}

func (d *FakeDriver) TextBox(value string) string {
	d.record("text_box(%q)", value)
	return d.TextBoxResult
}

func (d *FakeDriver) Changed() bool { return d.ChangedFlag }

func (d *FakeDriver) Confirmed() bool { return d.ConfirmedFlag }

func (d *FakeDriver) SetFont(face font.Face) {
	d.Font = face
	d.record("set_font")
}

func (d *FakeDriver) SetFontSize(size int) {
	d.FontSize = size
	d.record("set_font_size(%d)", size)
}

func (d *FakeDriver) Draw(opts driver.StyleOptions) {
	d.DrawOpts = append(d.DrawOpts, opts)
	d.record("draw")
}
