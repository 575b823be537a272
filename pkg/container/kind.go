// Package container tracks the ordered stack of currently-open UI
// containers. The stack is the engine's single source of truth for
// nesting: the last record is the innermost container, and a record at
// any depth must close after every record above it.
package container

// Kind identifies the type of a container.
type Kind int

const (
	// Panel is a top-level movable panel.
	Panel Kind = iota
	// Inset is a fixed-height grouping inset inside another container.
	Inset
	// TreeNode is a collapsible tree section.
	TreeNode
	// Column is an anonymous layout column.
	Column
	// Popup is a popup opened by name.
	Popup
)

func (k Kind) String() string {
	switch k {
	case Panel:
		return "panel"
	case Inset:
		return "inset"
	case TreeNode:
		return "treenode"
	case Column:
		return "column"
	case Popup:
		return "popup"
	default:
		return ""
	}
}

// EndPrefix returns the verb callers use to close a container of this
// kind. Columns are closed with "leave", everything else with "end".
// Used only to phrase diagnostics.
func (k Kind) EndPrefix() string {
	if k == Column {
		return "leave"
	}
	return "end"
}
