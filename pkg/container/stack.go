package container

// FillWidth is the sentinel column width meaning "fill the remaining
// space". A record's default layout is a single fill column.
const FillWidth = -1

// Record is one currently-open container and its layout configuration.
type Record struct {
	// Kind is the container's type.
	Kind Kind

	// Name is the caller-supplied name. Empty for anonymous containers
	// such as layout columns.
	Name string

	// LayoutWidths holds the column widths for content inside this
	// container, in pixels. FillWidth entries expand to the remaining
	// space.
	LayoutWidths []int

	// LayoutHeight is the row height for content inside this container.
	// Zero means the backend's default.
	LayoutHeight int
}

// NewRecord creates a Record with the default single fill-width column.
func NewRecord(kind Kind, name string) Record {
	return Record{
		Kind:         kind,
		Name:         name,
		LayoutWidths: []int{FillWidth},
	}
}

// Stack is an ordered sequence of open containers. The last record is
// the innermost container. The zero value is an empty stack ready to use.
//
// Stack performs no locking; the engine serializes all access on the
// frame thread.
type Stack struct {
	records []Record
}

// Len returns the number of open containers.
func (s *Stack) Len() int {
	return len(s.records)
}

// Push opens a new container with the default layout. Push always
// succeeds; opens are never validated against the current nesting.
func (s *Stack) Push(kind Kind, name string) {
	s.records = append(s.records, NewRecord(kind, name))
}

// Peek returns the innermost open container, or nil if the stack is
// empty. The returned pointer is valid until the next Push or Pop.
func (s *Stack) Peek() *Record {
	if len(s.records) == 0 {
		return nil
	}
	return &s.records[len(s.records)-1]
}

// Pop removes and returns the innermost container. The stack must be
// non-empty; callers check with Peek or Len first.
func (s *Stack) Pop() Record {
	rec := s.records[len(s.records)-1]
	s.records = s.records[:len(s.records)-1]
	return rec
}

// FromTop returns the record at the given depth from the top, where
// depth 0 is the innermost container. Returns nil if depth is out of
// range.
func (s *Stack) FromTop(depth int) *Record {
	if depth < 0 || depth >= len(s.records) {
		return nil
	}
	return &s.records[len(s.records)-1-depth]
}

// FindFromTop scans from the innermost container outward for the first
// record matching kind and name, returning its depth from the top.
func (s *Stack) FindFromTop(kind Kind, name string) (depth int, ok bool) {
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].Kind == kind && s.records[i].Name == name {
			return len(s.records) - 1 - i, true
		}
	}
	return 0, false
}

// Clear removes all records.
func (s *Stack) Clear() {
	s.records = s.records[:0]
}
