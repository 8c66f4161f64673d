// Package selector implements the searchable dial-code picker state: open
// and closed states, search filtering, keyboard and mouse navigation, and the
// desktop/compact layout switch. It holds no rendering code.
package selector

import (
	"time"

	"github.com/orbytrixx/orbytrixx/internal/dialcode"
)

// CompactBreakpoint is the default viewport width (terminal columns) below
// which the selector renders as a full-screen sheet instead of a dropdown.
const CompactBreakpoint = 100

// FocusDelay is how long after opening the desktop panel the search field
// should receive focus.
const FocusDelay = 100 * time.Millisecond

// NoMatchesText is shown in place of the list when the search matches nothing.
const NoMatchesText = "No Matches Found"

// Key is a navigation key understood by the selector.
type Key int

// Keys the selector reacts to. KeyNone stands for any other key and is never
// handled.
const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
)

// Selector is the state of a searchable dial-code combo box.
//
// The zero value is not usable; create one with New. A Selector is owned by a
// single event loop and is not safe for concurrent use.
type Selector struct {
	value       string
	open        bool
	search      string
	highlighted int
	compact     bool
	breakpoint  int

	onChange func(string)
	onBlur   func()
}

// Option configures a Selector.
type Option func(*Selector)

// WithOnChange registers the callback invoked with the committed dial code.
func WithOnChange(fn func(string)) Option {
	return func(s *Selector) { s.onChange = fn }
}

// WithOnBlur registers the callback invoked when the selector loses focus.
func WithOnBlur(fn func()) Option {
	return func(s *Selector) { s.onBlur = fn }
}

// WithBreakpoint overrides CompactBreakpoint. Non-positive values are ignored.
func WithBreakpoint(width int) Option {
	return func(s *Selector) {
		if width > 0 {
			s.breakpoint = width
		}
	}
}

// New returns a closed selector showing value.
func New(value string, opts ...Option) *Selector {
	s := &Selector{
		value:      value,
		breakpoint: CompactBreakpoint,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Value returns the current dial code, as last set or committed.
func (s *Selector) Value() string { return s.value }

// SetValue replaces the displayed value without invoking onChange.
func (s *Selector) SetValue(v string) { s.value = v }

// Selected returns the entry shown on the trigger.
func (s *Selector) Selected() dialcode.Entry { return dialcode.Resolve(s.value) }

// IsOpen reports whether the panel is open.
func (s *Selector) IsOpen() bool { return s.open }

// Search returns the current search text.
func (s *Selector) Search() string { return s.search }

// Highlighted returns the index of the highlighted entry in Filtered().
func (s *Selector) Highlighted() int { return s.highlighted }

// Compact reports whether the compact (sheet) layout is active.
func (s *Selector) Compact() bool { return s.compact }

// Breakpoint returns the width below which the layout is compact.
func (s *Selector) Breakpoint() int { return s.breakpoint }

// Filtered returns the entries matching the current search.
func (s *Selector) Filtered() []dialcode.Entry {
	return dialcode.Filter(s.search)
}

// Open opens the panel, clearing the search and highlighting the first entry.
// It returns true when the caller should focus the search field after
// FocusDelay, which only happens in the desktop layout.
func (s *Selector) Open() bool {
	s.open = true
	s.search = ""
	s.highlighted = 0
	return !s.compact
}

// Close closes the panel without committing.
func (s *Selector) Close() {
	s.open = false
}

// Toggle opens a closed panel or closes an open one.
func (s *Selector) Toggle() bool {
	if s.open {
		s.Close()
		return false
	}
	return s.Open()
}

// SetSearch updates the search text. The highlight moves back to the first
// match so it always points inside the filtered list.
func (s *Selector) SetSearch(text string) {
	if text == s.search {
		return
	}
	s.search = text
	s.highlighted = 0
}

// HandleKey applies a navigation key and reports whether it was consumed.
//
// While closed, Enter and Down open the panel. While open, Up and Down move
// the highlight with wrap-around, Enter commits the highlighted entry and
// Escape closes without committing.
func (s *Selector) HandleKey(k Key) (handled bool, focusSearch bool) {
	if !s.open {
		if k == KeyEnter || k == KeyDown {
			return true, s.Open()
		}
		return false, false
	}

	n := len(s.Filtered())
	switch k {
	case KeyDown:
		if n > 0 {
			s.highlighted = (s.highlighted + 1) % n
		}
		return true, false
	case KeyUp:
		if n > 0 {
			s.highlighted = (s.highlighted - 1 + n) % n
		}
		return true, false
	case KeyEnter:
		s.Choose(s.highlighted)
		return true, false
	case KeyEscape:
		s.Close()
		return true, false
	}
	return false, false
}

// Hover highlights entry i of the filtered list. Ignored in the compact
// layout and for out-of-range indexes.
func (s *Selector) Hover(i int) {
	if !s.open || s.compact {
		return
	}
	if i >= 0 && i < len(s.Filtered()) {
		s.highlighted = i
	}
}

// Choose commits entry i of the filtered list, closes the panel and invokes
// onChange. It reports false and leaves the panel open when i is out of range.
func (s *Selector) Choose(i int) bool {
	filtered := s.Filtered()
	if i < 0 || i >= len(filtered) {
		return false
	}
	s.value = filtered[i].DialCode
	s.open = false
	if s.onChange != nil {
		s.onChange(s.value)
	}
	return true
}

// ClickOutside closes the panel without committing.
func (s *Selector) ClickOutside() {
	s.Close()
}

// Resize recomputes the layout for a viewport of the given width.
func (s *Selector) Resize(width int) {
	s.compact = width < s.breakpoint
}

// Blur notifies the owner that focus left the selector.
func (s *Selector) Blur() {
	if s.onBlur != nil {
		s.onBlur()
	}
}
