package navigator

import "fmt"

// ControlKind distinguishes the two families of focusable text controls.
// They share most events but signal "submit" differently: a single-line
// control raises ShouldReturn, a multi-line control inserts a newline.
type ControlKind int

const (
	SingleLine ControlKind = iota
	MultiLine
)

// String returns a human-readable name for the control kind
func (k ControlKind) String() string {
	switch k {
	case SingleLine:
		return "single-line"
	case MultiLine:
		return "multi-line"
	default:
		return fmt.Sprintf("ControlKind(%d)", k)
	}
}

// Rect is a control's bounding frame in screen coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// TextRange identifies a span of text inside a control.
type TextRange struct {
	Start, Length int
}

// Control is a widget that can hold text-input focus.
//
// Controls are compared by identity (the interface value is used as a map
// key), so implementations must be pointer types.
type Control interface {
	Kind() ControlKind

	// RequestFocus asks the control to become the focused control.
	// Returns false when the control declines.
	RequestFocus() bool
	// ReleaseFocus asks the control to give up focus (end editing).
	// Returns false when the control declines.
	ReleaseFocus() bool

	SubmitLabel() SubmitLabel
	SetSubmitLabel(SubmitLabel)

	Tag() int
	ScreenFrame() Rect

	// Observer returns the control's current event observer, or nil.
	Observer() Observer
	SetObserver(Observer)
}

// TreeWalker enumerates focusable controls in a view hierarchy.
// Views are opaque to the navigator; only the walker knows how to traverse them.
type TreeWalker interface {
	// DescendantsFocusable returns every focusable control below root,
	// in traversal order.
	DescendantsFocusable(root any) []Control
	// NearestScrollableList returns the closest scrollable-list ancestor of c.
	NearestScrollableList(c Control) (any, bool)
	// SiblingFocusable returns the focusable controls that share c's parent,
	// c included.
	SiblingFocusable(c Control) []Control
	// Attached reports whether c is still part of a view tree.
	Attached(c Control) bool
}
