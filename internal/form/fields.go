package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/formnav/internal/config"
	"github.com/muurk/formnav/internal/navigator"
	"github.com/muurk/formnav/internal/viewtree"
)

// ErrRequired is reported when a required field is left empty
var ErrRequired = errors.New("required")

// Field is a form control backed by a bubbles text component.
type Field interface {
	navigator.Control

	Name() string
	Label() string
	Value() string
	SetValue(string)
	Enabled() bool
	Focused() bool
	Err() error
	Node() *viewtree.Node
	View() string

	// Cursor returns the insertion point as an offset into Value.
	Cursor() int

	focus() tea.Cmd
	blur()
	update(msg tea.Msg) tea.Cmd
	setErr(error)
	validate(value string) error
	required() bool
}

// focusRing tracks the single focused field of a form and collects the
// commands produced while focus moves.
type focusRing struct {
	current Field
	cmds    []tea.Cmd
}

func (r *focusRing) drain() tea.Cmd {
	if len(r.cmds) == 0 {
		return nil
	}
	cmd := tea.Batch(r.cmds...)
	r.cmds = nil
	return cmd
}

// base holds the state shared by both field kinds.
type base struct {
	spec     config.FieldSpec
	node     *viewtree.Node
	ring     *focusRing
	label    navigator.SubmitLabel
	observer navigator.Observer
	err      error
}

func (b *base) Name() string                          { return b.spec.Name }
func (b *base) Label() string                         { return b.spec.DisplayLabel() }
func (b *base) Enabled() bool                         { return !b.spec.Disabled }
func (b *base) Err() error                            { return b.err }
func (b *base) Node() *viewtree.Node                  { return b.node }
func (b *base) SubmitLabel() navigator.SubmitLabel    { return b.label }
func (b *base) SetSubmitLabel(l navigator.SubmitLabel) { b.label = l }
func (b *base) Tag() int                              { return b.node.Tag }
func (b *base) ScreenFrame() navigator.Rect           { return b.node.ScreenFrame() }
func (b *base) Observer() navigator.Observer          { return b.observer }
func (b *base) SetObserver(o navigator.Observer)      { b.observer = o }
func (b *base) setErr(err error)                      { b.err = err }
func (b *base) required() bool                        { return b.spec.Required }

func (b *base) validate(value string) error {
	if b.spec.Required && strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: %w", b.Label(), ErrRequired)
	}
	return nil
}

// requestFocus moves the ring to f. The previously focused field must
// agree to end editing; f's observer must agree to begin.
func requestFocus(f Field, ring *focusRing) bool {
	if !f.Enabled() {
		return false
	}
	if ring.current == f {
		return true
	}
	if !navigator.AskShouldBeginEditing(f.Observer(), f) {
		return false
	}

	if prev := ring.current; prev != nil {
		if !navigator.AskShouldEndEditing(prev.Observer(), prev) {
			return false
		}
		prev.blur()
		ring.current = nil
		navigator.NotifyDidEndEditing(prev.Observer(), prev)
	}

	ring.current = f
	f.setErr(nil)
	ring.cmds = append(ring.cmds, f.focus())
	navigator.NotifyDidBeginEditing(f.Observer(), f)
	return true
}

// releaseFocus blurs f. An invalid value keeps focus on f.
func releaseFocus(f Field, ring *focusRing, validate func(string) error) bool {
	if ring.current != f {
		return true
	}
	if err := validate(f.Value()); err != nil {
		f.setErr(err)
		return false
	}
	if !navigator.AskShouldEndEditing(f.Observer(), f) {
		return false
	}
	f.blur()
	ring.current = nil
	navigator.NotifyDidEndEditing(f.Observer(), f)
	return true
}

// TextField is a single-line field backed by textinput.
type TextField struct {
	base
	input textinput.Model
}

var _ Field = (*TextField)(nil)

func newTextField(spec config.FieldSpec, ring *focusRing) *TextField {
	input := textinput.New()
	input.Placeholder = spec.Placeholder
	input.CharLimit = spec.CharLimit
	input.Width = fieldWidth
	input.Prompt = ""

	f := &TextField{
		base:  base{spec: spec, ring: ring},
		input: input,
	}
	f.node = viewtree.NewLeaf(spec.Name, navigator.Rect{
		X: spec.Column, Y: spec.Row, Width: fieldWidth, Height: 1,
	}, spec.Tag, f)
	f.node.Hidden = spec.Hidden
	return f
}

func (f *TextField) Kind() navigator.ControlKind { return navigator.SingleLine }
func (f *TextField) RequestFocus() bool          { return requestFocus(f, f.ring) }
func (f *TextField) ReleaseFocus() bool          { return releaseFocus(f, f.ring, f.validate) }
func (f *TextField) Value() string               { return f.input.Value() }
func (f *TextField) SetValue(s string)           { f.input.SetValue(s) }
func (f *TextField) Focused() bool               { return f.input.Focused() }
func (f *TextField) Cursor() int                 { return f.input.Position() }
func (f *TextField) View() string                { return f.input.View() }
func (f *TextField) focus() tea.Cmd              { return f.input.Focus() }
func (f *TextField) blur()                       { f.input.Blur() }

func (f *TextField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// TextArea is a multi-line field backed by textarea.
type TextArea struct {
	base
	area textarea.Model
}

var _ Field = (*TextArea)(nil)

func newTextArea(spec config.FieldSpec, ring *focusRing) *TextArea {
	area := textarea.New()
	area.Placeholder = spec.Placeholder
	area.CharLimit = spec.CharLimit
	area.ShowLineNumbers = false
	area.Prompt = ""
	area.SetWidth(fieldWidth)
	area.SetHeight(textAreaHeight)

	f := &TextArea{
		base: base{spec: spec, ring: ring},
		area: area,
	}
	f.node = viewtree.NewLeaf(spec.Name, navigator.Rect{
		X: spec.Column, Y: spec.Row, Width: fieldWidth, Height: textAreaHeight,
	}, spec.Tag, f)
	f.node.Hidden = spec.Hidden
	return f
}

func (f *TextArea) Kind() navigator.ControlKind { return navigator.MultiLine }
func (f *TextArea) RequestFocus() bool          { return requestFocus(f, f.ring) }
func (f *TextArea) ReleaseFocus() bool          { return releaseFocus(f, f.ring, f.validate) }
func (f *TextArea) Value() string               { return f.area.Value() }
func (f *TextArea) SetValue(s string)           { f.area.SetValue(s) }
func (f *TextArea) Focused() bool               { return f.area.Focused() }
func (f *TextArea) View() string                { return f.area.View() }
func (f *TextArea) focus() tea.Cmd              { return f.area.Focus() }
func (f *TextArea) blur()                       { f.area.Blur() }

// Cursor returns the offset of the cursor within Value.
func (f *TextArea) Cursor() int {
	lines := strings.Split(f.area.Value(), "\n")
	row := f.area.Line()
	offset := 0
	for i := 0; i < row && i < len(lines); i++ {
		offset += len([]rune(lines[i])) + 1
	}
	return offset + f.area.LineInfo().CharOffset
}

func (f *TextArea) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.area, cmd = f.area.Update(msg)
	return cmd
}

// newField builds a TextArea for multi-line specs, a TextField otherwise
func newField(spec config.FieldSpec, ring *focusRing) Field {
	if spec.Multiline {
		return newTextArea(spec, ring)
	}
	return newTextField(spec, ring)
}
