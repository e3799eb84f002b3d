package form

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/formnav/internal/config"
	"github.com/muurk/formnav/internal/navigator"
)

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	ctrlU    = tea.KeyMsg{Type: tea.KeyCtrlU}
)

func focusedName(m Model) string {
	if f := m.Focused(); f != nil {
		return f.Name()
	}
	return ""
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func contactForm(t *testing.T) *config.FormSpec {
	t.Helper()
	form, err := config.DefaultDocument().Form("contact")
	if err != nil {
		t.Fatalf("Form() error = %v", err)
	}
	return form
}

func TestNew_FocusesFirstField(t *testing.T) {
	m := New(contactForm(t), navigator.DefaultConfig())

	if got := focusedName(m); got != "first_name" {
		t.Fatalf("focused = %q, want first_name", got)
	}
	if got := m.Focused().SubmitLabel(); got != navigator.LabelNext {
		t.Errorf("SubmitLabel = %v, want next", got)
	}
	if got := m.Navigator().Len(); got != 5 {
		t.Errorf("registered = %d, want 5", got)
	}
	if m.Init() == nil {
		t.Error("Init() should return the focus command")
	}
}

func TestModel_ReturnWalksScrollList(t *testing.T) {
	cfg := navigator.Config{Behaviour: navigator.BySubviews, LastSubmitLabel: navigator.LabelDone}
	m := New(contactForm(t), cfg)

	want := []string{"last_name", "email", "phone", "notes"}
	for _, name := range want {
		m, _ = press(t, m, enter)
		if got := focusedName(m); got != name {
			t.Fatalf("after enter focused = %q, want %q", got, name)
		}
	}

	notes := m.Focused()
	if notes.Kind() != navigator.MultiLine {
		t.Fatalf("notes kind = %v, want multi-line", notes.Kind())
	}
	if got := notes.SubmitLabel(); got != navigator.LabelDone {
		t.Errorf("last SubmitLabel = %v, want done", got)
	}

	m, _ = press(t, m, enter)
	if m.Focused() != nil {
		t.Fatalf("focus should be released, got %q", focusedName(m))
	}
	if notes.Value() != "" {
		t.Errorf("newline should not be inserted, got %q", notes.Value())
	}
	if got := m.Navigator().Stats(); got.Advances != 4 || got.Releases != 1 {
		t.Errorf("Stats = %+v, want 4 advances and 1 release", got)
	}
}

func TestModel_TypingAndSubmit(t *testing.T) {
	m := New(contactForm(t), navigator.DefaultConfig())

	m, _ = press(t, m, typeText("Ada"), enter, typeText("Lovelace"), enter, typeText("ada@example.com"))
	m, _ = press(t, m, enter, enter, enter)
	if m.Focused() != nil {
		t.Fatalf("focus should be released, got %q", focusedName(m))
	}
	if !strings.Contains(m.View(), "Form complete") {
		t.Error("View() should announce the completed form")
	}

	m, cmd := press(t, m, enter)
	if !m.Submitted() {
		t.Fatal("form should be submitted")
	}
	if !isQuit(cmd) {
		t.Error("submit should quit")
	}
	if m.Navigator().Len() != 0 {
		t.Error("quitting should close the navigator")
	}

	values := m.Values()
	if values["first_name"] != "Ada" || values["last_name"] != "Lovelace" || values["email"] != "ada@example.com" {
		t.Errorf("Values() = %v", values)
	}
}

func TestModel_SubmitWithMissingRequired(t *testing.T) {
	m := New(contactForm(t), navigator.DefaultConfig())

	m, _ = press(t, m, esc)
	if m.Focused() == nil {
		t.Fatal("empty required field should refuse to release")
	}
	if !errors.Is(m.Focused().Err(), ErrRequired) {
		t.Errorf("Err() = %v, want ErrRequired", m.Focused().Err())
	}

	m, _ = press(t, m, typeText("Ada"))
	if m.Focused().Err() != nil {
		t.Error("editing should clear the field error")
	}
	m, _ = press(t, m, esc)
	if m.Focused() != nil {
		t.Fatal("esc should release focus")
	}

	// email is still empty
	m, cmd := press(t, m, enter)
	if m.Submitted() || isQuit(cmd) {
		t.Fatal("form with an empty required field must not submit")
	}
	if got := focusedName(m); got != "email" {
		t.Errorf("focused = %q, want email", got)
	}
}

func TestModel_ReleaseRefusedRecovers(t *testing.T) {
	spec := &config.FormSpec{
		Name:   "login",
		Scroll: true,
		Fields: []config.FieldSpec{
			{Name: "user"},
			{Name: "password", Required: true},
		},
	}
	m := New(spec, navigator.DefaultConfig())

	m, _ = press(t, m, enter, enter)
	if got := focusedName(m); got != "password" {
		t.Fatalf("focused = %q, want password kept after refused release", got)
	}
	stats := m.Navigator().Stats()
	if stats.Refusals != 1 {
		t.Errorf("Refusals = %d, want 1", stats.Refusals)
	}
	if !strings.Contains(m.status.warning, "required") {
		t.Errorf("warning = %q, want required message", m.status.warning)
	}
}

func TestModel_GroupsWithoutScrollList(t *testing.T) {
	spec := &config.FormSpec{
		Name: "split",
		Fields: []config.FieldSpec{
			{Name: "a", Group: "one"},
			{Name: "b", Group: "one"},
			{Name: "c", Group: "two"},
		},
	}
	m := New(spec, navigator.DefaultConfig())

	m, _ = press(t, m, enter)
	if got := focusedName(m); got != "b" {
		t.Fatalf("focused = %q, want b", got)
	}
	m, _ = press(t, m, enter)
	if m.Focused() != nil {
		t.Fatalf("last sibling should release focus, got %q", focusedName(m))
	}

	m, _ = press(t, m, tab)
	if got := focusedName(m); got != "a" {
		t.Fatalf("tab after release focused = %q, want a", got)
	}
	m, _ = press(t, m, tab, tab)
	if got := focusedName(m); got != "c" {
		t.Errorf("tab across groups focused = %q, want c", got)
	}
	m, _ = press(t, m, shiftTab)
	if got := focusedName(m); got != "b" {
		t.Errorf("shift+tab across groups focused = %q, want b", got)
	}
}

func TestModel_OrderingBehaviours(t *testing.T) {
	fields := []config.FieldSpec{
		{Name: "bottom", Tag: 1, Row: 4},
		{Name: "top_right", Tag: 3, Row: 0, Column: 20},
		{Name: "top_left", Tag: 2, Row: 0},
	}

	tests := []struct {
		behaviour navigator.Behaviour
		want      []string
	}{
		{navigator.BySubviews, []string{"bottom", "top_right", "top_left"}},
		{navigator.ByTag, []string{"bottom", "top_left", "top_right"}},
		{navigator.ByPosition, []string{"top_left", "top_right", "bottom"}},
	}

	for _, tt := range tests {
		t.Run(tt.behaviour.String(), func(t *testing.T) {
			spec := &config.FormSpec{Name: "grid", Scroll: true, Fields: fields}
			m := New(spec, navigator.Config{Behaviour: tt.behaviour})

			var got []string
			for i := 0; i < len(tt.want); i++ {
				got = append(got, focusedName(m))
				m, _ = press(t, m, enter)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
			if m.Focused() != nil {
				t.Error("focus should be released after the last field")
			}
		})
	}
}

func TestModel_SkipsDisabledAndHidden(t *testing.T) {
	spec := &config.FormSpec{
		Name:   "skip",
		Scroll: true,
		Fields: []config.FieldSpec{
			{Name: "a"},
			{Name: "off", Disabled: true},
			{Name: "gone", Hidden: true},
			{Name: "b"},
		},
	}
	m := New(spec, navigator.DefaultConfig())

	m, _ = press(t, m, enter)
	if got := focusedName(m); got != "b" {
		t.Errorf("focused = %q, want b", got)
	}
	if strings.Contains(m.View(), "gone") {
		t.Error("hidden field should not render")
	}
}

func TestModel_ClearAndQuit(t *testing.T) {
	m := New(contactForm(t), navigator.DefaultConfig())

	m, _ = press(t, m, typeText("Ada"), ctrlU)
	if got := m.Focused().Value(); got != "" {
		t.Errorf("Value() after clear = %q, want empty", got)
	}
	if m.status.edits != 2 {
		t.Errorf("edits = %d, want 2", m.status.edits)
	}

	m, cmd := press(t, m, ctrlC)
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
	if m.Submitted() {
		t.Error("ctrl+c must not submit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModel_ViewShowsSubmitLabel(t *testing.T) {
	m := New(contactForm(t), navigator.DefaultConfig())
	m, _ = press(t, m, enter, enter, enter, enter)

	if got := focusedName(m); got != "notes" {
		t.Fatalf("focused = %q, want notes", got)
	}
	view := m.View()
	if !strings.Contains(view, "⏎ Return") {
		t.Errorf("View() should show the default caption on the last field:\n%s", view)
	}
	if !strings.Contains(view, "Contact Details") {
		t.Error("View() should render the form title")
	}
}

func TestModel_Scopes(t *testing.T) {
	spec := &config.FormSpec{
		Name: "split",
		Fields: []config.FieldSpec{
			{Name: "b", Group: "one", Tag: 2},
			{Name: "a", Group: "one", Tag: 1},
			{Name: "off", Group: "one", Disabled: true},
			{Name: "c", Group: "two"},
		},
	}
	m := New(spec, navigator.Config{Behaviour: navigator.ByTag})

	scopes := m.Scopes()
	if len(scopes) != 2 {
		t.Fatalf("len(Scopes()) = %d, want 2", len(scopes))
	}

	one := scopes[0]
	if one.Name != "one" || len(one.Fields) != 2 || one.Fields[0].Name() != "a" || one.Fields[1].Name() != "b" {
		t.Errorf("scope one = %+v", one)
	}
	if len(one.Skipped) != 1 || one.Skipped[0].Name() != "off" {
		t.Errorf("scope one skipped = %v", one.Skipped)
	}
	if scopes[1].Name != "two" || len(scopes[1].Fields) != 1 {
		t.Errorf("scope two = %+v", scopes[1])
	}

	scroll := New(contactForm(t), navigator.DefaultConfig()).Scopes()
	if len(scroll) != 1 || len(scroll[0].Fields) != 5 {
		t.Errorf("scrolling form should have one scope with every field, got %+v", scroll)
	}
}

func TestModel_PastedNewlineNotInsertedAfterRecovery(t *testing.T) {
	spec := &config.FormSpec{
		Name:   "message",
		Scroll: true,
		Fields: []config.FieldSpec{
			{Name: "subject"},
			{Name: "body", Multiline: true, Required: true},
		},
	}
	m := New(spec, navigator.DefaultConfig())

	m, _ = press(t, m, enter)
	if got := focusedName(m); got != "body" {
		t.Fatalf("focused = %q, want body", got)
	}

	m, _ = press(t, m, typeText("\n"))
	if got := focusedName(m); got != "body" {
		t.Fatalf("focused = %q, want body kept after refused release", got)
	}
	if got := m.Focused().Value(); got != "" {
		t.Errorf("Value() = %q, newline should not be inserted", got)
	}
	if got := m.Navigator().Stats().Refusals; got != 1 {
		t.Errorf("Refusals = %d, want 1", got)
	}

	m, _ = press(t, m, typeText("hi"), typeText("\n"))
	if m.Focused() != nil {
		t.Fatalf("pasted newline should release a filled field, got %q", focusedName(m))
	}
	if values := m.Values(); values["body"] != "hi" {
		t.Errorf("body = %q, want hi", values["body"])
	}
}
