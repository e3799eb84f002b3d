package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/formnav/internal/config"
	"github.com/muurk/formnav/internal/logging"
	"github.com/muurk/formnav/internal/navigator"
	"github.com/muurk/formnav/internal/ui"
	"github.com/muurk/formnav/internal/viewtree"
)

// keyMap defines the form's key bindings
type keyMap struct {
	Submit   key.Binding
	Next     key.Binding
	Previous key.Binding
	Clear    key.Binding
	Release  key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Previous, k.Release, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Next, k.Previous},
		{k.Clear, k.Release, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "return"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		Release: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Model is the bubbletea model hosting one form.
type Model struct {
	spec   *config.FormSpec
	tree   *viewtree.Tree
	nav    *navigator.Navigator
	ring   *focusRing
	groups []*group
	fields []Field
	status *statusBoard
	log    *zap.Logger

	keys keyMap
	help help.Model

	// UI state
	Width     int
	Height    int
	submitted bool
	quitting  bool
}

// New builds the view tree for spec, registers every field with a
// navigator configured by cfg and focuses the first field.
func New(spec *config.FormSpec, cfg navigator.Config) Model {
	ring := &focusRing{}
	tree, groups, fields := layout(spec, ring)
	status := &statusBoard{}

	log := logging.GetLogger().Named("form")
	nav := navigator.New(tree.Walker(),
		navigator.WithConfig(cfg),
		navigator.WithObserver(status),
		navigator.WithLogger(logging.GetLogger()),
		navigator.WithDiagnostics(status.diagnose),
	)
	nav.RegisterAll(tree)

	logging.LogFormLoaded(spec.Name, len(fields), spec.Scroll)
	logging.LogNavigationSettings(cfg.Behaviour.String(), cfg.LastSubmitLabel.String())

	width, height := ui.GetTerminalSize()
	m := Model{
		spec:   spec,
		tree:   tree,
		nav:    nav,
		ring:   ring,
		groups: groups,
		fields: fields,
		status: status,
		log:    log,
		keys:   newKeyMap(),
		help:   help.New(),
		Width:  width,
		Height: height,
	}
	if first := m.first(); first != nil {
		first.RequestFocus()
	}
	return m
}

// Init returns the focus commands queued while building the form.
func (m Model) Init() tea.Cmd {
	return m.ring.drain()
}

// Navigator exposes the form's navigator
func (m Model) Navigator() *navigator.Navigator {
	return m.nav
}

// Focused returns the focused field, or nil when focus has been released.
func (m Model) Focused() Field {
	return m.ring.current
}

// Field returns the named field
func (m Model) Field(name string) (Field, bool) {
	for _, f := range m.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Fields returns every field in definition order
func (m Model) Fields() []Field {
	return m.fields
}

// Values returns the current value of every field keyed by name.
func (m Model) Values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		values[f.Name()] = f.Value()
	}
	return values
}

// Submitted reports whether the user confirmed the completed form.
func (m Model) Submitted() bool {
	return m.submitted
}

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		if f := m.ring.current; f != nil {
			cmd := m.handleFieldKey(f, msg)
			return m, tea.Batch(cmd, m.ring.drain())
		}
		return m.handleReleasedKey(msg)
	}

	// Blink and other component messages go to the focused field
	if f := m.ring.current; f != nil {
		return m, f.update(msg)
	}
	return m, nil
}

// handleFieldKey routes a key press through the focused field's observer.
func (m *Model) handleFieldKey(f Field, msg tea.KeyMsg) tea.Cmd {
	obs := f.Observer()

	switch {
	case key.Matches(msg, m.keys.Submit):
		if f.Kind() == navigator.MultiLine {
			// A managed multi-line field treats the newline as a submit.
			r := navigator.TextRange{Start: f.Cursor()}
			if navigator.AskShouldChangeText(obs, f, r, "\n") && !m.nav.IsRegistered(f) {
				return m.edit(f, msg)
			}
			return nil
		}
		navigator.AskShouldReturn(obs, f)
		return nil

	case key.Matches(msg, m.keys.Next):
		if m.nav.CanGoNext(f) {
			m.nav.GoNext(f)
		} else {
			m.jump(f, 1)
		}
		return nil

	case key.Matches(msg, m.keys.Previous):
		if m.nav.CanGoPrevious(f) {
			m.nav.GoPrevious(f)
		} else {
			m.jump(f, -1)
		}
		return nil

	case key.Matches(msg, m.keys.Clear):
		if f.Value() != "" && navigator.AskShouldClear(obs, f) {
			f.SetValue("")
			navigator.NotifyDidChangeText(obs, f)
		}
		return nil

	case key.Matches(msg, m.keys.Release):
		f.ReleaseFocus()
		return nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		r := navigator.TextRange{Start: f.Cursor()}
		if !navigator.AskShouldChangeText(obs, f, r, text) {
			return nil
		}
		// A managed multi-line field never takes a newline as text.
		if text == "\n" && f.Kind() == navigator.MultiLine && m.nav.IsRegistered(f) {
			return nil
		}
	}
	return m.edit(f, msg)
}

// edit applies msg to f and reports what changed.
func (m *Model) edit(f Field, msg tea.Msg) tea.Cmd {
	value, cursor := f.Value(), f.Cursor()
	cmd := f.update(msg)
	switch {
	case f.Value() != value:
		f.setErr(nil)
		navigator.NotifyDidChangeText(f.Observer(), f)
	case f.Cursor() != cursor:
		navigator.NotifyDidChangeSelection(f.Observer(), f)
	}
	return cmd
}

// jump moves focus across group boundaries in depth-first tree order when
// the navigation order has no further control in that direction.
func (m *Model) jump(f Field, delta int) {
	all := m.tree.Walker().DescendantsFocusable(m.tree)
	for i, c := range all {
		if c != f {
			continue
		}
		j := i + delta
		if j >= 0 && j < len(all) {
			all[j].RequestFocus()
		}
		return
	}
}

// handleReleasedKey handles keys while no field holds focus.
func (m Model) handleReleasedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if invalid := m.firstInvalid(); invalid != nil {
			invalid.RequestFocus()
			return m, m.ring.drain()
		}
		m.submitted = true
		m.log.Info("Form submitted", zap.String("form", m.spec.Name))
		return m.quit()

	case key.Matches(msg, m.keys.Next):
		if f := m.first(); f != nil {
			f.RequestFocus()
		}
		return m, m.ring.drain()

	case key.Matches(msg, m.keys.Previous):
		all := m.tree.Walker().DescendantsFocusable(m.tree)
		if len(all) > 0 {
			all[len(all)-1].RequestFocus()
		}
		return m, m.ring.drain()

	case key.Matches(msg, m.keys.Release), msg.String() == "q":
		return m.quit()
	}
	return m, nil
}

// first returns the first control of the first focusable field's order.
func (m Model) first() Field {
	all := m.tree.Walker().DescendantsFocusable(m.tree)
	if len(all) == 0 {
		return nil
	}
	order := m.nav.Order(all[0])
	if len(order) == 0 {
		return nil
	}
	f, _ := order[0].(Field)
	return f
}

// firstInvalid returns the first visible field failing validation and
// records the error on it.
func (m Model) firstInvalid() Field {
	for _, c := range m.tree.Walker().DescendantsFocusable(m.tree) {
		f, ok := c.(Field)
		if !ok {
			continue
		}
		if err := f.validate(f.Value()); err != nil {
			f.setErr(err)
			m.status.warning = err.Error()
			return f
		}
	}
	return nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	stats := m.nav.Stats()
	logging.LogNavigationStats(int64(m.nav.Len()), stats.Advances, stats.Releases, stats.Refusals)
	m.nav.Close()
	return m, tea.Quit
}

// View renders the form
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := m.spec.Title
	if title == "" {
		title = m.spec.Name
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")

	for _, g := range m.groups {
		if g.node.Hidden {
			continue
		}
		b.WriteString(GroupStyle.Render(g.name))
		b.WriteString("\n")
		for _, f := range g.fields {
			if f.Node().Hidden {
				continue
			}
			b.WriteString(m.renderField(f))
			b.WriteString("\n")
		}
	}

	if m.ring.current == nil {
		b.WriteString("\n")
		if m.hasInvalid() {
			b.WriteString(WarningStyle.Render("Some required fields are empty. Press enter to fix them."))
		} else {
			b.WriteString(SuccessStyle.Render("✓ Form complete. Press enter to submit."))
		}
		b.WriteString("\n")
	}

	if m.status.warning != "" {
		b.WriteString(WarningStyle.Render("⚠ " + m.status.warning))
	} else {
		b.WriteString(StatusStyle.Render(m.status.message))
	}

	return RenderApplicationContainer(b.String(), m.help.View(m.keys), m.Width, m.Height)
}

func (m Model) renderField(f Field) string {
	labelStyle := LabelStyle
	switch {
	case !f.Enabled():
		labelStyle = DisabledLabelStyle
	case f.Focused():
		labelStyle = FocusedLabelStyle
	}

	label := f.Label()
	if f.required() {
		label += "*"
	}

	line := labelStyle.Render(label) + f.View()
	if f.Focused() {
		line += SubmitLabelStyle.Render(fmt.Sprintf("⏎ %s", f.SubmitLabel().Caption()))
	}
	if err := f.Err(); err != nil {
		line += "\n" + FieldErrorStyle.Render(err.Error())
	}
	return line
}

// hasInvalid reports whether any visible field fails validation.
func (m Model) hasInvalid() bool {
	for _, c := range m.tree.Walker().DescendantsFocusable(m.tree) {
		if f, ok := c.(Field); ok && f.validate(f.Value()) != nil {
			return true
		}
	}
	return false
}
