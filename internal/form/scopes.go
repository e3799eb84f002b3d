package form

import (
	"github.com/muurk/formnav/internal/navigator"
	"github.com/muurk/formnav/internal/viewtree"
)

// Scope is one navigation scope of a form with its fields in navigation
// order. Skipped holds the scope's fields that cannot take focus.
type Scope struct {
	Name    string
	Fields  []Field
	Skipped []Field
}

// Scopes returns the navigation scopes of the form: a single scope for a
// scrolling form, one per group otherwise.
func (m Model) Scopes() []Scope {
	walker := m.tree.Walker()

	var scopes []Scope
	if m.spec.Scroll {
		scopes = append(scopes, m.scope(m.spec.Name, walker.DescendantsFocusable(m.tree), members(m.tree.Root())))
		return scopes
	}
	for _, g := range m.groups {
		scopes = append(scopes, m.scope(g.name, walker.DescendantsFocusable(g.node), members(g.node)))
	}
	return scopes
}

func (m Model) scope(name string, focusable []navigator.Control, members []Field) Scope {
	s := Scope{Name: name}
	if len(focusable) > 0 {
		for _, c := range m.nav.Order(focusable[0]) {
			if f, ok := c.(Field); ok {
				s.Fields = append(s.Fields, f)
			}
		}
	}

	in := make(map[Field]bool, len(s.Fields))
	for _, f := range s.Fields {
		in[f] = true
	}
	for _, f := range members {
		if !in[f] {
			s.Skipped = append(s.Skipped, f)
		}
	}
	return s
}

// members returns the fields below n in tree order.
func members(n *viewtree.Node) []Field {
	var out []Field
	for _, child := range n.Children() {
		if f, ok := child.Control().(Field); ok {
			out = append(out, f)
			continue
		}
		out = append(out, members(child)...)
	}
	return out
}
