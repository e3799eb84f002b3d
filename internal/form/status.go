package form

import (
	"fmt"

	"github.com/muurk/formnav/internal/navigator"
)

// statusBoard is the external observer of every field. It keeps the text
// of the status line and the last navigation warning.
type statusBoard struct {
	message string
	warning string
	edits   int
}

var (
	_ navigator.DidBeginEditingHandler = (*statusBoard)(nil)
	_ navigator.DidEndEditingHandler   = (*statusBoard)(nil)
	_ navigator.DidChangeTextHandler   = (*statusBoard)(nil)
)

func (s *statusBoard) DidBeginEditing(c navigator.Control) {
	s.message = fmt.Sprintf("Editing %s", fieldLabel(c))
}

func (s *statusBoard) DidEndEditing(c navigator.Control) {
	s.message = fmt.Sprintf("Left %s", fieldLabel(c))
}

func (s *statusBoard) DidChangeText(navigator.Control) {
	s.edits++
	s.warning = ""
}

// diagnose receives navigation diagnostics
func (s *statusBoard) diagnose(d navigator.Diagnostic) {
	switch d.Kind {
	case navigator.DiagnosticFocusRefused:
		s.warning = fmt.Sprintf("%s cannot take focus", fieldLabel(d.Refusing))
	case navigator.DiagnosticReleaseRefused:
		s.warning = fmt.Sprintf("%s cannot be left yet", fieldLabel(d.Refusing))
		if f, ok := d.Refusing.(Field); ok && f.Err() != nil {
			s.warning = f.Err().Error()
		}
	default:
		s.warning = d.Err.Error()
	}
}

func fieldLabel(c navigator.Control) string {
	if f, ok := c.(Field); ok {
		return f.Label()
	}
	return fmt.Sprintf("control %d", c.Tag())
}
