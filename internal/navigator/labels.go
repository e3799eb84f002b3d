package navigator

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SubmitLabel is the kind of label shown on a control's submit key.
type SubmitLabel int

const (
	LabelDefault SubmitLabel = iota
	LabelGo
	LabelGoogle
	LabelJoin
	LabelNext
	LabelRoute
	LabelSearch
	LabelSend
	LabelYahoo
	LabelDone
	LabelEmergencyCall
	LabelContinue
)

var submitLabelNames = map[SubmitLabel]string{
	LabelDefault:       "default",
	LabelGo:            "go",
	LabelGoogle:        "google",
	LabelJoin:          "join",
	LabelNext:          "next",
	LabelRoute:         "route",
	LabelSearch:        "search",
	LabelSend:          "send",
	LabelYahoo:         "yahoo",
	LabelDone:          "done",
	LabelEmergencyCall: "emergency-call",
	LabelContinue:      "continue",
}

// String returns the configuration name of the label (e.g. "next")
func (l SubmitLabel) String() string {
	if name, ok := submitLabelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("SubmitLabel(%d)", int(l))
}

// Caption returns the text a host renders on the submit key.
// LabelDefault renders as "Return".
func (l SubmitLabel) Caption() string {
	name, ok := submitLabelNames[l]
	if !ok || l == LabelDefault {
		return "Return"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

// ParseSubmitLabel converts a configuration name into a SubmitLabel.
// Matching is case-insensitive; underscores are accepted in place of dashes.
func ParseSubmitLabel(s string) (SubmitLabel, error) {
	want := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for label, name := range submitLabelNames {
		if name == want {
			return label, nil
		}
	}
	return LabelDefault, fmt.Errorf("submit label %q: %w", s, ErrUnknownValue)
}

// MarshalText implements encoding.TextMarshaler
func (l SubmitLabel) MarshalText() ([]byte, error) {
	if _, ok := submitLabelNames[l]; !ok {
		return nil, fmt.Errorf("submit label %d: %w", int(l), ErrUnknownValue)
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *SubmitLabel) UnmarshalText(text []byte) error {
	parsed, err := ParseSubmitLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Behaviour selects how the navigation order is sorted.
type Behaviour int

const (
	// BySubviews keeps the traversal order reported by the tree walker.
	BySubviews Behaviour = iota
	// ByTag sorts ascending by Control.Tag.
	ByTag
	// ByPosition sorts top-to-bottom, then left-to-right.
	ByPosition
)

// String returns the configuration name of the behaviour
func (b Behaviour) String() string {
	switch b {
	case BySubviews:
		return "subviews"
	case ByTag:
		return "tag"
	case ByPosition:
		return "position"
	default:
		return fmt.Sprintf("Behaviour(%d)", int(b))
	}
}

// ParseBehaviour converts a configuration name into a Behaviour.
func ParseBehaviour(s string) (Behaviour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subviews", "by-subviews", "":
		return BySubviews, nil
	case "tag", "by-tag":
		return ByTag, nil
	case "position", "by-position":
		return ByPosition, nil
	default:
		return BySubviews, fmt.Errorf("behaviour %q: %w", s, ErrUnknownValue)
	}
}

// MarshalText implements encoding.TextMarshaler
func (b Behaviour) MarshalText() ([]byte, error) {
	if b < BySubviews || b > ByPosition {
		return nil, fmt.Errorf("behaviour %d: %w", int(b), ErrUnknownValue)
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *Behaviour) UnmarshalText(text []byte) error {
	parsed, err := ParseBehaviour(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
