package config

import (
	"errors"
	"fmt"

	"github.com/muurk/formnav/internal/navigator"
)

// CurrentVersion is the only supported configuration document version
const CurrentVersion = 1

// ErrInvalidConfig is wrapped by every validation error
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrFormNotFound is returned by Document.Form for an unknown form name
var ErrFormNotFound = errors.New("form not found")

// Document represents the entire configuration file.
type Document struct {
	Version     int              `yaml:"version" toml:"version"`
	Navigation  navigator.Config `yaml:"navigation" toml:"navigation"`
	DefaultForm string           `yaml:"default_form,omitempty" toml:"default_form,omitempty"`
	Forms       []FormSpec       `yaml:"forms" toml:"forms"`
}

// FormSpec describes one form: a set of fields arranged in groups.
type FormSpec struct {
	Name   string      `yaml:"name" toml:"name"`
	Title  string      `yaml:"title,omitempty" toml:"title,omitempty"`
	Scroll bool        `yaml:"scroll" toml:"scroll"` // Place all groups inside one scrollable list
	Fields []FieldSpec `yaml:"fields" toml:"fields"`
}

// FieldSpec describes a single text field.
type FieldSpec struct {
	Name        string `yaml:"name" toml:"name"`
	Label       string `yaml:"label,omitempty" toml:"label,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty" toml:"placeholder,omitempty"`
	Tag         int    `yaml:"tag,omitempty" toml:"tag,omitempty"`
	Multiline   bool   `yaml:"multiline,omitempty" toml:"multiline,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Hidden      bool   `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
	Required    bool   `yaml:"required,omitempty" toml:"required,omitempty"`
	Row         int    `yaml:"row,omitempty" toml:"row,omitempty"`       // Screen row within the group
	Column      int    `yaml:"column,omitempty" toml:"column,omitempty"` // Screen column within the group
	CharLimit   int    `yaml:"char_limit,omitempty" toml:"char_limit,omitempty"`
	Group       string `yaml:"group,omitempty" toml:"group,omitempty"` // Fields sharing a group are siblings
}

// DisplayLabel returns the label, falling back to the field name
func (f FieldSpec) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// NewDocument creates a Document with default navigation settings and no forms.
func NewDocument() *Document {
	return &Document{
		Version:    CurrentVersion,
		Navigation: navigator.DefaultConfig(),
	}
}

// DefaultDocument returns the built-in document with an example contact form.
func DefaultDocument() *Document {
	doc := NewDocument()
	doc.DefaultForm = "contact"
	doc.Forms = []FormSpec{
		{
			Name:   "contact",
			Title:  "Contact Details",
			Scroll: true,
			Fields: []FieldSpec{
				{Name: "first_name", Label: "First name", Tag: 10, Group: "name", Row: 0, Column: 0, Required: true, CharLimit: 64},
				{Name: "last_name", Label: "Last name", Tag: 20, Group: "name", Row: 0, Column: 30, CharLimit: 64},
				{Name: "email", Label: "Email", Placeholder: "you@example.com", Tag: 30, Group: "reach", Row: 0, Required: true, CharLimit: 254},
				{Name: "phone", Label: "Phone", Placeholder: "+44 7700 900000", Tag: 40, Group: "reach", Row: 2, CharLimit: 20},
				{Name: "notes", Label: "Notes", Tag: 50, Group: "extra", Multiline: true},
			},
		},
	}
	return doc
}

// Form returns the named form. An empty name selects DefaultForm, or the
// first form when no default is set.
func (d *Document) Form(name string) (*FormSpec, error) {
	if name == "" {
		name = d.DefaultForm
	}
	if name == "" && len(d.Forms) > 0 {
		return &d.Forms[0], nil
	}
	for i := range d.Forms {
		if d.Forms[i].Name == name {
			return &d.Forms[i], nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrFormNotFound)
}

// Validate checks the document for structural errors.
func (d *Document) Validate() error {
	if d.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d): %w", d.Version, CurrentVersion, ErrInvalidConfig)
	}
	if _, err := d.Navigation.Behaviour.MarshalText(); err != nil {
		return fmt.Errorf("navigation: %w: %w", err, ErrInvalidConfig)
	}
	if _, err := d.Navigation.LastSubmitLabel.MarshalText(); err != nil {
		return fmt.Errorf("navigation: %w: %w", err, ErrInvalidConfig)
	}
	if len(d.Forms) == 0 {
		return fmt.Errorf("no forms defined: %w", ErrInvalidConfig)
	}

	forms := make(map[string]bool)
	for _, form := range d.Forms {
		if form.Name == "" {
			return fmt.Errorf("form without a name: %w", ErrInvalidConfig)
		}
		if forms[form.Name] {
			return fmt.Errorf("duplicate form %q: %w", form.Name, ErrInvalidConfig)
		}
		forms[form.Name] = true

		if err := form.validate(); err != nil {
			return err
		}
	}

	if d.DefaultForm != "" && !forms[d.DefaultForm] {
		return fmt.Errorf("default form %q is not defined: %w", d.DefaultForm, ErrInvalidConfig)
	}
	return nil
}

func (f FormSpec) validate() error {
	if len(f.Fields) == 0 {
		return fmt.Errorf("form %q has no fields: %w", f.Name, ErrInvalidConfig)
	}
	fields := make(map[string]bool)
	for _, field := range f.Fields {
		if field.Name == "" {
			return fmt.Errorf("form %q: field without a name: %w", f.Name, ErrInvalidConfig)
		}
		if fields[field.Name] {
			return fmt.Errorf("form %q: duplicate field %q: %w", f.Name, field.Name, ErrInvalidConfig)
		}
		fields[field.Name] = true
		if field.CharLimit < 0 {
			return fmt.Errorf("form %q: field %q: negative char_limit: %w", f.Name, field.Name, ErrInvalidConfig)
		}
	}
	return nil
}
