package navigator

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrUnknownValue is returned when a configuration name does not map
	// to a known Behaviour or SubmitLabel.
	ErrUnknownValue = errors.New("unknown value")

	// ErrFocusRefused indicates a control declined RequestFocus.
	ErrFocusRefused = errors.New("focus refused")

	// ErrReleaseRefused indicates a control declined ReleaseFocus.
	ErrReleaseRefused = errors.New("release refused")

	// ErrObserverAlreadySet is returned by SetObserver when the external
	// observer was already configured.
	ErrObserverAlreadySet = errors.New("external observer already set")
)

// FocusError describes a refused focus transfer.
// It never escapes the navigator as a failure; it is carried by Diagnostic.
type FocusError struct {
	Op      string  // "advance", "release", "next" or "previous"
	Control Control // control that declined
	Err     error   // ErrFocusRefused or ErrReleaseRefused
}

// Error implements the error interface
func (e *FocusError) Error() string {
	if e.Control == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: control tag %d: %v", e.Op, e.Control.Tag(), e.Err)
}

// Unwrap returns the underlying sentinel for errors.Is
func (e *FocusError) Unwrap() error {
	return e.Err
}

// DiagnosticKind categorises a non-fatal navigation signal
type DiagnosticKind int

const (
	// DiagnosticFocusRefused: the successor declined focus and the
	// originating control was re-focused.
	DiagnosticFocusRefused DiagnosticKind = iota
	// DiagnosticReleaseRefused: the last control declined to release focus.
	DiagnosticReleaseRefused
	// DiagnosticRecoveryFailed: the originating control also declined the
	// recovery request. Nothing more can be done locally.
	DiagnosticRecoveryFailed
)

// String returns a human-readable name for the diagnostic kind
func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticFocusRefused:
		return "focus_refused"
	case DiagnosticReleaseRefused:
		return "release_refused"
	case DiagnosticRecoveryFailed:
		return "recovery_failed"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is emitted whenever a focus transfer is refused.
type Diagnostic struct {
	Kind DiagnosticKind
	// Origin is the control whose submit event started the transfer.
	Origin Control
	// Refusing is the control that declined.
	Refusing Control
	Err      *FocusError
}
