package navigator

import (
	"fmt"

	"go.uber.org/zap"
)

// Result describes what a navigation request did.
type Result int

const (
	// ResultIgnored: the control is unmanaged or not in its own order.
	ResultIgnored Result = iota
	// ResultAdvanced: focus moved to another control.
	ResultAdvanced
	// ResultReleased: the control gave up focus.
	ResultReleased
	// ResultRecovered: the transfer was refused and the originating
	// control was asked to take focus again.
	ResultRecovered
)

// String returns a human-readable name for the result
func (r Result) String() string {
	switch r {
	case ResultIgnored:
		return "ignored"
	case ResultAdvanced:
		return "advanced"
	case ResultReleased:
		return "released"
	case ResultRecovered:
		return "recovered"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// AdvanceOrRelease moves focus from c to its successor, or releases focus
// when c is the last control of its order. A refused transfer re-focuses c
// before returning, so some control always holds focus.
func (n *Navigator) AdvanceOrRelease(c Control) Result {
	if !n.IsRegistered(c) {
		n.log.Debug("Submit on unmanaged control", zap.Int("tag", c.Tag()))
		return ResultIgnored
	}

	order := n.Order(c)
	i := indexOf(order, c)
	if i < 0 {
		n.log.Debug("Control missing from navigation order", zap.Int("tag", c.Tag()))
		return ResultIgnored
	}

	if i < len(order)-1 {
		return n.moveTo(c, order[i+1], "advance")
	}

	if c.ReleaseFocus() {
		n.releases.Inc()
		n.log.Debug("Focus released", zap.Int("tag", c.Tag()))
		return ResultReleased
	}
	n.recoverFocus(c, c, "release", DiagnosticReleaseRefused, ErrReleaseRefused)
	return ResultRecovered
}

// CanGoNext reports whether c has a successor in its navigation order.
func (n *Navigator) CanGoNext(c Control) bool {
	order := n.Order(c)
	i := indexOf(order, c)
	return i >= 0 && i < len(order)-1
}

// CanGoPrevious reports whether c has a predecessor in its navigation order.
func (n *Navigator) CanGoPrevious(c Control) bool {
	return indexOf(n.Order(c), c) > 0
}

// GoNext moves focus to c's successor. Unlike AdvanceOrRelease it never
// releases focus. Returns true when focus moved.
func (n *Navigator) GoNext(c Control) bool {
	return n.step(c, 1, "next")
}

// GoPrevious moves focus to c's predecessor. Returns true when focus moved.
func (n *Navigator) GoPrevious(c Control) bool {
	return n.step(c, -1, "previous")
}

func (n *Navigator) step(c Control, delta int, op string) bool {
	if !n.IsRegistered(c) {
		return false
	}
	order := n.Order(c)
	i := indexOf(order, c)
	if i < 0 {
		return false
	}
	j := i + delta
	if j < 0 || j >= len(order) {
		return false
	}
	return n.moveTo(c, order[j], op) == ResultAdvanced
}

func (n *Navigator) moveTo(from, to Control, op string) Result {
	if to.RequestFocus() {
		n.advances.Inc()
		n.log.Debug("Focus moved",
			zap.String("op", op),
			zap.Int("from_tag", from.Tag()),
			zap.Int("to_tag", to.Tag()),
		)
		return ResultAdvanced
	}
	n.recoverFocus(from, to, op, DiagnosticFocusRefused, ErrFocusRefused)
	return ResultRecovered
}

// recoverFocus re-focuses origin after refusing declined a transfer and emits
// the matching diagnostic.
func (n *Navigator) recoverFocus(origin, refusing Control, op string, kind DiagnosticKind, sentinel error) {
	n.refusals.Inc()
	n.emit(Diagnostic{
		Kind:     kind,
		Origin:   origin,
		Refusing: refusing,
		Err:      &FocusError{Op: op, Control: refusing, Err: sentinel},
	})

	if origin.RequestFocus() {
		return
	}
	n.emit(Diagnostic{
		Kind:     DiagnosticRecoveryFailed,
		Origin:   origin,
		Refusing: origin,
		Err:      &FocusError{Op: op, Control: origin, Err: ErrFocusRefused},
	})
}

func (n *Navigator) emit(d Diagnostic) {
	n.log.Warn("Focus transfer refused",
		zap.Stringer("kind", d.Kind),
		zap.Int("origin_tag", d.Origin.Tag()),
		zap.Int("refusing_tag", d.Refusing.Tag()),
		zap.Error(d.Err),
	)
	if n.onDiag != nil {
		n.onDiag(d)
	}
}
