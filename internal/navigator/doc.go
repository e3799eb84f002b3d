// Package navigator manages return-key navigation across a chain of
// text-input controls.
//
// A Navigator discovers every focusable control below a root view,
// becomes each control's event observer, and decides on every submit
// event whether focus moves to the next control or is released.
//
// # Registration
//
// Registering a control snapshots its submit label and observer. The
// snapshot is restored when the control is unregistered, swept, or when
// the navigator is closed:
//
//	nav := navigator.New(tree.Walker(),
//	    navigator.WithConfig(navigator.Config{
//	        Behaviour:       navigator.ByTag,
//	        LastSubmitLabel: navigator.LabelDone,
//	    }),
//	    navigator.WithObserver(host),
//	)
//	nav.RegisterAll(tree.Root())
//	defer nav.Close()
//
// # Navigation Order
//
// The order is recomputed on every event. Its scope is the nearest
// scrollable list above the control, or the control's siblings when there
// is none. BySubviews keeps the walker's traversal order, ByTag and
// ByPosition sort it (stable).
//
// # Refusals
//
// Controls may decline RequestFocus or ReleaseFocus. The navigator then
// asks the originating control to take focus again before returning and
// reports a Diagnostic through the WithDiagnostics hook and a warning log.
//
// # Observers
//
// Observers are plain values implementing any subset of the *Handler
// interfaces. Use the Ask*/Notify* helpers to deliver events; they supply
// the neutral defaults for unhandled events.
//
// # Thread Safety
//
// A Navigator must be used from a single goroutine. Stats may be read
// from any goroutine.
package navigator
