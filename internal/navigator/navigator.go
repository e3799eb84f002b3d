package navigator

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/muurk/formnav/internal/logging"
)

// Config holds the navigator's ordering policy and terminal label.
type Config struct {
	// Behaviour selects how the navigation order is sorted.
	Behaviour Behaviour `yaml:"behaviour" toml:"behaviour"`
	// LastSubmitLabel is applied to the last control of an order.
	LastSubmitLabel SubmitLabel `yaml:"last_submit_label" toml:"last_submit_label"`
}

// DefaultConfig returns the default configuration: traversal order and
// the platform default label on the last control.
func DefaultConfig() Config {
	return Config{
		Behaviour:       BySubviews,
		LastSubmitLabel: LabelDefault,
	}
}

// record is the saved state of a managed control, captured at registration.
type record struct {
	control  Control
	observer Observer
	label    SubmitLabel
}

// Stats counts navigation outcomes since the navigator was created.
type Stats struct {
	Advances  int64
	Releases  int64
	Refusals  int64
	Registers int64
}

// Navigator manages return-key navigation across registered controls.
//
// A Navigator is not safe for concurrent use. All calls, including the
// observer callbacks it receives from controls, must happen on the same
// goroutine (the UI event loop).
type Navigator struct {
	walker   TreeWalker
	config   Config
	external Observer
	records  map[Control]*record
	log      *zap.Logger
	onDiag   func(Diagnostic)

	advances  atomic.Int64
	releases  atomic.Int64
	refusals  atomic.Int64
	registers atomic.Int64
}

// Option configures a Navigator
type Option func(*Navigator)

// WithConfig sets the ordering policy and terminal label.
func WithConfig(cfg Config) Option {
	return func(n *Navigator) {
		n.config = cfg
	}
}

// WithObserver sets the external observer events are forwarded to.
func WithObserver(o Observer) Option {
	return func(n *Navigator) {
		n.external = o
	}
}

// WithLogger sets the logger. Defaults to logging.GetLogger().
func WithLogger(l *zap.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.log = l
		}
	}
}

// WithDiagnostics installs a hook called for every refused focus transfer.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(n *Navigator) {
		n.onDiag = fn
	}
}

// New creates a Navigator that discovers controls through walker.
func New(walker TreeWalker, opts ...Option) *Navigator {
	n := &Navigator{
		walker:  walker,
		config:  DefaultConfig(),
		records: make(map[Control]*record),
		log:     logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.log = n.log.Named("navigator")
	return n
}

// Config returns the active configuration
func (n *Navigator) Config() Config {
	return n.config
}

// SetBehaviour changes the ordering policy. Takes effect on the next event.
func (n *Navigator) SetBehaviour(b Behaviour) {
	n.config.Behaviour = b
}

// SetLastSubmitLabel changes the label applied to the last control.
func (n *Navigator) SetLastSubmitLabel(l SubmitLabel) {
	n.config.LastSubmitLabel = l
}

// SetObserver sets the external observer. It can only be set once.
func (n *Navigator) SetObserver(o Observer) error {
	if n.external != nil {
		return ErrObserverAlreadySet
	}
	n.external = o
	return nil
}

// Register starts managing view if it is a Control. It snapshots the
// control's submit label and observer, then installs the navigator as the
// observer. Registering an already managed control keeps the first snapshot.
// Returns false when view is not a Control.
func (n *Navigator) Register(view any) bool {
	c, ok := view.(Control)
	if !ok || c == nil {
		n.log.Debug("Ignoring non-control view")
		return false
	}

	if _, exists := n.records[c]; exists {
		return true
	}

	n.records[c] = &record{
		control:  c,
		observer: c.Observer(),
		label:    c.SubmitLabel(),
	}
	c.SetObserver(n)
	n.registers.Inc()

	n.log.Debug("Control registered",
		zap.Int("tag", c.Tag()),
		zap.Stringer("kind", c.Kind()),
		zap.Stringer("saved_label", c.SubmitLabel()),
	)
	return true
}

// Unregister stops managing view and restores its saved label and observer.
func (n *Navigator) Unregister(view any) {
	c, ok := view.(Control)
	if !ok || c == nil {
		return
	}
	rec, exists := n.records[c]
	if !exists {
		return
	}
	n.restore(rec)
	delete(n.records, c)
}

// RegisterAll registers every focusable descendant of root.
func (n *Navigator) RegisterAll(root any) {
	for _, c := range n.walker.DescendantsFocusable(root) {
		n.Register(c)
	}
}

// UnregisterAll unregisters every focusable descendant of root.
func (n *Navigator) UnregisterAll(root any) {
	for _, c := range n.walker.DescendantsFocusable(root) {
		n.Unregister(c)
	}
}

// IsRegistered reports whether c is managed
func (n *Navigator) IsRegistered(c Control) bool {
	_, ok := n.records[c]
	return ok
}

// Len returns the number of managed controls
func (n *Navigator) Len() int {
	return len(n.records)
}

// Sweep restores and drops every record whose control is no longer
// attached to a view tree. Returns the number of records dropped.
func (n *Navigator) Sweep() int {
	dropped := 0
	for c, rec := range n.records {
		if n.walker.Attached(c) {
			continue
		}
		n.restore(rec)
		delete(n.records, c)
		dropped++
	}
	if dropped > 0 {
		n.log.Debug("Swept detached controls", zap.Int("count", dropped))
	}
	return dropped
}

// Close restores every managed control and clears the registry.
func (n *Navigator) Close() {
	for c, rec := range n.records {
		n.restore(rec)
		delete(n.records, c)
	}
}

// Stats returns a snapshot of the outcome counters. Safe to call from
// any goroutine.
func (n *Navigator) Stats() Stats {
	return Stats{
		Advances:  n.advances.Load(),
		Releases:  n.releases.Load(),
		Refusals:  n.refusals.Load(),
		Registers: n.registers.Load(),
	}
}

func (n *Navigator) restore(rec *record) {
	rec.control.SetSubmitLabel(rec.label)
	rec.control.SetObserver(rec.observer)
}
