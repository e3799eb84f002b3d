package navigator

// fakeScreen tracks which fake control holds focus.
type fakeScreen struct {
	focused *fakeControl
}

type fakeControl struct {
	name     string
	kind     ControlKind
	tag      int
	frame    Rect
	label    SubmitLabel
	observer Observer
	screen   *fakeScreen

	refuseFocus   bool
	refuseRelease bool
	focusRequests int
}

func (s *fakeScreen) control(name string, tag int) *fakeControl {
	return &fakeControl{name: name, tag: tag, screen: s}
}

func (c *fakeControl) Kind() ControlKind { return c.kind }

func (c *fakeControl) RequestFocus() bool {
	c.focusRequests++
	if c.refuseFocus {
		return false
	}
	if c.screen.focused == c {
		return true
	}
	if !AskShouldBeginEditing(c.observer, c) {
		return false
	}
	if prev := c.screen.focused; prev != nil {
		c.screen.focused = nil
		NotifyDidEndEditing(prev.observer, prev)
	}
	c.screen.focused = c
	NotifyDidBeginEditing(c.observer, c)
	return true
}

func (c *fakeControl) ReleaseFocus() bool {
	if c.refuseRelease {
		return false
	}
	if c.screen.focused != c {
		return true
	}
	if !AskShouldEndEditing(c.observer, c) {
		return false
	}
	c.screen.focused = nil
	NotifyDidEndEditing(c.observer, c)
	return true
}

func (c *fakeControl) SubmitLabel() SubmitLabel     { return c.label }
func (c *fakeControl) SetSubmitLabel(l SubmitLabel) { c.label = l }
func (c *fakeControl) Tag() int                     { return c.tag }
func (c *fakeControl) ScreenFrame() Rect            { return c.frame }
func (c *fakeControl) Observer() Observer           { return c.observer }
func (c *fakeControl) SetObserver(o Observer)       { c.observer = o }

// pressReturn simulates the submit key on a single-line control.
func (c *fakeControl) pressReturn() bool {
	return AskShouldReturn(c.observer, c)
}

// insert simulates typing text into the control.
func (c *fakeControl) insert(text string) bool {
	return AskShouldChangeText(c.observer, c, TextRange{}, text)
}

// fakeWalker serves fixed hierarchies keyed by opaque root values.
type fakeWalker struct {
	descendants map[any][]Control
	listOf      map[Control]any
	siblings    map[Control][]Control
	detached    map[Control]bool
}

func newFakeWalker() *fakeWalker {
	return &fakeWalker{
		descendants: make(map[any][]Control),
		listOf:      make(map[Control]any),
		siblings:    make(map[Control][]Control),
		detached:    make(map[Control]bool),
	}
}

// addList places controls, in traversal order, inside a scrollable list.
func (w *fakeWalker) addList(root string, controls ...*fakeControl) {
	list := make([]Control, len(controls))
	for i, c := range controls {
		list[i] = c
		w.listOf[c] = root
	}
	w.descendants[root] = list
}

// addSiblings places controls under a plain container.
func (w *fakeWalker) addSiblings(root string, controls ...*fakeControl) {
	list := make([]Control, len(controls))
	for i, c := range controls {
		list[i] = c
	}
	for _, c := range controls {
		w.siblings[c] = list
	}
	w.descendants[root] = list
}

func (w *fakeWalker) DescendantsFocusable(root any) []Control {
	return w.descendants[root]
}

func (w *fakeWalker) NearestScrollableList(c Control) (any, bool) {
	root, ok := w.listOf[c]
	return root, ok
}

func (w *fakeWalker) SiblingFocusable(c Control) []Control {
	return w.siblings[c]
}

func (w *fakeWalker) Attached(c Control) bool {
	return !w.detached[c]
}

// recordingObserver implements a subset of the handler interfaces.
type recordingObserver struct {
	allowBegin  bool
	allowReturn bool
	allowChange bool
	began       []Control
	ended       []Control
	returns     int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{allowBegin: true, allowReturn: true, allowChange: true}
}

func (o *recordingObserver) ShouldBeginEditing(c Control) bool { return o.allowBegin }
func (o *recordingObserver) DidBeginEditing(c Control)         { o.began = append(o.began, c) }
func (o *recordingObserver) DidEndEditing(c Control)           { o.ended = append(o.ended, c) }

func (o *recordingObserver) ShouldReturn(c Control) bool {
	o.returns++
	return o.allowReturn
}

func (o *recordingObserver) ShouldChangeText(c Control, r TextRange, text string) bool {
	return o.allowChange
}
