package navigator

// Observer receives a control's editing events. It may implement any
// subset of the *Handler interfaces below; events it does not handle get
// a neutral default (queries allow, notifications are dropped).
type Observer any

// ShouldBeginEditingHandler decides whether a control may start editing.
type ShouldBeginEditingHandler interface {
	ShouldBeginEditing(c Control) bool
}

// DidBeginEditingHandler is notified after a control started editing.
type DidBeginEditingHandler interface {
	DidBeginEditing(c Control)
}

// ShouldEndEditingHandler decides whether a control may stop editing.
type ShouldEndEditingHandler interface {
	ShouldEndEditing(c Control) bool
}

// DidEndEditingHandler is notified after a control stopped editing.
type DidEndEditingHandler interface {
	DidEndEditing(c Control)
}

// ShouldChangeTextHandler decides whether text may replace the given range.
type ShouldChangeTextHandler interface {
	ShouldChangeText(c Control, r TextRange, text string) bool
}

// DidChangeTextHandler is notified after a control's text changed.
type DidChangeTextHandler interface {
	DidChangeText(c Control)
}

// DidChangeSelectionHandler is notified after the selection moved.
type DidChangeSelectionHandler interface {
	DidChangeSelection(c Control)
}

// ShouldClearHandler decides whether a control's content may be cleared.
type ShouldClearHandler interface {
	ShouldClear(c Control) bool
}

// ShouldReturnHandler decides whether a single-line control's submit key
// press is honoured.
type ShouldReturnHandler interface {
	ShouldReturn(c Control) bool
}

// ShouldInteractWithURLHandler decides whether a link inside the content
// may be opened.
type ShouldInteractWithURLHandler interface {
	ShouldInteractWithURL(c Control, url string, r TextRange) bool
}

// ShouldInteractWithAttachmentHandler decides whether an attachment inside
// the content may be opened.
type ShouldInteractWithAttachmentHandler interface {
	ShouldInteractWithAttachment(c Control, attachment string, r TextRange) bool
}

// AskShouldBeginEditing queries o, defaulting to true.
func AskShouldBeginEditing(o Observer, c Control) bool {
	if h, ok := o.(ShouldBeginEditingHandler); ok {
		return h.ShouldBeginEditing(c)
	}
	return true
}

// NotifyDidBeginEditing notifies o if it handles the event.
func NotifyDidBeginEditing(o Observer, c Control) {
	if h, ok := o.(DidBeginEditingHandler); ok {
		h.DidBeginEditing(c)
	}
}

// AskShouldEndEditing queries o, defaulting to true.
func AskShouldEndEditing(o Observer, c Control) bool {
	if h, ok := o.(ShouldEndEditingHandler); ok {
		return h.ShouldEndEditing(c)
	}
	return true
}

// NotifyDidEndEditing notifies o if it handles the event.
func NotifyDidEndEditing(o Observer, c Control) {
	if h, ok := o.(DidEndEditingHandler); ok {
		h.DidEndEditing(c)
	}
}

// AskShouldChangeText queries o, defaulting to true.
func AskShouldChangeText(o Observer, c Control, r TextRange, text string) bool {
	if h, ok := o.(ShouldChangeTextHandler); ok {
		return h.ShouldChangeText(c, r, text)
	}
	return true
}

// NotifyDidChangeText notifies o if it handles the event.
func NotifyDidChangeText(o Observer, c Control) {
	if h, ok := o.(DidChangeTextHandler); ok {
		h.DidChangeText(c)
	}
}

// NotifyDidChangeSelection notifies o if it handles the event.
func NotifyDidChangeSelection(o Observer, c Control) {
	if h, ok := o.(DidChangeSelectionHandler); ok {
		h.DidChangeSelection(c)
	}
}

// AskShouldClear queries o, defaulting to true.
func AskShouldClear(o Observer, c Control) bool {
	if h, ok := o.(ShouldClearHandler); ok {
		return h.ShouldClear(c)
	}
	return true
}

// AskShouldReturn queries o, defaulting to true.
func AskShouldReturn(o Observer, c Control) bool {
	if h, ok := o.(ShouldReturnHandler); ok {
		return h.ShouldReturn(c)
	}
	return true
}

// AskShouldInteractWithURL queries o, defaulting to true.
func AskShouldInteractWithURL(o Observer, c Control, url string, r TextRange) bool {
	if h, ok := o.(ShouldInteractWithURLHandler); ok {
		return h.ShouldInteractWithURL(c, url, r)
	}
	return true
}

// AskShouldInteractWithAttachment queries o, defaulting to true.
func AskShouldInteractWithAttachment(o Observer, c Control, attachment string, r TextRange) bool {
	if h, ok := o.(ShouldInteractWithAttachmentHandler); ok {
		return h.ShouldInteractWithAttachment(c, attachment, r)
	}
	return true
}
