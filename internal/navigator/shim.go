package navigator

// The Navigator is installed as the observer of every managed control.
// Each handler forwards to the external observer and adds navigation
// behaviour only where noted.

var (
	_ ShouldBeginEditingHandler           = (*Navigator)(nil)
	_ DidBeginEditingHandler              = (*Navigator)(nil)
	_ ShouldEndEditingHandler             = (*Navigator)(nil)
	_ DidEndEditingHandler                = (*Navigator)(nil)
	_ ShouldChangeTextHandler             = (*Navigator)(nil)
	_ DidChangeTextHandler                = (*Navigator)(nil)
	_ DidChangeSelectionHandler           = (*Navigator)(nil)
	_ ShouldClearHandler                  = (*Navigator)(nil)
	_ ShouldReturnHandler                 = (*Navigator)(nil)
	_ ShouldInteractWithURLHandler        = (*Navigator)(nil)
	_ ShouldInteractWithAttachmentHandler = (*Navigator)(nil)
)

// ShouldBeginEditing forwards the query. It has no side effects.
func (n *Navigator) ShouldBeginEditing(c Control) bool {
	return AskShouldBeginEditing(n.external, c)
}

// DidBeginEditing refreshes c's submit label, then forwards.
func (n *Navigator) DidBeginEditing(c Control) {
	n.RefreshSubmitLabel(c)
	NotifyDidBeginEditing(n.external, c)
}

func (n *Navigator) ShouldEndEditing(c Control) bool {
	return AskShouldEndEditing(n.external, c)
}

func (n *Navigator) DidEndEditing(c Control) {
	NotifyDidEndEditing(n.external, c)
}

// ShouldChangeText forwards the query. For a multi-line control, an allowed
// insertion of exactly one newline is treated as a submit.
func (n *Navigator) ShouldChangeText(c Control, r TextRange, text string) bool {
	should := AskShouldChangeText(n.external, c, r, text)
	if should && text == "\n" && c.Kind() == MultiLine {
		n.AdvanceOrRelease(c)
	}
	return should
}

func (n *Navigator) DidChangeText(c Control) {
	NotifyDidChangeText(n.external, c)
}

func (n *Navigator) DidChangeSelection(c Control) {
	NotifyDidChangeSelection(n.external, c)
}

func (n *Navigator) ShouldClear(c Control) bool {
	return AskShouldClear(n.external, c)
}

// ShouldReturn forwards the query and, when allowed, advances or releases
// focus. The returned value is the forwarded answer regardless of the
// navigation outcome.
func (n *Navigator) ShouldReturn(c Control) bool {
	should := AskShouldReturn(n.external, c)
	if should {
		n.AdvanceOrRelease(c)
	}
	return should
}

func (n *Navigator) ShouldInteractWithURL(c Control, url string, r TextRange) bool {
	return AskShouldInteractWithURL(n.external, c, url, r)
}

func (n *Navigator) ShouldInteractWithAttachment(c Control, attachment string, r TextRange) bool {
	return AskShouldInteractWithAttachment(n.external, c, attachment, r)
}
