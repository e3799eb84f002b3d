package navigator

import "testing"

type allowNothing struct{}

func (allowNothing) ShouldBeginEditing(Control) bool                              { return false }
func (allowNothing) ShouldEndEditing(Control) bool                                { return false }
func (allowNothing) ShouldChangeText(Control, TextRange, string) bool             { return false }
func (allowNothing) ShouldClear(Control) bool                                     { return false }
func (allowNothing) ShouldReturn(Control) bool                                    { return false }
func (allowNothing) ShouldInteractWithURL(Control, string, TextRange) bool        { return false }
func (allowNothing) ShouldInteractWithAttachment(Control, string, TextRange) bool { return false }

type countingNotifications struct {
	textChanges      int
	selectionChanges int
}

func (n *countingNotifications) DidChangeText(Control)      { n.textChanges++ }
func (n *countingNotifications) DidChangeSelection(Control) { n.selectionChanges++ }

func TestAskHelpers_Defaults(t *testing.T) {
	c := (&fakeScreen{}).control("c", 1)

	for _, o := range []Observer{nil, struct{}{}} {
		if !AskShouldBeginEditing(o, c) ||
			!AskShouldEndEditing(o, c) ||
			!AskShouldChangeText(o, c, TextRange{}, "x") ||
			!AskShouldClear(o, c) ||
			!AskShouldReturn(o, c) ||
			!AskShouldInteractWithURL(o, c, "u", TextRange{}) ||
			!AskShouldInteractWithAttachment(o, c, "a", TextRange{}) {
			t.Errorf("queries on %T should default to true", o)
		}

		// Notifications on observers without handlers are dropped.
		NotifyDidBeginEditing(o, c)
		NotifyDidEndEditing(o, c)
		NotifyDidChangeText(o, c)
		NotifyDidChangeSelection(o, c)
	}
}

func TestAskHelpers_Forward(t *testing.T) {
	c := (&fakeScreen{}).control("c", 1)
	var o Observer = allowNothing{}

	if AskShouldBeginEditing(o, c) ||
		AskShouldEndEditing(o, c) ||
		AskShouldChangeText(o, c, TextRange{}, "x") ||
		AskShouldClear(o, c) ||
		AskShouldReturn(o, c) ||
		AskShouldInteractWithURL(o, c, "u", TextRange{}) ||
		AskShouldInteractWithAttachment(o, c, "a", TextRange{}) {
		t.Error("queries should return the observer's answer")
	}
}

func TestNavigator_ForwardsNotifications(t *testing.T) {
	external := &countingNotifications{}
	nav := New(newFakeWalker(), WithObserver(external))
	c := (&fakeScreen{}).control("c", 1)

	nav.DidChangeText(c)
	nav.DidChangeSelection(c)
	nav.DidChangeSelection(c)

	if external.textChanges != 1 || external.selectionChanges != 2 {
		t.Errorf("forwarded text=%d selection=%d, want 1 and 2",
			external.textChanges, external.selectionChanges)
	}
}

func TestNavigator_ForwardsDeniedQueries(t *testing.T) {
	nav := New(newFakeWalker(), WithObserver(allowNothing{}))
	c := (&fakeScreen{}).control("c", 1)

	if nav.ShouldEndEditing(c) || nav.ShouldClear(c) ||
		nav.ShouldInteractWithURL(c, "u", TextRange{}) ||
		nav.ShouldInteractWithAttachment(c, "a", TextRange{}) {
		t.Error("navigator should return the external observer's answers")
	}
}
