package navigator

import "sort"

// Order returns the navigation order c belongs to: the focusable
// descendants of its nearest scrollable list, or its focusable siblings
// when it has none, sorted by the configured Behaviour.
//
// The order is computed on every call; the hierarchy may change between
// events.
func (n *Navigator) Order(c Control) []Control {
	var controls []Control
	if root, ok := n.walker.NearestScrollableList(c); ok {
		controls = n.walker.DescendantsFocusable(root)
	} else {
		controls = n.walker.SiblingFocusable(c)
	}
	return sortControls(controls, n.config.Behaviour)
}

// RefreshSubmitLabel sets c's submit label from its position in the
// navigation order: LastSubmitLabel on the last control, LabelNext otherwise.
func (n *Navigator) RefreshSubmitLabel(c Control) {
	if !n.IsRegistered(c) {
		return
	}
	order := n.Order(c)
	i := indexOf(order, c)
	if i < 0 {
		return
	}
	if i == len(order)-1 {
		c.SetSubmitLabel(n.config.LastSubmitLabel)
	} else {
		c.SetSubmitLabel(LabelNext)
	}
}

// sortControls returns controls ordered by b. The input slice is not modified.
func sortControls(controls []Control, b Behaviour) []Control {
	sorted := make([]Control, len(controls))
	copy(sorted, controls)

	switch b {
	case ByTag:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Tag() < sorted[j].Tag()
		})
	case ByPosition:
		sort.SliceStable(sorted, func(i, j int) bool {
			fi, fj := sorted[i].ScreenFrame(), sorted[j].ScreenFrame()
			if fi.Y != fj.Y {
				return fi.Y < fj.Y
			}
			return fi.X < fj.X
		})
	}
	return sorted
}

func indexOf(controls []Control, c Control) int {
	for i, candidate := range controls {
		if candidate == c {
			return i
		}
	}
	return -1
}
