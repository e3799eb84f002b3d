// Package viewtree models a view hierarchy of containers, scrollable
// lists and control leaves, and walks it on behalf of the navigator.
//
// Frames are stored relative to the parent; Node.ScreenFrame resolves
// them to screen coordinates by summing ancestor origins. A leaf is
// focusable when it and every ancestor are visible and its control does
// not report Enabled() == false.
package viewtree
