// Package form hosts a configured form as a Bubble Tea program.
//
// Each config.FieldSpec becomes a Field: a TextField backed by
// bubbles/textinput, or a TextArea backed by bubbles/textarea for
// multi-line fields. Fields are laid out in a viewtree: one container per
// group, all placed inside a ScrollList when the form scrolls. Every field
// is registered with a navigator.Navigator, which then receives the
// field's editing events.
//
// # Keys
//
//   - enter: submit the field. Focus moves to the next field of its
//     scope, or is released on the last one. With no field focused,
//     enter submits the form (or focuses the first empty required field).
//   - tab / shift+tab: next / previous field, crossing group boundaries
//   - ctrl+u: clear the field
//   - esc: leave the field; quits when nothing is focused
//   - ctrl+c: quit
//
// Only one field is focused at a time. A required field refuses to give
// up focus while empty, which the navigator reports as a refused release.
//
// # Usage Example
//
//	doc, _ := config.Load()
//	spec, _ := doc.Form("")
//
//	m := form.New(spec, doc.Navigation)
//	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	values := final.(form.Model).Values()
//
// All Model methods and the navigator run on the Bubble Tea event loop.
package form
