// Package ui renders the non-interactive output of the formnav CLI.
//
// Commands such as "formnav order" and "formnav config init" print a
// header, a body and a result box and exit. Components render to strings
// with Lipgloss so they can be written to any io.Writer through a Printer.
//
//   - Header: command banner showing the operation and its parameters
//   - OrderScope: navigation order of one scope rendered as a table
//   - Result: success, warning or failure box with details and hints
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Navigation Order", "formnav order",
//	    ui.Param{Key: "Form", Value: "contact"},
//	    ui.Param{Key: "Behaviour", Value: "tag"},
//	)
//	p.PrintOrder(scopes)
//
// Logging is controlled separately via FORMNAV_LOG_LEVEL so that zap
// output does not interleave with rendered components.
package ui
