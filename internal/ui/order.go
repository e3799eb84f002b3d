package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// OrderRow is one control in a rendered navigation order.
type OrderRow struct {
	Name  string
	Kind  string
	Tag   int
	X, Y  int
	Label string // Submit label caption assigned for this position
	Skip  string // Non-empty when the control is not focusable, with the reason
}

// OrderScope is the order of one navigation scope: a scrollable list or a
// group of siblings.
type OrderScope struct {
	Title string
	Rows  []OrderRow
}

var orderColumns = []string{"#", "FIELD", "KIND", "TAG", "POS", "RETURN KEY"}

// RenderOrder renders each scope as an aligned table.
func RenderOrder(scopes []OrderScope, width int) string {
	width = clampWidth(width)

	var sections []string
	for _, scope := range scopes {
		sections = append(sections, ScopeTitleStyle.Render(scope.Title), renderOrderTable(scope.Rows))
	}
	if len(sections) == 0 {
		sections = append(sections, TableMutedStyle.Render("  (no focusable fields)"))
	}

	return lipgloss.NewStyle().
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderOrderTable(rows []OrderRow) string {
	muted := make(map[int]bool)
	cells := make([][]string, 0, len(rows))

	position := 0
	for r, row := range rows {
		index := "-"
		label := row.Label
		if row.Skip == "" {
			position++
			index = strconv.Itoa(position)
		} else {
			label = "(" + row.Skip + ")"
			muted[r] = true
		}
		cells = append(cells, []string{
			index,
			row.Name,
			row.Kind,
			strconv.Itoa(row.Tag),
			fmt.Sprintf("%d,%d", row.X, row.Y),
			label,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(TableMutedStyle).
		Headers(orderColumns...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = TableHeaderStyle
			case muted[row]:
				style = TableMutedStyle
			default:
				style = TableCellStyle
			}
			return style.PaddingRight(2)
		})

	return lipgloss.NewStyle().PaddingLeft(2).Render(t.String())
}
