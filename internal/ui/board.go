package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	internalstrings "github.com/TechieBelle/taskboard/internal/strings"
)

const (
	minColumnWidth     = 20
	defaultBoardWidth  = 120
	columnChromeWidth  = 4
	boardColumnSpacing = 1
)

var boardBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

var (
	columnStyle      = lipgloss.NewStyle().Border(boardBorder).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	columnTitleStyle = lipgloss.NewStyle().Bold(true)
	columnCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cardMetaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	priorityHigh     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	priorityMedium   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	priorityLow      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// BoardCard is one task rendered inside a board column.
type BoardCard struct {
	ID       string
	Title    string
	Priority string
	DueDate  string
	Tags     []string
}

// BoardColumn is one workflow column with its cards in display order.
type BoardColumn struct {
	Title string
	Cards []BoardCard
}

// RenderBoard lays out the columns side by side. Width is the total
// terminal width available; anything below the usable minimum falls
// back to a vertical stack.
func RenderBoard(width int, columns []BoardColumn) string {
	if len(columns) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultBoardWidth
	}

	columnWidth := (width - len(columns)*boardColumnSpacing) / len(columns)
	innerWidth := columnWidth - columnChromeWidth
	if innerWidth < minColumnWidth {
		return renderStacked(width, columns)
	}

	rendered := make([]string, 0, len(columns))
	for _, column := range columns {
		rendered = append(rendered, renderColumn(innerWidth, column))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderStacked(width int, columns []BoardColumn) string {
	innerWidth := width - columnChromeWidth
	if innerWidth < 1 {
		innerWidth = minColumnWidth
	}
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, renderColumn(innerWidth, column))
	}
	return strings.Join(parts, "\n")
}

func renderColumn(innerWidth int, column BoardColumn) string {
	header := columnTitleStyle.Render(column.Title) + " " +
		columnCountStyle.Render(fmt.Sprintf("(%d)", len(column.Cards)))

	lines := []string{header}
	if len(column.Cards) == 0 {
		lines = append(lines, cardMetaStyle.Render("empty"))
	}
	for _, card := range column.Cards {
		lines = append(lines, "", renderCard(innerWidth, card))
	}

	content := strings.Join(lines, "\n")
	return columnStyle.Width(innerWidth + 2).Render(content)
}

func renderCard(innerWidth int, card BoardCard) string {
	title := internalstrings.NormalizeWhitespace(card.Title)
	lines := []string{wordwrap.String(title, innerWidth)}

	meta := make([]string, 0, 3)
	if card.ID != "" {
		meta = append(meta, card.ID)
	}
	if card.Priority != "" {
		meta = append(meta, priorityStyle(card.Priority).Render(card.Priority))
	}
	if card.DueDate != "" {
		meta = append(meta, "due "+card.DueDate)
	}
	if len(meta) > 0 {
		lines = append(lines, cardMetaStyle.Render(strings.Join(meta, " ")))
	}
	if len(card.Tags) > 0 {
		lines = append(lines, cardMetaStyle.Render("#"+strings.Join(card.Tags, " #")))
	}

	return strings.Join(lines, "\n")
}

func priorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return priorityHigh
	case "medium":
		return priorityMedium
	default:
		return priorityLow
	}
}
