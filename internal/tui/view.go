package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dragboard/internal/card"
	"dragboard/internal/column"
	"dragboard/internal/drag"
)

const cardWidth = 24

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	boardSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Padding(0, 1)

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1)

	cardCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(cardWidth)

	focusedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("205"))

	draggingCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("236")).
				Foreground(lipgloss.Color("240")).
				Faint(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205"))

	columnStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Width(cardWidth + 4)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

// headerColor follows the column id: todo, in-progress and done have fixed
// accents, anything else is gray.
func headerColor(columnID string) lipgloss.Color {
	switch columnID {
	case "todo":
		return lipgloss.Color("#6366f1")
	case "in-progress":
		return lipgloss.Color("#f59e0b")
	case "done":
		return lipgloss.Color("#10b981")
	default:
		return lipgloss.Color("#6b7280")
	}
}

func (m *Model) View() string {
	switch m.mode {
	case fzfMode:
		return m.fzf.View()
	case detailMode:
		return m.renderDetail()
	}

	boardView, _ := m.renderBoard()
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTitle(), boardView, m.renderStatus())
}

func (m *Model) renderTitle() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		boardTitleStyle.Render("Kanban Board"),
		boardSubtitleStyle.Render("Drag and drop cards to organize your tasks"),
		"",
	)
}

// renderBoard draws every column and returns the hit boxes of what it drew,
// in screen coordinates.
func (m *Model) renderBoard() (string, []columnBox) {
	top := lipgloss.Height(m.renderTitle())
	left := 0

	var rendered []string
	var boxes []columnBox
	for i, col := range m.board.Columns {
		view, box := m.renderColumn(col, i, left, top)
		rendered = append(rendered, view)
		boxes = append(boxes, box)
		left = box.right
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...), boxes
}

func (m *Model) renderColumn(c column.Column, columnIndex, left, top int) (string, columnBox) {
	header := columnHeaderStyle.
		Foreground(headerColor(c.ID)).
		Render(fmt.Sprintf("%s %s", c.Title, cardCountStyle.Render(fmt.Sprint(c.CardCount()))))

	parts := []string{header}
	row := top + lipgloss.Height(header)
	box := columnBox{id: c.ID, left: left}

	for i, crd := range c.Cards {
		parts = append(parts, m.renderSlot(c, i))
		row++
		view := m.renderCard(crd, c.ID, columnIndex, i)
		height := lipgloss.Height(view)
		box.cards = append(box.cards, cardBox{id: crd.ID, index: i, top: row, height: height})
		parts = append(parts, view)
		row += height
	}
	parts = append(parts, m.renderSlot(c, len(c.Cards)))

	view := columnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	box.right = left + lipgloss.Width(view)
	return view, box
}

// renderSlot draws the one-row gap above card index (or below the last card),
// which becomes the drop marker while a drag hovers there. Slots are drawn
// with the dragged card still in place, so they are compared in drop-index
// terms.
func (m *Model) renderSlot(c column.Column, slot int) string {
	item, ok := m.drag.Active()
	if !ok {
		return ""
	}
	if m.drag.Placeholder(c.ID, drag.AdjustForSource(item, c.ID, slot), len(c.Cards)) {
		return placeholderStyle.Render(strings.Repeat("━", cardWidth+2))
	}
	return ""
}

func (m *Model) renderCard(c card.Card, columnID string, columnIndex, cardIndex int) string {
	style := cardStyle
	if item, ok := m.drag.Active(); ok && item.CardID == c.ID {
		style = draggingCardStyle
	} else if m.focusedColumn == columnIndex && m.focusedCard == cardIndex {
		style = focusedCardStyle
	}

	isFocused := m.focusedColumn == columnIndex && m.focusedCard == cardIndex
	if isFocused && m.mode == editMode {
		return focusedCardStyle.Render(m.textInput.View())
	}

	title := c.Title
	if c.HasDescription() {
		title += " ¶"
	}
	return style.Render(title)
}

func (m *Model) renderStatus() string {
	switch m.mode {
	case addMode, commandMode:
		return statusStyle.Render(m.textInput.View())
	}
	if m.statusMessage != "" {
		return statusStyle.Render(m.statusMessage)
	}
	return statusStyle.Render(m.help.View(m.keys))
}
