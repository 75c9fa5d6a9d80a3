package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"dragboard/internal/card"
)

var detailStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(0, 1)

func (m *Model) openFZF() tea.Cmd {
	if m.board.CardCount() == 0 {
		return m.setStatus("No cards to search")
	}
	m.mode = fzfMode
	m.fzf.SetBoard(m.board)
	return m.fzf.Focus()
}

func (m *Model) openDetail() tea.Cmd {
	cardID := m.FocusedCard()
	if cardID == "" {
		return nil
	}
	c := m.board.Columns[m.focusedColumn].Cards[m.focusedCard]
	column := m.board.Columns[m.focusedColumn].Title

	width := m.width - 4
	if width < 20 {
		width = 60
	}
	out, err := renderMarkdown(cardMarkdown(c, column), width)
	if err != nil {
		m.log.Warn().Err(err).Str("card", c.ID).Msg("render detail")
		out = cardMarkdown(c, column)
	}
	m.detail = out
	m.mode = detailMode
	return nil
}

func cardMarkdown(c card.Card, column string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	fmt.Fprintf(&b, "*%s* · created %s\n\n", column, c.CreatedAt.Format("Jan 2, 2006"))
	if c.HasDescription() {
		b.WriteString(c.Description)
		b.WriteString("\n")
	} else {
		b.WriteString("_No description._\n")
	}
	return b.String()
}

func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func (m *Model) renderDetail() string {
	help := statusStyle.Render("esc/q/enter: close")
	return lipgloss.JoinVertical(lipgloss.Left, detailStyle.Render(strings.TrimSpace(m.detail)), help)
}

func (m *Model) updateDetailMode(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "esc", "q", "enter":
		m.mode = normalMode
		m.detail = ""
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}
