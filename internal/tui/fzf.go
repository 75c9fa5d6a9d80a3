package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"dragboard/internal/board"
	"dragboard/internal/card"
)

type fzfCardSelectedMsg struct{ cardID string }
type fzfCancelledMsg struct{}

type fzfItem struct {
	card        card.Card
	columnTitle string
}

type fzfSource []fzfItem

func (s fzfSource) String(i int) string { return s[i].card.Title }

func (s fzfSource) Len() int { return len(s) }

var (
	fzfPopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	fzfPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	fzfSelectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("229"))

	fzfMatchedCharStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Underline(true)
)

// FZFModel is a fuzzy finder over every card title on the board. An empty
// query lists all cards in board order.
type FZFModel struct {
	textinput textinput.Model
	viewport  viewport.Model
	items     fzfSource
	matches   fuzzy.Matches
	selected  int
	width     int
	height    int
	ready     bool
}

func NewFZFModel() FZFModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Find a card..."
	ti.PromptStyle = fzfPromptStyle

	return FZFModel{
		textinput: ti,
		viewport:  viewport.New(0, 0),
	}
}

func (m *FZFModel) popupSize() (int, int) {
	w := int(float64(m.width) * 0.8)
	if w > 120 {
		w = 120
	}
	return w, int(float64(m.height) * 0.6)
}

func (m *FZFModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.ready = true

	popupWidth, popupHeight := m.popupSize()
	m.textinput.Width = popupWidth - 4
	m.viewport.Width = popupWidth - 4
	m.viewport.Height = popupHeight - 3
}

// SetBoard replaces the searchable items with the cards of b.
func (m *FZFModel) SetBoard(b board.Board) {
	items := make(fzfSource, 0, b.CardCount())
	for _, col := range b.Columns {
		for _, c := range col.Cards {
			items = append(items, fzfItem{card: c, columnTitle: col.Title})
		}
	}
	m.items = items
	m.filter()
}

func (m *FZFModel) Focus() tea.Cmd {
	m.textinput.SetValue("")
	m.filter()
	return m.textinput.Focus()
}

func (m *FZFModel) Blur() {
	m.textinput.Blur()
	m.textinput.SetValue("")
}

// Selected returns the id of the highlighted card.
func (m *FZFModel) Selected() (string, bool) {
	if len(m.matches) == 0 {
		return "", false
	}
	return m.items[m.matches[m.selected].Index].card.ID, true
}

func (m FZFModel) Update(msg tea.Msg) (FZFModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			return m, func() tea.Msg { return fzfCancelledMsg{} }

		case tea.KeyEnter:
			if id, ok := m.Selected(); ok {
				return m, func() tea.Msg { return fzfCardSelectedMsg{cardID: id} }
			}
			return m, func() tea.Msg { return fzfCancelledMsg{} }

		case tea.KeyDown, tea.KeyCtrlN:
			if m.selected < len(m.matches)-1 {
				m.selected++
			} else {
				m.selected = 0
			}
			m.ensureSelectedVisible()
			return m, nil

		case tea.KeyUp, tea.KeyCtrlP:
			if m.selected > 0 {
				m.selected--
			} else if len(m.matches) > 0 {
				m.selected = len(m.matches) - 1
			}
			m.ensureSelectedVisible()
			return m, nil
		}
	}

	before := m.textinput.Value()
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	if m.textinput.Value() != before {
		m.filter()
	}
	return m, cmd
}

func (m *FZFModel) filter() {
	query := m.textinput.Value()
	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.items))
		for i, item := range m.items {
			m.matches[i] = fuzzy.Match{Str: item.card.Title, Index: i}
		}
	} else {
		m.matches = fuzzy.FindFrom(query, m.items)
	}
	m.selected = 0
	m.viewport.SetYOffset(0)
}

func (m *FZFModel) ensureSelectedVisible() {
	if m.viewport.Height <= 0 {
		return
	}
	if m.selected < m.viewport.YOffset {
		m.viewport.SetYOffset(m.selected)
	} else if m.selected >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.selected - m.viewport.Height + 1)
	}
}

func (m FZFModel) renderResults() string {
	var b strings.Builder
	for i, match := range m.matches {
		item := m.items[match.Index]

		matched := make(map[int]struct{}, len(match.MatchedIndexes))
		for _, idx := range match.MatchedIndexes {
			matched[idx] = struct{}{}
		}

		var title strings.Builder
		for idx, r := range item.card.Title {
			if _, ok := matched[idx]; ok {
				title.WriteString(fzfMatchedCharStyle.Render(string(r)))
			} else {
				title.WriteRune(r)
			}
		}

		marker := "  "
		if i == m.selected {
			marker = "> "
		}
		line := fmt.Sprintf("%s%s [%s]", marker, title.String(), item.columnTitle)
		if i == m.selected {
			line = fzfSelectedItemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteRune('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m FZFModel) View() string {
	if !m.ready {
		return ""
	}
	popupWidth, popupHeight := m.popupSize()

	m.viewport.SetContent(m.renderResults())
	content := lipgloss.JoinVertical(lipgloss.Left, "Find Card", m.viewport.View(), m.textinput.View())
	popup := fzfPopupStyle.Width(popupWidth).Height(popupHeight).Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popup)
}
