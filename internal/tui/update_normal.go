package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateNormalMode(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit

	case key.Matches(keyMsg, m.keys.Cancel):
		m.drag.End()
		m.hoverColumn = ""
		m.dragMoved = false

	case key.Matches(keyMsg, m.keys.Command):
		m.statusMessage = ""
		m.mode = commandMode
		m.textInput.Prompt = ":"
		m.textInput.SetValue("")
		return m.textInput.Focus()

	case key.Matches(keyMsg, m.keys.Find):
		return m.openFZF()

	case key.Matches(keyMsg, m.keys.Left):
		if m.focusedColumn > 0 {
			m.focusedColumn--
			m.clampFocusedCard()
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.focusedColumn < len(m.board.Columns)-1 {
			m.focusedColumn++
			m.clampFocusedCard()
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.focusedCard > 0 {
			m.focusedCard--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.FocusedCard() != "" && m.focusedCard < len(m.board.Columns[m.focusedColumn].Cards)-1 {
			m.focusedCard++
		}

	case key.Matches(keyMsg, m.keys.Add):
		if m.FocusedColumn() == "" {
			return nil
		}
		m.statusMessage = ""
		m.mode = addMode
		m.textInput.Prompt = "Add card: "
		m.textInput.Placeholder = "Enter card title..."
		m.textInput.SetValue("")
		return m.textInput.Focus()

	case key.Matches(keyMsg, m.keys.Edit):
		cardID := m.FocusedCard()
		if cardID == "" {
			return nil
		}
		m.mode = editMode
		m.textInput.Prompt = ""
		m.textInput.Placeholder = ""
		m.textInput.SetValue(m.board.Columns[m.focusedColumn].Cards[m.focusedCard].Title)
		m.textInput.CursorEnd()
		return m.textInput.Focus()

	case key.Matches(keyMsg, m.keys.Delete):
		return m.deleteFocused()

	case key.Matches(keyMsg, m.keys.Open):
		return m.openDetail()
	}
	return nil
}

// updateInputMode handles the add and edit prompts. Enter submits, Esc
// cancels; blank or unchanged titles are left to the store to ignore.
func (m *Model) updateInputMode(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			m.closeInput()
			return nil
		case tea.KeyEnter:
			value := m.textInput.Value()
			columnID := m.FocusedColumn()
			switch m.mode {
			case addMode:
				m.addCard(columnID, value)
			case editMode:
				m.store.EditCard(columnID, m.FocusedCard(), value)
			}
			m.closeInput()
			return nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

func (m *Model) closeInput() {
	m.mode = normalMode
	m.textInput.Blur()
	m.textInput.SetValue("")
	m.textInput.Placeholder = ""
}

func (m *Model) addCard(columnID, title string) {
	before := len(m.board.Columns[m.focusedColumn].Cards)
	m.store.AddCard(columnID, title)
	if len(m.board.Columns[m.focusedColumn].Cards) > before {
		m.focusedCard = before
	}
}

func (m *Model) deleteFocused() tea.Cmd {
	cardID := m.FocusedCard()
	if cardID == "" {
		return nil
	}
	title := m.board.Columns[m.focusedColumn].Cards[m.focusedCard].Title
	m.store.DeleteCard(m.FocusedColumn(), cardID)
	return m.setStatus("Deleted: " + title)
}
