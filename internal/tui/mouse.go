package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dragboard/internal/drag"
)

// pointerRow maps a terminal row to the centre of that cell.
func pointerRow(y int) float64 {
	return float64(y) + 0.5
}

func (m *Model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	if m.mode != normalMode {
		return nil
	}
	boxes := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.startDrag(boxes, msg.X, msg.Y)

	case tea.MouseActionMotion:
		if _, ok := m.drag.Active(); !ok {
			return nil
		}
		m.dragMoved = true
		box, ok := columnAt(boxes, msg.X)
		if !ok || msg.Y < m.boardTop() {
			m.leaveHover()
			return nil
		}
		if m.hoverColumn != box.id {
			m.leaveHover()
		}
		m.hoverColumn = box.id
		m.drag.Over(box.id, box.bounds(), pointerRow(msg.Y))

	case tea.MouseActionRelease:
		return m.finishDrag(boxes, msg.X, msg.Y)
	}
	return nil
}

func (m *Model) startDrag(boxes []columnBox, x, y int) {
	box, ok := columnAt(boxes, x)
	if !ok {
		return
	}
	crd, ok := box.cardAt(y)
	if !ok {
		return
	}
	m.focusedColumn = m.board.ColumnIndex(box.id)
	m.focusedCard = crd.index
	// a press without a release for the previous gesture starts over
	m.dragMoved = false
	m.hoverColumn = ""
	m.drag.Start(drag.Item{CardID: crd.id, SourceColumnID: box.id, SourceIndex: crd.index})
}

func (m *Model) finishDrag(boxes []columnBox, x, y int) tea.Cmd {
	item, ok := m.drag.Active()
	if !ok {
		return nil
	}
	defer func() {
		m.drag.End()
		m.hoverColumn = ""
		m.dragMoved = false
	}()

	// press and release without motion is a click
	if !m.dragMoved {
		return nil
	}
	box, over := columnAt(boxes, x)
	if !over || y < m.boardTop() {
		return nil
	}
	if _, sent := m.drag.Drop(box.id); !sent {
		return nil
	}
	m.focusCard(item.CardID)
	return nil
}

func (m *Model) leaveHover() {
	if m.hoverColumn != "" {
		m.drag.Leave(m.hoverColumn)
		m.hoverColumn = ""
	}
}
