package tui

import "dragboard/internal/drag"

type cardBox struct {
	id     string
	index  int
	top    int
	height int
}

type columnBox struct {
	id    string
	left  int
	right int
	cards []cardBox
}

func (c columnBox) contains(x int) bool {
	return x >= c.left && x < c.right
}

func (c columnBox) bounds() []drag.Bounds {
	out := make([]drag.Bounds, len(c.cards))
	for i, crd := range c.cards {
		out[i] = drag.Bounds{Top: float64(crd.top), Height: float64(crd.height)}
	}
	return out
}

func (c columnBox) cardAt(y int) (cardBox, bool) {
	for _, crd := range c.cards {
		if y >= crd.top && y < crd.top+crd.height {
			return crd, true
		}
	}
	return cardBox{}, false
}

// layout returns the hit boxes of the board as currently rendered.
func (m *Model) layout() []columnBox {
	_, boxes := m.renderBoard()
	return boxes
}

func columnAt(boxes []columnBox, x int) (columnBox, bool) {
	for _, box := range boxes {
		if box.contains(x) {
			return box, true
		}
	}
	return columnBox{}, false
}
