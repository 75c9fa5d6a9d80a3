package column

import "dragboard/internal/card"

type Column struct {
	ID    string      `yaml:"id"`
	Title string      `yaml:"title"`
	Cards []card.Card `yaml:"cards"`
}

func New(id, title string, cards ...card.Card) Column {
	return Column{
		ID:    id,
		Title: title,
		Cards: cards,
	}
}

func (c Column) CardCount() int {
	return len(c.Cards)
}

// IndexOf returns the position of the card with the given id, or -1.
func (c Column) IndexOf(cardID string) int {
	for i, crd := range c.Cards {
		if crd.ID == cardID {
			return i
		}
	}
	return -1
}

func (c Column) Copy() Column {
	cards := make([]card.Card, len(c.Cards))
	copy(cards, c.Cards)
	c.Cards = cards
	return c
}
