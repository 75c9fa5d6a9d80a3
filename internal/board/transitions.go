package board

import (
	"fmt"
	"strings"

	"dragboard/internal/card"
	"dragboard/internal/column"
)

// Every transition returns a new Board and leaves the receiver untouched.
// On error the returned Board is the receiver itself.

// AddCard appends c to the end of the named column. The title is trimmed.
func (b Board) AddCard(columnID string, c card.Card) (Board, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return b, ErrEmptyTitle
	}
	if c.ID == "" {
		return b, ErrEmptyCardID
	}
	ci := b.ColumnIndex(columnID)
	if ci < 0 {
		return b, fmt.Errorf("add to %q: %w", columnID, ErrColumnNotFound)
	}
	if b.HasCard(c.ID) {
		return b, fmt.Errorf("add %q: %w", c.ID, ErrDuplicateCard)
	}

	col := b.Columns[ci]
	cards := make([]card.Card, 0, len(col.Cards)+1)
	cards = append(cards, col.Cards...)
	col.Cards = append(cards, c)
	return b.withColumn(ci, col), nil
}

// DeleteCard removes the card from the named column, keeping the order of the rest.
func (b Board) DeleteCard(columnID, cardID string) (Board, error) {
	ci, i, err := b.find(columnID, cardID)
	if err != nil {
		return b, fmt.Errorf("delete: %w", err)
	}
	return b.withColumn(ci, removeAt(b.Columns[ci], i)), nil
}

// EditCard replaces the title of the card. The new title is trimmed and must
// be non-empty and different from the current one.
func (b Board) EditCard(columnID, cardID, newTitle string) (Board, error) {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return b, ErrEmptyTitle
	}
	ci, i, err := b.find(columnID, cardID)
	if err != nil {
		return b, fmt.Errorf("edit: %w", err)
	}
	if b.Columns[ci].Cards[i].Title == newTitle {
		return b, ErrTitleUnchanged
	}

	col := b.Columns[ci].Copy()
	col.Cards[i].Title = newTitle
	return b.withColumn(ci, col), nil
}

// MoveCard removes the card from the source column and inserts it into the
// target column at targetIndex. For a same-column move the index is clamped
// against the sequence after removal; otherwise against the target column
// as it stands.
func (b Board) MoveCard(sourceColumnID, targetColumnID, cardID string, targetIndex int) (Board, error) {
	si, i, err := b.find(sourceColumnID, cardID)
	if err != nil {
		return b, fmt.Errorf("move: %w", err)
	}
	ti := b.ColumnIndex(targetColumnID)
	if ti < 0 {
		return b, fmt.Errorf("move to %q: %w", targetColumnID, ErrColumnNotFound)
	}

	moving := b.Columns[si].Cards[i]
	next := b.withColumn(si, removeAt(b.Columns[si], i))

	target := next.Columns[ti]
	at := clamp(targetIndex, 0, len(target.Cards))
	return next.withColumn(ti, insertAt(target, at, moving)), nil
}

func (b Board) find(columnID, cardID string) (int, int, error) {
	ci := b.ColumnIndex(columnID)
	if ci < 0 {
		return -1, -1, fmt.Errorf("column %q: %w", columnID, ErrColumnNotFound)
	}
	i := b.Columns[ci].IndexOf(cardID)
	if i < 0 {
		return -1, -1, fmt.Errorf("card %q in %q: %w", cardID, columnID, ErrCardNotFound)
	}
	return ci, i, nil
}

func removeAt(col column.Column, i int) column.Column {
	cards := make([]card.Card, 0, len(col.Cards)-1)
	cards = append(cards, col.Cards[:i]...)
	cards = append(cards, col.Cards[i+1:]...)
	col.Cards = cards
	return col
}

func insertAt(col column.Column, i int, c card.Card) column.Column {
	cards := make([]card.Card, 0, len(col.Cards)+1)
	cards = append(cards, col.Cards[:i]...)
	cards = append(cards, c)
	cards = append(cards, col.Cards[i:]...)
	col.Cards = cards
	return col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
