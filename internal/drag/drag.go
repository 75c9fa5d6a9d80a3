// Package drag turns pointer samples from a drag gesture into a single move
// request for the board store.
package drag

import (
	"github.com/rs/zerolog"

	"dragboard/internal/board"
)

// Item identifies the dragged card and where it came from. It is captured at
// drag start and not updated while the gesture is in progress.
type Item struct {
	CardID         string
	SourceColumnID string
	SourceIndex    int
}

// Bounds is the extent of one rendered card along the ordering axis.
type Bounds struct {
	Top    float64
	Height float64
}

func (b Bounds) Mid() float64 {
	return b.Top + b.Height/2
}

// Request is a normalized move.
type Request struct {
	SourceColumnID string
	SourceIndex    int
	TargetColumnID string
	TargetIndex    int
}

// Store is the part of the board store the controller talks to.
type Store interface {
	Snapshot() board.Board
	MoveCard(sourceColumnID, targetColumnID, cardID string, targetIndex int) board.Board
}

// DropIndex returns the index of the first card whose midpoint lies below
// pointer, or len(cards) when the pointer is below all of them.
func DropIndex(cards []Bounds, pointer float64) int {
	for i, c := range cards {
		if pointer < c.Mid() {
			return i
		}
	}
	return len(cards)
}

// AdjustForSource compensates for the dragged card still being displayed in
// its source column: past the source index every slot is one too high.
func AdjustForSource(item Item, columnID string, raw int) int {
	if item.SourceColumnID == columnID && raw > item.SourceIndex {
		return max(0, raw-1)
	}
	return raw
}

type Controller struct {
	store Store
	log   zerolog.Logger

	item    *Item
	over    string
	index   int
	hasDrop bool
}

func NewController(store Store, log zerolog.Logger) *Controller {
	return &Controller{store: store, log: log}
}

// Start begins a gesture for item, discarding any previous one.
func (c *Controller) Start(item Item) {
	c.item = &item
	c.clearDrop()
	c.log.Debug().Str("card", item.CardID).Str("column", item.SourceColumnID).Int("index", item.SourceIndex).Msg("drag start")
}

// Active reports the item being dragged.
func (c *Controller) Active() (Item, bool) {
	if c.item == nil {
		return Item{}, false
	}
	return *c.item, true
}

// Over records a hover sample over columnID and returns the drop index.
// Without an active drag it returns -1.
func (c *Controller) Over(columnID string, cards []Bounds, pointer float64) int {
	if c.item == nil {
		return -1
	}
	c.over = columnID
	c.index = AdjustForSource(*c.item, columnID, DropIndex(cards, pointer))
	c.hasDrop = true
	return c.index
}

// Leave forgets the drop index recorded for columnID.
func (c *Controller) Leave(columnID string) {
	if c.over == columnID {
		c.clearDrop()
	}
}

// DropIndexFor returns the current drop index if the pointer is over columnID.
func (c *Controller) DropIndexFor(columnID string) (int, bool) {
	if c.item == nil || !c.hasDrop || c.over != columnID {
		return 0, false
	}
	return c.index, true
}

// Drop resolves the gesture against targetColumnID and, unless the result is
// the card's current position, sends the move to the store. It reports the
// resolved request and whether the store was called.
func (c *Controller) Drop(targetColumnID string) (Request, bool) {
	if c.item == nil {
		return Request{}, false
	}
	defer c.clearDrop()

	index, ok := c.DropIndexFor(targetColumnID)
	if !ok {
		col, found := c.store.Snapshot().Column(targetColumnID)
		if !found {
			c.log.Debug().Str("column", targetColumnID).Msg("drop on unknown column")
			return Request{}, false
		}
		index = col.CardCount()
	}

	req := Request{
		SourceColumnID: c.item.SourceColumnID,
		SourceIndex:    c.item.SourceIndex,
		TargetColumnID: targetColumnID,
		TargetIndex:    index,
	}
	if req.SourceColumnID == req.TargetColumnID && req.SourceIndex == req.TargetIndex {
		return req, false
	}

	c.store.MoveCard(req.SourceColumnID, req.TargetColumnID, c.item.CardID, req.TargetIndex)
	return req, true
}

// End finishes the gesture, dropped or not.
func (c *Controller) End() {
	if c.item != nil {
		c.log.Debug().Str("card", c.item.CardID).Msg("drag end")
	}
	c.item = nil
	c.clearDrop()
}

// Placeholder reports whether a drop marker belongs before the card at index
// in columnID, or at the bottom when index equals the column length. No
// marker is shown on the dragged card's own slot.
func (c *Controller) Placeholder(columnID string, index, columnLen int) bool {
	at, ok := c.DropIndexFor(columnID)
	if !ok || at != index {
		return false
	}
	if index == columnLen {
		return true
	}
	return c.item.SourceColumnID != columnID || c.item.SourceIndex != index
}

func (c *Controller) clearDrop() {
	c.over = ""
	c.index = 0
	c.hasDrop = false
}
