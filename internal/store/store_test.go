package store

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragboard/internal/board"
	"dragboard/internal/card"
	"dragboard/internal/column"
)

var fixedNow = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func titles(col column.Column) []string {
	out := make([]string, len(col.Cards))
	for i, c := range col.Cards {
		out[i] = c.Title
	}
	return out
}

func seed() board.Board {
	t := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return board.New(
		column.New("todo", "Todo",
			card.New("A", "A", t), card.New("B", "B", t), card.New("C", "C", t), card.New("D", "D", t)),
		column.New("in-progress", "In Progress", card.New("X", "X", t), card.New("Y", "Y", t)),
		column.New("done", "Done"),
	)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func newTestStore(opts ...Option) *Store {
	base := []Option{WithClock(func() time.Time { return fixedNow }), WithIDGenerator(sequentialIDs())}
	return New(seed(), append(base, opts...)...)
}

func TestAddCard(t *testing.T) {
	s := newTestStore()

	b := s.AddCard("todo", "  New task  ")
	todo, _ := b.Column("todo")
	require.Len(t, todo.Cards, 5)

	added := todo.Cards[4]
	assert.Equal(t, "New task", added.Title)
	assert.Equal(t, "new-1", added.ID)
	assert.Equal(t, fixedNow, added.CreatedAt)
	assert.Equal(t, b, s.Snapshot())
}

func TestAddCardBlankTitleIsNoOp(t *testing.T) {
	s := newTestStore()
	before := s.Snapshot()

	assert.Equal(t, before, s.AddCard("todo", "   "))
	assert.Equal(t, before, s.AddCard("backlog", "valid"))
}

func TestAddCardRegeneratesCollidingID(t *testing.T) {
	gen := []string{"A", "X", "fresh"}
	i := 0
	s := newTestStore(WithIDGenerator(func() string {
		id := gen[i]
		i++
		return id
	}))

	b := s.AddCard("done", "new")
	done, _ := b.Column("done")
	require.Len(t, done.Cards, 1)
	assert.Equal(t, "fresh", done.Cards[0].ID)
	require.NoError(t, b.Validate())
}

func TestAddCardGivesUpOnPersistentCollision(t *testing.T) {
	s := newTestStore(WithIDGenerator(func() string { return "A" }))
	before := s.Snapshot()
	assert.Equal(t, before, s.AddCard("done", "new"))
}

func TestAddCardDefaultIDs(t *testing.T) {
	s := New(seed())
	s.AddCard("done", "one")
	b := s.AddCard("done", "two")

	done, _ := b.Column("done")
	require.Len(t, done.Cards, 2)
	assert.NotEqual(t, done.Cards[0].ID, done.Cards[1].ID)
	require.NoError(t, b.Validate())
}

func TestDeleteCard(t *testing.T) {
	s := newTestStore()

	b := s.DeleteCard("todo", "C")
	todo, _ := b.Column("todo")
	assert.Equal(t, []string{"A", "B", "D"}, titles(todo))

	assert.Equal(t, b, s.DeleteCard("todo", "C"))
}

func TestEditCard(t *testing.T) {
	s := newTestStore()

	b := s.EditCard("todo", "B", "Bee")
	todo, _ := b.Column("todo")
	assert.Equal(t, []string{"A", "Bee", "C", "D"}, titles(todo))

	assert.Equal(t, b, s.EditCard("todo", "B", "Bee"))
	assert.Equal(t, b, s.EditCard("todo", "B", "  "))
	assert.Equal(t, b, s.EditCard("done", "B", "elsewhere"))
}

func TestMoveCard(t *testing.T) {
	s := newTestStore()

	b := s.MoveCard("todo", "todo", "A", 3)
	todo, _ := b.Column("todo")
	assert.Equal(t, []string{"B", "C", "D", "A"}, titles(todo))

	b = s.MoveCard("todo", "in-progress", "C", 0)
	todo, _ = b.Column("todo")
	doing, _ := b.Column("in-progress")
	assert.Equal(t, []string{"B", "D", "A"}, titles(todo))
	assert.Equal(t, []string{"C", "X", "Y"}, titles(doing))
	require.NoError(t, b.Validate())
}

func TestMoveCardToOwnPosition(t *testing.T) {
	s := newTestStore()
	before := s.Snapshot()
	assert.Equal(t, before, s.MoveCard("in-progress", "in-progress", "Y", 1))
}

func TestSubscribeFiresOnlyOnChange(t *testing.T) {
	s := newTestStore()

	var got []board.Board
	unsubscribe := s.Subscribe(func(b board.Board) { got = append(got, b) })

	s.AddCard("todo", "  ")
	s.DeleteCard("todo", "missing")
	require.Empty(t, got)

	b := s.MoveCard("todo", "done", "A", 0)
	require.Len(t, got, 1)
	assert.Equal(t, b, got[0])

	unsubscribe()
	s.DeleteCard("done", "A")
	assert.Len(t, got, 1)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newTestStore()

	snap := s.Snapshot()
	snap.Columns[0].Cards[0].Title = "mutated"
	snap.Columns[0].Cards = nil

	todo, _ := s.Snapshot().Column("todo")
	assert.Equal(t, []string{"A", "B", "C", "D"}, titles(todo))
}

func TestNewDetachesSeed(t *testing.T) {
	b := seed()
	s := New(b)
	b.Columns[0].Cards[0].Title = "mutated"

	todo, _ := s.Snapshot().Column("todo")
	assert.Equal(t, "A", todo.Cards[0].Title)
}

func TestLogsAppliedAndIgnored(t *testing.T) {
	var buf bytes.Buffer
	s := newTestStore(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	s.EditCard("todo", "A", "A")
	assert.Contains(t, buf.String(), `"message":"ignored"`)
	assert.Contains(t, buf.String(), `"op":"edit"`)

	buf.Reset()
	s.MoveCard("todo", "done", "A", 0)
	assert.Contains(t, buf.String(), `"message":"applied"`)
	assert.Contains(t, buf.String(), `"op":"move"`)
}

func TestApplyCommands(t *testing.T) {
	s := newTestStore()
	cmds := []Command{
		AddCard{ColumnID: "done", Title: "shipped"},
		MoveCard{SourceColumnID: "todo", TargetColumnID: "done", CardID: "D", TargetIndex: 0},
		EditCard{ColumnID: "done", CardID: "D", Title: "Dee"},
		DeleteCard{ColumnID: "in-progress", CardID: "X"},
	}

	var b board.Board
	for _, c := range cmds {
		b = s.Apply(c)
		require.NoError(t, b.Validate())
	}

	done, _ := b.Column("done")
	doing, _ := b.Column("in-progress")
	assert.Equal(t, []string{"Dee", "shipped"}, titles(done))
	assert.Equal(t, []string{"Y"}, titles(doing))
}
