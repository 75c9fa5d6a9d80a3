// Package store owns the authoritative board snapshot. Every mutation is a
// pure transition from the previous snapshot; invalid references and blank
// titles leave the board unchanged.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"dragboard/internal/board"
	"dragboard/internal/card"
)

// maxIDAttempts bounds regeneration when the id generator collides with an
// existing card.
const maxIDAttempts = 8

type Observer func(board.Board)

type Store struct {
	mu        sync.Mutex
	board     board.Board
	observers map[int]Observer
	nextObs   int

	now   func() time.Time
	newID func() string
	log   zerolog.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

func New(seed board.Board, opts ...Option) *Store {
	s := &Store{
		board:     seed.DeepCopy(),
		observers: make(map[int]Observer),
		now:       time.Now,
		newID:     card.NewID,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current board.
func (s *Store) Snapshot() board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.DeepCopy()
}

// Subscribe registers fn to be called with the new snapshot after every
// state change. The returned func removes the observer.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Store) AddCard(columnID, title string) board.Board {
	return s.Apply(AddCard{ColumnID: columnID, Title: title})
}

func (s *Store) DeleteCard(columnID, cardID string) board.Board {
	return s.Apply(DeleteCard{ColumnID: columnID, CardID: cardID})
}

func (s *Store) EditCard(columnID, cardID, newTitle string) board.Board {
	return s.Apply(EditCard{ColumnID: columnID, CardID: cardID, Title: newTitle})
}

func (s *Store) MoveCard(sourceColumnID, targetColumnID, cardID string, targetIndex int) board.Board {
	return s.Apply(MoveCard{
		SourceColumnID: sourceColumnID,
		TargetColumnID: targetColumnID,
		CardID:         cardID,
		TargetIndex:    targetIndex,
	})
}

// Apply runs cmd against the current snapshot and returns the resulting
// board. A rejected command is logged and leaves the snapshot as it was.
func (s *Store) Apply(cmd Command) board.Board {
	s.mu.Lock()
	next, err := s.transition(cmd)
	if err != nil {
		s.mu.Unlock()
		s.log.Debug().Str("op", cmd.name()).Err(err).Msg("ignored")
		return s.Snapshot()
	}
	s.board = next
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	s.log.Info().Str("op", cmd.name()).Interface("cmd", cmd).Msg("applied")
	for _, fn := range observers {
		fn(next.DeepCopy())
	}
	return next.DeepCopy()
}

func (s *Store) transition(cmd Command) (board.Board, error) {
	switch c := cmd.(type) {
	case AddCard:
		return s.addCard(c)
	case DeleteCard:
		return s.board.DeleteCard(c.ColumnID, c.CardID)
	case EditCard:
		return s.board.EditCard(c.ColumnID, c.CardID, c.Title)
	case MoveCard:
		return s.board.MoveCard(c.SourceColumnID, c.TargetColumnID, c.CardID, c.TargetIndex)
	default:
		return s.board, fmt.Errorf("unknown command %T", cmd)
	}
}

func (s *Store) addCard(c AddCard) (board.Board, error) {
	if strings.TrimSpace(c.Title) == "" {
		return s.board, board.ErrEmptyTitle
	}
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		if s.board.HasCard(id) {
			continue
		}
		return s.board.AddCard(c.ColumnID, card.New(id, c.Title, s.now()))
	}
	return s.board, fmt.Errorf("add to %q: %w", c.ColumnID, board.ErrDuplicateCard)
}
