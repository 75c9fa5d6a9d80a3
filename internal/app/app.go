package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"dragboard/internal/board"
	"dragboard/internal/config"
	"dragboard/internal/seed"
	"dragboard/internal/store"
	"dragboard/internal/tui"
)

// LoadBoard returns the seed board: the built-in fixture, or the file named
// by cfg.SeedFile.
func LoadBoard(cfg config.Config, now time.Time) (board.Board, error) {
	if cfg.SeedFile == "" {
		return seed.Default(), nil
	}
	b, err := seed.Load(cfg.SeedFile, now)
	if err != nil {
		return board.Board{}, fmt.Errorf("load seed: %w", err)
	}
	return b, nil
}

// NewModel wires a store seeded with b to a TUI model.
func NewModel(cfg config.Config, b board.Board, log zerolog.Logger) *tui.Model {
	s := store.New(b, store.WithLogger(log))
	return tui.NewModel(s, tui.Options{StatusTTL: cfg.StatusTTL, Logger: log})
}

func ProgramOptions(cfg config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !cfg.NoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

func Run(cfg config.Config, log zerolog.Logger) error {
	b, err := LoadBoard(cfg, time.Now())
	if err != nil {
		return err
	}
	log.Info().
		Str("seed", cfg.SeedFile).
		Int("columns", len(b.Columns)).
		Int("cards", b.CardCount()).
		Bool("mouse", !cfg.NoMouse).
		Msg("starting")

	model := NewModel(cfg, b, log)
	defer model.Close()

	p := tea.NewProgram(model, ProgramOptions(cfg)...)
	_, err = p.Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info().Msg("exited")
	return nil
}
