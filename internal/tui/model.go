package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"dragboard/internal/board"
	"dragboard/internal/drag"
	"dragboard/internal/store"
)

type mode int

const (
	normalMode mode = iota
	addMode
	editMode
	commandMode
	fzfMode
	detailMode
)

type Options struct {
	StatusTTL time.Duration
	Logger    zerolog.Logger
}

type Model struct {
	store       *store.Store
	drag        *drag.Controller
	board       board.Board
	unsubscribe func()
	log         zerolog.Logger

	keys          keyMap
	help          help.Model
	mode          mode
	focusedColumn int
	focusedCard   int
	textInput     textinput.Model
	fzf           FZFModel
	detail        string

	hoverColumn string
	dragMoved   bool

	width         int
	height        int
	statusMessage string
	statusTTL     time.Duration
}

type clearStatusMsg struct{}

func clearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func NewModel(s *store.Store, opts Options) *Model {
	if opts.StatusTTL <= 0 {
		opts.StatusTTL = 3 * time.Second
	}
	ti := textinput.New()
	ti.CharLimit = 200

	m := &Model{
		store:     s,
		drag:      drag.NewController(s, opts.Logger),
		board:     s.Snapshot(),
		log:       opts.Logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		textInput: ti,
		fzf:       NewFZFModel(),
		statusTTL: opts.StatusTTL,
	}
	m.unsubscribe = s.Subscribe(func(b board.Board) {
		m.board = b
		m.clampFocusedCard()
	})
	return m
}

// Close detaches the model from the store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.fzf.SetSize(msg.Width, msg.Height)
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case fzfCardSelectedMsg:
		m.mode = normalMode
		m.fzf.Blur()
		m.focusCard(msg.cardID)
		return m, nil

	case fzfCancelledMsg:
		m.mode = normalMode
		m.fzf.Blur()
		return m, nil

	case tea.MouseMsg:
		return m, m.updateMouse(msg)
	}

	var cmd tea.Cmd
	switch m.mode {
	case normalMode:
		cmd = m.updateNormalMode(msg)
	case addMode, editMode:
		cmd = m.updateInputMode(msg)
	case commandMode:
		cmd = m.updateCommandMode(msg)
	case fzfMode:
		m.fzf, cmd = m.fzf.Update(msg)
	case detailMode:
		cmd = m.updateDetailMode(msg)
	}
	return m, cmd
}

func (m *Model) boardTop() int {
	return lipgloss.Height(m.renderTitle())
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMessage = msg
	return clearStatusCmd(m.statusTTL)
}

// FocusedColumn returns the id of the focused column.
func (m *Model) FocusedColumn() string {
	if m.focusedColumn < 0 || m.focusedColumn >= len(m.board.Columns) {
		return ""
	}
	return m.board.Columns[m.focusedColumn].ID
}

// FocusedCard returns the id of the focused card, or "" for an empty column.
func (m *Model) FocusedCard() string {
	if m.focusedColumn < 0 || m.focusedColumn >= len(m.board.Columns) {
		return ""
	}
	cards := m.board.Columns[m.focusedColumn].Cards
	if m.focusedCard < 0 || m.focusedCard >= len(cards) {
		return ""
	}
	return cards[m.focusedCard].ID
}

func (m *Model) focusCard(cardID string) {
	columnID, index, ok := m.board.Locate(cardID)
	if !ok {
		return
	}
	m.focusedColumn = m.board.ColumnIndex(columnID)
	m.focusedCard = index
}

func (m *Model) clampFocusedCard() {
	if m.focusedColumn >= len(m.board.Columns) {
		m.focusedColumn = len(m.board.Columns) - 1
	}
	if m.focusedColumn < 0 {
		m.focusedColumn = 0
		m.focusedCard = 0
		return
	}
	n := len(m.board.Columns[m.focusedColumn].Cards)
	if m.focusedCard >= n {
		m.focusedCard = n - 1
	}
	if m.focusedCard < 0 {
		m.focusedCard = 0
	}
}
