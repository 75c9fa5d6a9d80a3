package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type commandInfo struct {
	usage   string
	execute func(m *Model, args string) tea.Cmd
}

var commandRegistry = make(map[string]commandInfo)

func registerCommand(name string, info commandInfo) {
	commandRegistry[name] = info
}

func init() {
	registerCommand("q", commandInfo{usage: "q", execute: cmdQuit})
	registerCommand("quit", commandInfo{usage: "quit", execute: cmdQuit})
	registerCommand("new", commandInfo{usage: "new <title>", execute: cmdNew})
	registerCommand("edit", commandInfo{usage: "edit <title>", execute: cmdEdit})
	registerCommand("delete", commandInfo{usage: "delete", execute: cmdDelete})
	registerCommand("fzf", commandInfo{usage: "fzf", execute: cmdFzf})
	registerCommand("help", commandInfo{usage: "help", execute: cmdHelp})
}

func (m *Model) updateCommandMode(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			m.closeInput()
			return nil
		case tea.KeyEnter:
			line := m.textInput.Value()
			m.closeInput()
			return m.ExecuteCommand(line)
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

// ExecuteCommand runs a command line such as "new Write docs".
func (m *Model) ExecuteCommand(line string) tea.Cmd {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	command := parts[0]
	if command == "" {
		return nil
	}

	var args string
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	info, ok := commandRegistry[command]
	if !ok {
		return m.setStatus(fmt.Sprintf("Unknown command: %s", command))
	}
	return info.execute(m, args)
}

func cmdQuit(m *Model, args string) tea.Cmd {
	return tea.Quit
}

func cmdNew(m *Model, args string) tea.Cmd {
	if args == "" {
		return m.setStatus("Usage: :new <title>")
	}
	columnID := m.FocusedColumn()
	if columnID == "" {
		return nil
	}
	m.addCard(columnID, args)
	return nil
}

func cmdEdit(m *Model, args string) tea.Cmd {
	cardID := m.FocusedCard()
	if cardID == "" {
		return m.setStatus("No card selected")
	}
	if args == "" {
		return m.setStatus("Usage: :edit <title>")
	}
	m.store.EditCard(m.FocusedColumn(), cardID, args)
	return nil
}

func cmdDelete(m *Model, args string) tea.Cmd {
	if m.FocusedCard() == "" {
		return m.setStatus("No card selected")
	}
	return m.deleteFocused()
}

func cmdFzf(m *Model, args string) tea.Cmd {
	return m.openFZF()
}

func cmdHelp(m *Model, args string) tea.Cmd {
	usages := make([]string, 0, len(commandRegistry))
	for _, info := range commandRegistry {
		usages = append(usages, info.usage)
	}
	sort.Strings(usages)
	return m.setStatus("Commands: " + strings.Join(usages, ", "))
}
