package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	_, err = commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m, _ = m.dispatch(views.Event{Kind: views.EventAdd, Text: a.Text})
			return commands.Result{}, nil
		},
		Toggle: func(a commands.TargetArgs) (commands.Result, error) {
			if !m.hasItem(a.ID) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no item with id %s", a.ID)}
			}
			m, _ = m.dispatch(views.Event{Kind: views.EventToggle, ID: a.ID})
			return commands.Result{}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			if !m.hasItem(a.ID) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no item with id %s", a.ID)}
			}
			m, _ = m.dispatch(views.Event{Kind: views.EventDelete, ID: a.ID})
			return commands.Result{}, nil
		},
		Clear: func() (commands.Result, error) {
			m, _ = m.dispatch(views.Event{Kind: views.EventClearCompleted})
			return commands.Result{}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
	return m
}

func (m Model) hasItem(id string) bool {
	for _, it := range m.store.Items() {
		if it.ID == id {
			return true
		}
	}
	return false
}
