package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/views"
)

func (m Model) handleInputKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "esc", m.Keys.SwitchFocus:
		return m.focusList()
	}
	var cmd tea.Cmd
	m.newItemInput, cmd = m.newItemInput.Update(msg)
	_ = cmd
	return m
}

func (m Model) handleListKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.store.Items())-1 {
			m.Cursor++
		}
	case m.Keys.Toggle, "space", "x":
		if id, ok := m.selectedID(); ok {
			m, _ = m.dispatch(views.Event{Kind: views.EventToggle, ID: id})
		}
	case m.Keys.Delete, "delete", "backspace":
		if id, ok := m.selectedID(); ok {
			m, _ = m.dispatch(views.Event{Kind: views.EventDelete, ID: id})
		}
	case m.Keys.ClearCompleted:
		m, _ = m.dispatch(views.Event{Kind: views.EventClearCompleted})
	case m.Keys.SwitchFocus, "i", "a":
		return m.focusInput()
	}
	return m
}

func (m Model) focusList() Model {
	m.Focus = FocusList
	m.newItemInput.Blur()
	m.clampCursor()
	return m
}

func (m Model) focusInput() Model {
	m.Focus = FocusInput
	m.newItemInput.Focus()
	return m
}
