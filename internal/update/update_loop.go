package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}

		keyStr := typed.String()
		switch {
		case keyStr == "ctrl+c",
			keyStr == m.Keys.Quit && m.Focus == FocusList:
			m.Quitting = true
			return m, tea.Quit
		case keyStr == m.Keys.Help && m.Focus == FocusList:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case keyStr == m.Keys.Palette && m.Focus == FocusList:
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		}

		if m.Focus == FocusInput {
			return m.handleInputKey(typed), nil
		}
		return m.handleListKey(typed), nil
	case tea.WindowSizeMsg:
		if w := typed.Width - 16; w > 10 && w < 48 {
			m.newItemInput.Width = w
		}
		return m, nil
	case SubmitMsg:
		return m.submit(), nil
	case ToggleMsg:
		next, _ := m.dispatch(views.Event{Kind: views.EventToggle, ID: typed.ID})
		return next, nil
	case DeleteMsg:
		next, _ := m.dispatch(views.Event{Kind: views.EventDelete, ID: typed.ID})
		return next, nil
	case ClearCompletedMsg:
		next, _ := m.dispatch(views.Event{Kind: views.EventClearCompleted})
		return next, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	side := m.renderCommandPalette() + m.renderHelpIfVisible()

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("todo | focus: %s", m.Focus),
		InputPane:  views.InputPane(m.newItemInput.View(), m.Focus == FocusInput),
		ListPane:   views.RenderList(m.listData()),
		SidePane:   side,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: enter add | %s switch | space toggle | %s delete | %s clear completed | %s cmd | %s help | %s quit",
			m.Keys.SwitchFocus, m.Keys.Delete, m.Keys.ClearCompleted, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}

// listData projects the store's items for the list view.
func (m Model) listData() views.ListData {
	items := m.store.Items()
	rows := make([]views.RowData, 0, len(items))
	for i, it := range items {
		rows = append(rows, views.RowData{
			ID:        it.ID,
			Text:      it.Text,
			Completed: it.Completed,
			Selected:  i == m.Cursor,
		})
	}
	return views.ListData{
		Rows:      rows,
		Remaining: m.store.Remaining(),
		Focused:   m.Focus == FocusList,
	}
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value())
}
