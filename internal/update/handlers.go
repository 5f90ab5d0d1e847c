package update

import (
	"fmt"

	"github.com/sandeepkv93/todo/internal/views"
	"go.uber.org/zap"
)

// handlers registers one store operation per interaction category.
func (m *Model) handlers() views.Handlers {
	return views.Handlers{
		OnAdd: func(text string) bool {
			it, ok := m.store.Add(m.ctx, text)
			if !ok {
				return false
			}
			m.Cursor = len(m.store.Items()) - 1
			m.afterMutation(fmt.Sprintf("added %q", it.Text))
			return true
		},
		OnToggle: func(id string) {
			if !m.store.Toggle(m.ctx, id) {
				m.logger.Debug("toggle ignored, no such item", zap.String("id", id))
			}
			m.afterMutation("toggled")
		},
		OnDelete: func(id string) {
			if !m.store.Delete(m.ctx, id) {
				m.logger.Debug("delete ignored, no such item", zap.String("id", id))
			}
			m.clampCursor()
			m.afterMutation("deleted")
		},
		OnClearCompleted: func() {
			n := m.store.ClearCompleted(m.ctx)
			m.clampCursor()
			m.afterMutation(fmt.Sprintf("cleared %d completed", n))
		},
	}
}

// dispatch sends ev through the registered handlers.
func (m Model) dispatch(ev views.Event) (Model, bool) {
	ok, err := views.Dispatch(ev, m.handlers())
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, false
	}
	return m, ok
}

// submit adds the input text. The field is cleared only when an item was
// actually added.
func (m Model) submit() Model {
	next, ok := m.dispatch(views.Event{Kind: views.EventAdd, Text: m.newItemInput.Value()})
	if ok {
		next.newItemInput.SetValue("")
	}
	return next
}

func (m *Model) afterMutation(done string) {
	if err := m.store.LastSaveErr(); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "save failed: " + err.Error(), IsError: true}
		return
	}
	m.Status = StatusBar{Text: done, IsError: false}
}

func (m *Model) clampCursor() {
	n := len(m.store.Items())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// selectedID is the id of the row under the cursor.
func (m Model) selectedID() (string, bool) {
	items := m.store.Items()
	if m.Cursor < 0 || m.Cursor >= len(items) {
		return "", false
	}
	return items[m.Cursor].ID, true
}
