package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/todo/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.paletteBindings() {
		plain = append(plain, fmt.Sprintf("`%s`: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) listBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "j/k", Action: "move cursor"},
		{Key: "space", Action: "toggle completed"},
		{Key: m.Keys.Delete, Action: "delete item"},
		{Key: m.Keys.ClearCompleted, Action: "clear completed"},
		{Key: m.Keys.SwitchFocus, Action: "switch to input"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) paletteBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "/add <text>", Action: "add an item"},
		{Key: "/toggle <id>", Action: "toggle an item"},
		{Key: "/delete <id>", Action: "delete an item"},
		{Key: "/clear", Action: "clear completed items"},
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.listBindings()))
	for _, kb := range m.listBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
