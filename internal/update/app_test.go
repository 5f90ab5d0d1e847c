package update

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/store"
)

type failingSlot struct {
	storage.Slot
}

func (failingSlot) Set(context.Context, string, string) error { return errors.New("quota exceeded") }

func newTestModel(t *testing.T, slot storage.Slot) Model {
	t.Helper()
	st := store.New(slot)
	st.Load(context.Background())
	return NewModel(st)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = runes(" ")
)

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	if m.Focus != FocusInput {
		t.Fatalf("expected input focus, got %q", m.Focus)
	}
	if m.Keys.Quit != "q" || m.Keys.ClearCompleted != "C" {
		t.Fatalf("unexpected keys: %+v", m.Keys)
	}
}

func TestSubmitAddsAndClearsInput(t *testing.T) {
	slot := storage.NewMemorySlot()
	m := newTestModel(t, slot)
	m = send(t, m, runes("buy milk"), enter)

	items := m.store.Items()
	if len(items) != 1 || items[0].Text != "buy milk" || items[0].Completed {
		t.Fatalf("unexpected items: %#v", items)
	}
	if m.InputValue() != "" {
		t.Fatalf("expected cleared input after add, got %q", m.InputValue())
	}
	if _, err := slot.Get(context.Background(), store.DefaultKey); err != nil {
		t.Fatalf("expected add to be persisted: %v", err)
	}
}

func TestSubmitBlankLeavesInputAlone(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, runes("   "), enter)

	if len(m.store.Items()) != 0 {
		t.Fatalf("expected no items, got %#v", m.store.Items())
	}
	if m.InputValue() != "   " {
		t.Fatalf("expected input untouched on blank submit, got %q", m.InputValue())
	}
}

func TestSubmitMsgReadsInput(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m.SetInputValue("walk dog")
	m = send(t, m, SubmitMsg{})
	if len(m.store.Items()) != 1 || m.InputValue() != "" {
		t.Fatalf("expected add via submit msg, items=%#v input=%q", m.store.Items(), m.InputValue())
	}
}

func TestScenarioAddAddToggle(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, runes("a"), enter, runes("b"), enter)

	a := m.store.Items()[0]
	m = send(t, m, ToggleMsg{ID: a.ID})

	items := m.store.Items()
	if len(items) != 2 || items[0].Text != "a" || !items[0].Completed || items[1].Text != "b" || items[1].Completed {
		t.Fatalf("unexpected items: %#v", items)
	}
	out := m.View()
	if strings.Index(out, "[x] a") < 0 || strings.Index(out, "[ ] b") < 0 {
		t.Fatalf("expected rows for a (done) and b (open): %q", out)
	}
	if strings.Index(out, "[x] a") > strings.Index(out, "[ ] b") {
		t.Fatalf("expected a before b: %q", out)
	}
	if !strings.Contains(out, "1 item left") {
		t.Fatalf("expected summary in view: %q", out)
	}
}

func TestListKeysToggleDeleteClear(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, runes("one"), enter, runes("two"), enter, runes("three"), enter, tab)
	if m.Focus != FocusList {
		t.Fatalf("expected list focus after tab, got %q", m.Focus)
	}

	// cursor sits on the last added item; move to the top and toggle
	m = send(t, m, runes("k"), runes("k"), space)
	if !m.store.Items()[0].Completed {
		t.Fatalf("expected first item completed: %#v", m.store.Items())
	}

	m = send(t, m, runes("j"), runes("d"))
	items := m.store.Items()
	if len(items) != 2 || items[1].Text != "three" {
		t.Fatalf("expected second item deleted: %#v", items)
	}

	m = send(t, m, runes("C"))
	items = m.store.Items()
	if len(items) != 1 || items[0].Text != "three" {
		t.Fatalf("expected completed cleared: %#v", items)
	}
	if m.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.Cursor)
	}
	if m.Status.Text != "cleared 1 completed" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestToggleAndDeleteUnknownIDAreNoops(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, runes("a"), enter)
	before := m.store.Items()

	m = send(t, m, ToggleMsg{ID: "missing"}, DeleteMsg{ID: "missing"})
	after := m.store.Items()
	if len(after) != 1 || after[0] != before[0] {
		t.Fatalf("expected collection unchanged, got %#v", after)
	}
	if m.Status.IsError {
		t.Fatalf("expected no error for unknown id, got %+v", m.Status)
	}
}

func TestSaveFailureSurfacesInStatus(t *testing.T) {
	m := newTestModel(t, failingSlot{Slot: storage.NewMemorySlot()})
	m = send(t, m, runes("a"), enter)

	if len(m.store.Items()) != 1 {
		t.Fatalf("expected in-memory add despite save failure: %#v", m.store.Items())
	}
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "quota exceeded") {
		t.Fatalf("expected save error status, got %+v", m.Status)
	}
	if !strings.Contains(m.View(), "status: error: save failed") {
		t.Fatalf("expected error status in view: %q", m.View())
	}
}

func TestQuitKeyOnlyFromList(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, runes("q"))
	if m.Quitting || m.InputValue() != "q" {
		t.Fatalf("expected q typed into input, quitting=%v input=%q", m.Quitting, m.InputValue())
	}

	m = send(t, m, tab)
	updated, cmd := m.Update(runes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestCtrlCQuitsFromInput(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(Model).Quitting || cmd == nil {
		t.Fatal("expected ctrl+c to quit")
	}
}

func TestPaletteCommands(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, tab, runes("/"))
	if !m.Palette.Active {
		t.Fatal("expected palette active")
	}
	m = send(t, m, runes("add write docs"), enter)
	if m.Palette.Active {
		t.Fatal("expected palette closed after enter")
	}
	items := m.store.Items()
	if len(items) != 1 || items[0].Text != "write docs" {
		t.Fatalf("unexpected items after palette add: %#v", items)
	}

	m = send(t, m, runes("/"), runes("toggle "+items[0].ID), enter)
	if !m.store.Items()[0].Completed {
		t.Fatalf("expected palette toggle: %#v", m.store.Items())
	}

	m = send(t, m, runes("/"), runes("clear"), enter)
	if len(m.store.Items()) != 0 {
		t.Fatalf("expected palette clear: %#v", m.store.Items())
	}
}

func TestPaletteAndInputStoreSameText(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, runes("buy   milk"), enter)
	m = send(t, m, tab, runes("/"), runes("add buy   milk"), enter)

	items := m.store.Items()
	if len(items) != 2 {
		t.Fatalf("expected two items, got %#v", items)
	}
	for _, it := range items {
		if it.Text != "buy   milk" {
			t.Fatalf("expected inner spacing kept, got %q", it.Text)
		}
	}
}

func TestPaletteErrors(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, tab, runes("/"), runes("frobnicate"), enter)
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "unknown_command") {
		t.Fatalf("expected unknown command status, got %+v", m.Status)
	}

	m = send(t, m, runes("/"), runes("delete 123"), enter)
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "no item with id 123") {
		t.Fatalf("expected missing id status, got %+v", m.Status)
	}

	m = send(t, m, runes("/"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.Palette.Active || m.Status.Text != "command palette closed" {
		t.Fatalf("expected palette closed by esc, got %+v", m)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, tab, runes("?"))
	if !m.HelpVisible {
		t.Fatal("expected help visible")
	}
	if !strings.Contains(m.View(), "help:") {
		t.Fatalf("expected help panel in view: %q", m.View())
	}
	m = send(t, m, runes("?"))
	if m.HelpVisible {
		t.Fatal("expected help hidden")
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, SetStatusMsg{Text: "ready"})
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}

	m = send(t, m, AppErrorMsg{Err: errors.New("boom")})
	if m.LastError == nil || !m.Status.IsError || m.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}

	m = send(t, m, ClearStatusMsg{})
	if m.Status.Text != "" || m.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", m.Status)
	}
}

func TestViewIsStableAcrossRenders(t *testing.T) {
	m := newTestModel(t, storage.NewMemorySlot())
	m = send(t, m, runes("a"), enter)
	if m.View() != m.View() {
		t.Fatal("expected identical renders for unchanged state")
	}
}
