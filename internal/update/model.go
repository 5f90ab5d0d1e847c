package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/todo/internal/store"
	"go.uber.org/zap"
)

type Focus string

const (
	FocusInput Focus = "input"
	FocusList  Focus = "list"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Toggle         string
	Delete         string
	ClearCompleted string
	SwitchFocus    string
	Palette        string
	Help           string
	Quit           string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the Bubble Tea controller. It owns no items itself: every change
// goes through the store and the list is re-rendered from store.Items().
type Model struct {
	Focus       Focus
	Cursor      int
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	ctx          context.Context
	store        *store.Store
	logger       *zap.Logger
	newItemInput textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

// SubmitMsg activates the add control with whatever the input holds.
type SubmitMsg struct{}

type ToggleMsg struct {
	ID string
}

type DeleteMsg struct {
	ID string
}

type ClearCompletedMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type Option func(*Model)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// NewModel wraps a loaded store.
func NewModel(st *store.Store, opts ...Option) Model {
	m := Model{
		Focus: FocusInput,
		Keys: GlobalKeyMap{
			Toggle:         " ",
			Delete:         "d",
			ClearCompleted: "C",
			SwitchFocus:    "tab",
			Palette:        "/",
			Help:           "?",
			Quit:           "q",
		},
		ctx:    context.Background(),
		store:  st,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.newItemInput = textinput.New()
	m.newItemInput.Prompt = "add> "
	m.newItemInput.Placeholder = "What needs to be done?"
	m.newItemInput.CharLimit = 256
	m.newItemInput.Width = 48
	m.newItemInput.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.helpModel.ShowAll = true
}

// InputValue is the current text of the new-item field.
func (m Model) InputValue() string {
	return m.newItemInput.Value()
}

func (m *Model) SetInputValue(v string) {
	m.newItemInput.SetValue(v)
}
