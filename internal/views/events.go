package views

import "fmt"

type EventKind string

const (
	EventAdd            EventKind = "add"
	EventToggle         EventKind = "toggle"
	EventDelete         EventKind = "delete"
	EventClearCompleted EventKind = "clear_completed"
)

// Event is one user interaction with the list surface. ID is set for
// toggle and delete, Text for add.
type Event struct {
	Kind EventKind
	ID   string
	Text string
}

// Handlers holds one callback per interaction category.
type Handlers struct {
	OnAdd            func(text string) bool
	OnToggle         func(id string)
	OnDelete         func(id string)
	OnClearCompleted func()
}

type DispatchError struct {
	Kind    EventKind
	Message string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Dispatch routes ev to its handler. For add events the bool reports whether
// the handler accepted the text; other events report true once handled.
func Dispatch(ev Event, h Handlers) (bool, error) {
	switch ev.Kind {
	case EventAdd:
		if h.OnAdd == nil {
			return false, &DispatchError{Kind: ev.Kind, Message: "add handler not registered"}
		}
		return h.OnAdd(ev.Text), nil
	case EventToggle:
		if h.OnToggle == nil {
			return false, &DispatchError{Kind: ev.Kind, Message: "toggle handler not registered"}
		}
		h.OnToggle(ev.ID)
		return true, nil
	case EventDelete:
		if h.OnDelete == nil {
			return false, &DispatchError{Kind: ev.Kind, Message: "delete handler not registered"}
		}
		h.OnDelete(ev.ID)
		return true, nil
	case EventClearCompleted:
		if h.OnClearCompleted == nil {
			return false, &DispatchError{Kind: ev.Kind, Message: "clear handler not registered"}
		}
		h.OnClearCompleted()
		return true, nil
	default:
		return false, &DispatchError{Kind: ev.Kind, Message: "unknown event"}
	}
}
