package model

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrMissingID   = errors.New("model: item id is required")
	ErrMissingText = errors.New("model: item text is required")
)

// Item is a single list entry. ID and Text never change after creation.
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (it Item) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(it.Text) == "" {
		return ErrMissingText
	}
	return nil
}

// Remaining counts items that are not completed.
func Remaining(items []Item) int {
	n := 0
	for _, it := range items {
		if !it.Completed {
			n++
		}
	}
	return n
}

func Find(items []Item, id string) (int, bool) {
	for i, it := range items {
		if it.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Record is the loosely typed shape of a stored item. Values are kept raw
// so that a record written by another tool still loads.
type Record struct {
	ID        json.RawMessage `json:"id"`
	Text      json.RawMessage `json:"text"`
	Completed json.RawMessage `json:"completed"`
}

// Normalize coerces a stored record into an Item. Completed follows
// truthiness: false, 0, "", null and a missing field are false.
func Normalize(r Record) Item {
	return Item{
		ID:        rawString(r.ID),
		Text:      rawString(r.Text),
		Completed: truthy(r.Completed),
	}
}

func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" {
		return ""
	}
	return trimmed
}

func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
