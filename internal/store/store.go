package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/storage"
	"go.uber.org/zap"
)

const DefaultKey = "todos"

// Store owns the collection and writes it through to a slot after every
// mutation. The in-memory collection stays authoritative when a write fails.
type Store struct {
	slot    storage.Slot
	key     string
	ids     IDGenerator
	logger  *zap.Logger
	items   []model.Item
	saveErr error
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if strings.TrimSpace(key) != "" {
			s.key = key
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Store) {
		if ids != nil {
			s.ids = ids
		}
	}
}

func New(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:   slot,
		key:    DefaultKey,
		ids:    NewMonotonicIDs(nil),
		logger: zap.NewNop(),
		items:  []model.Item{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the collection with the stored one. Any problem reading or
// decoding leaves an empty collection; nothing is returned to the caller.
func (s *Store) Load(ctx context.Context) {
	s.items = []model.Item{}
	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Debug("no stored items", zap.String("key", s.key))
			return
		}
		s.logger.Error("failed to read stored items", zap.String("key", s.key), zap.Error(err))
		return
	}
	items, err := decode(raw)
	if err != nil {
		s.logger.Error("failed to parse stored items", zap.String("key", s.key), zap.Error(err))
		return
	}
	for _, it := range items {
		s.ids.Observe(it.ID)
	}
	s.items = items
	s.logger.Debug("loaded items", zap.Int("count", len(items)))
}

func decode(raw string) ([]model.Item, error) {
	if strings.TrimSpace(raw) == "" {
		return []model.Item{}, nil
	}
	var top any
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	elems, ok := top.([]any)
	if !ok {
		return nil, fmt.Errorf("stored value is %T, not an array", top)
	}
	for i, e := range elems {
		if _, ok := e.(map[string]any); !ok {
			return nil, fmt.Errorf("stored element %d is %T, not an object", i, e)
		}
	}
	var records []model.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("json unmarshal records: %w", err)
	}
	out := make([]model.Item, 0, len(records))
	for _, r := range records {
		out = append(out, model.Normalize(r))
	}
	return out, nil
}

// Save overwrites the slot with the full collection. The error is logged and
// also returned so callers can surface it.
func (s *Store) Save(ctx context.Context) error {
	b, err := json.Marshal(s.items)
	if err != nil {
		s.saveErr = fmt.Errorf("json marshal: %w", err)
	} else if err := s.slot.Set(ctx, s.key, string(b)); err != nil {
		s.saveErr = fmt.Errorf("save items: %w", err)
	} else {
		s.saveErr = nil
		return nil
	}
	s.logger.Error("failed to save items", zap.String("key", s.key), zap.Int("count", len(s.items)), zap.Error(s.saveErr))
	return s.saveErr
}

// Add appends a new open item. Blank text is ignored and nothing is saved.
func (s *Store) Add(ctx context.Context, text string) (model.Item, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Item{}, false
	}
	it := model.Item{ID: s.nextID(), Text: trimmed}
	s.items = append(s.items, it)
	_ = s.Save(ctx)
	return it, true
}

// nextID draws ids until one is not already in the collection.
func (s *Store) nextID() string {
	for {
		id := s.ids.Next()
		if _, taken := model.Find(s.items, id); !taken {
			return id
		}
		s.logger.Debug("skipping id already in use", zap.String("id", id))
	}
}

func (s *Store) Toggle(ctx context.Context, id string) bool {
	i, ok := model.Find(s.items, id)
	if ok {
		s.items[i].Completed = !s.items[i].Completed
	}
	_ = s.Save(ctx)
	return ok
}

func (s *Store) Delete(ctx context.Context, id string) bool {
	i, ok := model.Find(s.items, id)
	if ok {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	_ = s.Save(ctx)
	return ok
}

// ClearCompleted drops every completed item and reports how many went.
func (s *Store) ClearCompleted(ctx context.Context) int {
	kept := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if !it.Completed {
			kept = append(kept, it)
		}
	}
	removed := len(s.items) - len(kept)
	s.items = kept
	_ = s.Save(ctx)
	return removed
}

// Items returns a copy of the collection in display order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Remaining() int { return model.Remaining(s.items) }

func (s *Store) LastSaveErr() error { return s.saveErr }
