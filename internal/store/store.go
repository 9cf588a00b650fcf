package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tgienger/dgboard/internal/models"
	"go.uber.org/zap"
)

// Slot keys in the key-value store
const (
	TasksKey = "dg_tasks_v1"
	ThemeKey = "dg_theme"
)

// KV is a durable string slot store
type KV interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// Store persists the task collection and the theme preference. It never
// fails a caller over bad stored data: anything unreadable is replaced by
// the seed board.
type Store struct {
	kv    KV
	log   *zap.Logger
	now   func() time.Time
	newID func() string
}

func New(kv KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log, now: time.Now, newID: uuid.NewString}
}

// Load returns the saved collection, or the seed board when nothing usable
// is stored. A seeded board is written back right away.
func (s *Store) Load() []models.Task {
	raw, found, err := s.kv.Get(TasksKey)
	switch {
	case err != nil:
		s.log.Warn("reading saved tasks failed, using seed board", zap.Error(err))
	case !found:
		s.log.Info("no saved tasks, using seed board")
	default:
		tasks, err := Decode(raw)
		if err == nil {
			return tasks
		}
		s.log.Warn("saved tasks are malformed, using seed board", zap.Error(err))
	}

	seed := Seed(s.now(), s.newID)
	s.Save(seed)
	return seed
}

// Save writes the collection. Errors are logged and returned so callers can
// ignore them without losing the record.
func (s *Store) Save(tasks []models.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		s.log.Error("encoding tasks failed", zap.Error(err))
		return err
	}
	if err := s.kv.Set(TasksKey, data); err != nil {
		s.log.Warn("saving tasks failed", zap.Error(err), zap.Int("count", len(tasks)))
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// Theme returns the stored theme, dark when unset or unreadable
func (s *Store) Theme() models.Theme {
	raw, _, err := s.kv.Get(ThemeKey)
	if err != nil {
		s.log.Warn("reading theme failed", zap.Error(err))
	}
	return models.ParseTheme(raw)
}

func (s *Store) SetTheme(theme models.Theme) error {
	if err := s.kv.Set(ThemeKey, string(theme)); err != nil {
		s.log.Warn("saving theme failed", zap.Error(err))
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Encode serializes tasks as the JSON array kept in the tasks slot
func Encode(tasks []models.Task) (string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses and validates a stored collection
func Decode(raw string) ([]models.Task, error) {
	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		return nil, fmt.Errorf("tasks slot holds null")
	}

	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("task %d: duplicate id %s", i, t.ID)
		}
		seen[t.ID] = true
	}
	return tasks, nil
}
