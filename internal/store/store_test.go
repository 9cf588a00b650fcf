package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/dgboard/internal/db"
	"github.com/tgienger/dgboard/internal/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2025, 5, 20, 10, 30, 0, 0, time.UTC)

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("seed-%d", n)
	}
}

func newStore(t *testing.T, kv KV) (*Store, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	s := New(kv, zap.New(core))
	s.now = func() time.Time { return fixedNow }
	s.newID = counterIDs()
	return s, logs
}

func memoryDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

// mapKV is an in-memory KV whose failures can be switched on
type mapKV struct {
	slots   map[string]string
	failGet error
	failSet error
}

func newMapKV() *mapKV { return &mapKV{slots: map[string]string{}} }

func (m *mapKV) Get(key string) (string, bool, error) {
	if m.failGet != nil {
		return "", false, m.failGet
	}
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *mapKV) Set(key, value string) error {
	if m.failSet != nil {
		return m.failSet
	}
	m.slots[key] = value
	return nil
}

func TestLoad_FirstRunSeedsAndPersists(t *testing.T) {
	database := memoryDB(t)
	s, _ := newStore(t, database)

	tasks := s.Load()
	assert.Equal(t, Seed(fixedNow, counterIDs()), tasks)

	raw, found, err := database.Get(TasksKey)
	require.NoError(t, err)
	require.True(t, found)
	saved, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, tasks, saved)
}

func TestLoad_MalformedFallsBackToSeed(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"oops"`,
		"not an array":   `{"id":"a"}`,
		"null":           `null`,
		"unknown status": `[{"id":"a","title":"x","assignee":"Aarav","priority":"Low","status":"Blocked"}]`,
		"empty title":    `[{"id":"a","title":"","assignee":"Aarav","priority":"Low","status":"Done"}]`,
		"bad date":       `[{"id":"a","title":"x","assignee":"Aarav","priority":"Low","status":"Done","dueDate":"tomorrow"}]`,
		"duplicate ids": `[{"id":"a","title":"x","assignee":"Aarav","priority":"Low","status":"Done"},
			{"id":"a","title":"y","assignee":"Aarav","priority":"Low","status":"Done"}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			kv := newMapKV()
			kv.slots[TasksKey] = raw
			s, logs := newStore(t, kv)

			tasks := s.Load()
			assert.Equal(t, Seed(fixedNow, counterIDs()), tasks)
			assert.Equal(t, 1, logs.FilterMessage("saved tasks are malformed, using seed board").Len())
		})
	}
}

func TestLoad_ReadErrorFallsBackToSeed(t *testing.T) {
	kv := newMapKV()
	kv.failGet = errors.New("disk gone")
	s, logs := newStore(t, kv)

	tasks := s.Load()
	assert.Len(t, tasks, 4)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage("reading saved tasks failed, using seed board").Len())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	database := memoryDB(t)
	s, _ := newStore(t, database)

	created := fixedNow.Add(-48 * time.Hour)
	tasks := []models.Task{
		{
			ID:            "b",
			Title:         "Second first",
			Description:   "order must be preserved",
			Assignee:      "Ishaan",
			Priority:      models.PriorityHigh,
			Status:        models.StatusReview,
			StartDate:     models.NewDate(2025, 5, 1),
			DueDate:       models.NewDate(2025, 5, 31),
			EstimateHours: 2.5,
			Tags:          []string{"ui", "ui", "polish"},
			CreatedAt:     created,
			UpdatedAt:     fixedNow.Add(123 * time.Nanosecond),
		},
		{
			ID:        "a",
			Title:     "No dates",
			Assignee:  "Kabir",
			Priority:  models.PriorityLow,
			Status:    models.StatusBacklog,
			Tags:      []string{},
			CreatedAt: created,
			UpdatedAt: created,
		},
	}

	require.NoError(t, s.Save(tasks))
	assert.Equal(t, tasks, s.Load())
}

func TestSave_FailureIsReturnedAndLogged(t *testing.T) {
	kv := newMapKV()
	kv.failSet = errors.New("quota exceeded")
	s, logs := newStore(t, kv)

	err := s.Save(Seed(fixedNow, counterIDs()))
	assert.ErrorIs(t, err, kv.failSet)

	entries := logs.FilterMessage("saving tasks failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(4), entries[0].ContextMap()["count"])
}

func TestLoad_SaveFailureDuringSeedIsNotFatal(t *testing.T) {
	kv := newMapKV()
	kv.failSet = errors.New("read-only")
	s, _ := newStore(t, kv)

	assert.Len(t, s.Load(), 4)
}

func TestEncode_EmptyCollectionIsArray(t *testing.T) {
	raw, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	tasks, err := Decode(raw)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDecode_AcceptsOriginalWireFormat(t *testing.T) {
	raw := `[{"id":"6f1c","title":"API contracts","description":"Document endpoints",
		"assignee":"Kabir","priority":"Low","status":"Done","startDate":"","dueDate":"2025-05-20",
		"estimateHours":6,"tags":["docs"],
		"createdAt":"2025-05-20T10:30:00.000Z","updatedAt":"2025-05-20T10:30:00.000Z"}]`

	tasks, err := Decode(raw)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.StatusDone, tasks[0].Status)
	assert.True(t, tasks[0].StartDate.IsZero())
	assert.Equal(t, "2025-05-20", tasks[0].DueDate.String())
	assert.Equal(t, fixedNow, tasks[0].CreatedAt)
}

func TestTheme(t *testing.T) {
	database := memoryDB(t)
	s, _ := newStore(t, database)

	assert.Equal(t, models.ThemeDark, s.Theme())

	require.NoError(t, s.SetTheme(models.ThemeLight))
	assert.Equal(t, models.ThemeLight, s.Theme())

	raw, _, err := database.Get(ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "light", raw)
}

func TestTheme_UnreadableDefaultsToDark(t *testing.T) {
	kv := newMapKV()
	kv.failGet = errors.New("boom")
	s, _ := newStore(t, kv)
	assert.Equal(t, models.ThemeDark, s.Theme())
}

func TestSeed_Scenario(t *testing.T) {
	seed := Seed(fixedNow, counterIDs())
	require.Len(t, seed, 4)

	var statuses []models.Status
	for _, task := range seed {
		require.NoError(t, task.Validate())
		statuses = append(statuses, task.Status)
	}
	assert.Equal(t, []models.Status{
		models.StatusInProgress, models.StatusReview, models.StatusBacklog, models.StatusDone,
	}, statuses)
	assert.Equal(t, "2025-05-20", seed[3].DueDate.String())
}
