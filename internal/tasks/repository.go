package tasks

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tgienger/dgboard/internal/models"
	"go.uber.org/zap"
)

// Listener receives a snapshot of the collection after every mutation
type Listener func([]models.Task)

type subscription struct {
	id int
	fn Listener
}

// Repository owns the in-memory task collection. All mutations go through
// it, so it is the single writer for the board.
type Repository struct {
	mu        sync.RWMutex
	tasks     []models.Task
	listeners []subscription
	nextSub   int
	// version counts mutations; it is bumped under mu
	version uint64

	// notifyMu orders deliveries; delivered is the newest version sent
	notifyMu  sync.Mutex
	delivered uint64

	log   *zap.Logger
	now   func() time.Time
	newID func() string
}

// NewRepository returns an empty repository using the wall clock and
// random UUIDs
func NewRepository(log *zap.Logger) *Repository {
	return NewRepositoryWith(log, time.Now, uuid.NewString)
}

// NewRepositoryWith lets callers control timestamps and ids
func NewRepositoryWith(log *zap.Logger, now func() time.Time, newID func() string) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{log: log, now: now, newID: newID}
}

// Replace installs a previously loaded collection without notifying
// listeners
func (r *Repository) Replace(tasks []models.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = cloneAll(tasks)
}

// Subscribe registers fn to run after each successful mutation. The
// returned func removes it. Listeners run one at a time and never see a
// snapshot older than one already delivered, so the last snapshot a
// listener receives is the current collection. A listener must not mutate
// the repository.
func (r *Repository) Subscribe(fn Listener) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSub
	r.nextSub++
	r.listeners = append(r.listeners, subscription{id: id, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, s := range r.listeners {
			if s.id == id {
				r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

// Create builds a task from the defaults plus opts and puts it at the front
// of the collection
func (r *Repository) Create(opts ...Option) (models.Task, error) {
	now := r.now().UTC()
	task := models.Task{
		ID:        r.newID(),
		Assignee:  models.Roster[0],
		Priority:  models.PriorityMedium,
		Status:    models.StatusBacklog,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&task)
	}
	if err := task.Validate(); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	r.mu.Lock()
	if r.indexOf(task.ID) >= 0 {
		r.mu.Unlock()
		return models.Task{}, fmt.Errorf("%w: duplicate id %s", ErrInvalidTask, task.ID)
	}
	r.tasks = append([]models.Task{task}, r.tasks...)
	version, snapshot, listeners := r.snapshotLocked()
	r.mu.Unlock()

	r.log.Debug("task created", zap.String("id", task.ID), zap.String("status", string(task.Status)))
	r.notify(version, listeners, snapshot)
	return task.Clone(), nil
}

// Update applies opts to the task with the given id. Fields without an
// option keep their values.
func (r *Repository) Update(id string, opts ...Option) (models.Task, error) {
	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		r.log.Info("update of missing task ignored", zap.String("id", id))
		return models.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}

	task := r.tasks[i].Clone()
	for _, opt := range opts {
		opt(&task)
	}
	// id and createdAt are immutable no matter what opts did
	task.ID = r.tasks[i].ID
	task.CreatedAt = r.tasks[i].CreatedAt
	task.UpdatedAt = r.tasks[i].UpdatedAt
	if now := r.now().UTC(); now.After(task.UpdatedAt) {
		task.UpdatedAt = now
	}

	if err := task.Validate(); err != nil {
		r.mu.Unlock()
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	r.tasks[i] = task
	version, snapshot, listeners := r.snapshotLocked()
	r.mu.Unlock()

	r.log.Debug("task updated", zap.String("id", id))
	r.notify(version, listeners, snapshot)
	return task.Clone(), nil
}

// SetStatus moves a task to another column
func (r *Repository) SetStatus(id string, status models.Status) (models.Task, error) {
	return r.Update(id, WithStatus(status))
}

// Get returns a copy of the task with the given id
func (r *Repository) Get(id string) (models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return r.tasks[i].Clone(), nil
}

// List returns a copy of the collection in board order
func (r *Repository) List() []models.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.tasks)
}

// Len returns the number of tasks
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

func (r *Repository) indexOf(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshotLocked stamps the mutation just applied and copies what the
// listeners need. r.mu must be held.
func (r *Repository) snapshotLocked() (uint64, []models.Task, []Listener) {
	r.version++
	if len(r.listeners) == 0 {
		return r.version, nil, nil
	}
	fns := make([]Listener, len(r.listeners))
	for i, s := range r.listeners {
		fns[i] = s.fn
	}
	return r.version, cloneAll(r.tasks), fns
}

// notify delivers the snapshot of version unless a newer one already went
// out
func (r *Repository) notify(version uint64, listeners []Listener, snapshot []models.Task) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	if version <= r.delivered {
		r.log.Debug("stale snapshot skipped", zap.Uint64("version", version), zap.Uint64("delivered", r.delivered))
		return
	}
	r.delivered = version
	for _, fn := range listeners {
		fn(cloneAll(snapshot))
	}
}

func cloneAll(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].Clone()
	}
	return out
}
