package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rsinha/todotui/internal/model"
	"github.com/rsinha/todotui/internal/storage"
)

// StorageKey is the key-value store slot holding the serialized collection.
const StorageKey = "todoTasks"

// Repository is the sole owner and writer of the task collection. Every
// mutation re-persists the whole collection before returning.
type Repository struct {
	store    storage.KeyValueStore
	notifier Notifier
	now      func() time.Time
	items    []model.Task
	lastID   int64
}

func NewRepository(store storage.KeyValueStore, notifier Notifier) *Repository {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &Repository{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// Load replaces the in-memory collection with the persisted one. A missing
// key or malformed payload yields an empty collection; only unexpected store
// failures are reported, and even then the repository stays usable.
func (r *Repository) Load(ctx context.Context) error {
	r.items = nil
	r.lastID = 0

	payload, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load tasks: %w", err)
	}
	items, err := DecodeTasks(payload)
	if err != nil {
		return nil
	}
	r.items = items
	for _, t := range items {
		if t.ID > r.lastID {
			r.lastID = t.ID
		}
	}
	return nil
}

// Add appends a task with the trimmed text. Blank input is rejected with a
// warning notification and no state change.
func (r *Repository) Add(ctx context.Context, text string) (model.Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		r.notifier.Notify("Please enter a task!", SeverityWarning)
		return model.Task{}, false
	}
	task := model.Task{
		ID:        r.nextID(),
		Text:      trimmed,
		Completed: false,
		CreatedAt: r.now().UTC(),
	}
	r.items = append(r.items, task)
	r.persist(ctx)
	r.notifier.Notify("Task added successfully!", SeveritySuccess)
	return task, true
}

// Toggle flips the completion flag of the task with the given id. An absent
// id is a silent no-op; stale UI rows racing a delete are expected.
func (r *Repository) Toggle(ctx context.Context, id int64) bool {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Completed = !r.items[i].Completed
			r.persist(ctx)
			return true
		}
	}
	return false
}

// Delete removes the task with the given id. An absent id is a silent no-op.
func (r *Repository) Delete(ctx context.Context, id int64) bool {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist(ctx)
			r.notifier.Notify("Task deleted!", SeverityInfo)
			return true
		}
	}
	return false
}

// ClearCompleted removes every completed task in one persisted mutation,
// after the injected confirm callback approves. Declining leaves state
// unchanged and issues no notification.
func (r *Repository) ClearCompleted(ctx context.Context, confirm ConfirmFunc) int {
	count := r.CompletedCount()
	if count == 0 {
		r.notifier.Notify("No completed tasks to clear!", SeverityInfo)
		return 0
	}
	if confirm == nil || !confirm(r.ClearPrompt()) {
		return 0
	}
	kept := make([]model.Task, 0, len(r.items)-count)
	for _, t := range r.items {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	r.items = kept
	r.persist(ctx)
	r.notifier.Notify(fmt.Sprintf("Cleared %d completed task(s)!", count), SeveritySuccess)
	return count
}

// Snapshot returns a copy of the collection in insertion order.
func (r *Repository) Snapshot() []model.Task {
	out := make([]model.Task, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Repository) Len() int {
	return len(r.items)
}

func (r *Repository) CompletedCount() int {
	count := 0
	for _, t := range r.items {
		if t.Completed {
			count++
		}
	}
	return count
}

// ClearPrompt is the confirmation message ClearCompleted surfaces for the
// current state. Callers driving the decision through a modal show the same
// string the injected confirm callback receives.
func (r *Repository) ClearPrompt() string {
	return fmt.Sprintf("Delete %d completed task(s)?", r.CompletedCount())
}

// nextID issues ids from the wall clock in milliseconds, bumped past the last
// issued id so two adds within the same millisecond still get distinct ids.
func (r *Repository) nextID() int64 {
	id := r.now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *Repository) persist(ctx context.Context) {
	payload, err := EncodeTasks(r.items)
	if err != nil {
		r.notifier.Notify("Could not save tasks: "+err.Error(), SeverityDanger)
		return
	}
	if err := r.store.Set(ctx, StorageKey, payload); err != nil {
		r.notifier.Notify("Could not save tasks: "+err.Error(), SeverityDanger)
	}
}
