package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/rsinha/todotui/internal/storage"
)

type recordedNote struct {
	Message  string
	Severity Severity
}

type recordingNotifier struct {
	notes []recordedNote
}

func (n *recordingNotifier) Notify(message string, severity Severity) {
	n.notes = append(n.notes, recordedNote{Message: message, Severity: severity})
}

func (n *recordingNotifier) last() recordedNote {
	if len(n.notes) == 0 {
		return recordedNote{}
	}
	return n.notes[len(n.notes)-1]
}

func setupRepository(t *testing.T) (*Repository, *recordingNotifier, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	notifier := &recordingNotifier{}
	repo := NewRepository(store, notifier)
	if err := repo.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return repo, notifier, store
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestAddAssignsDistinctIDs(t *testing.T) {
	repo, _, _ := setupRepository(t)
	ctx := context.Background()

	// Frozen clock: every add lands in the same millisecond.
	repo.now = fixedClock(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	texts := []string{"buy milk", "walk dog", "write report", "call bank"}
	for _, text := range texts {
		if _, ok := repo.Add(ctx, text); !ok {
			t.Fatalf("add %q rejected", text)
		}
	}
	items := repo.Snapshot()
	if len(items) != len(texts) {
		t.Fatalf("expected %d tasks, got %d", len(texts), len(items))
	}
	seen := make(map[int64]bool)
	for i, task := range items {
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
		if task.Text != texts[i] {
			t.Fatalf("expected insertion order preserved, got %q at %d", task.Text, i)
		}
		if task.Completed {
			t.Fatalf("new task %d unexpectedly completed", task.ID)
		}
	}
}

func TestAddIDsStrictlyIncrease(t *testing.T) {
	repo, _, _ := setupRepository(t)
	ctx := context.Background()
	repo.now = fixedClock(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	first, _ := repo.Add(ctx, "a")
	second, _ := repo.Add(ctx, "b")
	if second.ID <= first.ID {
		t.Fatalf("expected strictly increasing ids, got %d then %d", first.ID, second.ID)
	}
}

func TestAddRejectsBlankText(t *testing.T) {
	repo, notifier, _ := setupRepository(t)
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\t"} {
		if _, ok := repo.Add(ctx, text); ok {
			t.Fatalf("expected add %q rejected", text)
		}
		if repo.Len() != 0 {
			t.Fatalf("expected empty collection after rejected add, got %d", repo.Len())
		}
		if notifier.last().Severity != SeverityWarning {
			t.Fatalf("expected warning notification, got %+v", notifier.last())
		}
	}
}

func TestAddTrimsText(t *testing.T) {
	repo, _, _ := setupRepository(t)
	task, ok := repo.Add(context.Background(), "  buy milk  ")
	if !ok {
		t.Fatal("add rejected")
	}
	if task.Text != "buy milk" {
		t.Fatalf("expected trimmed text, got %q", task.Text)
	}
}

func TestToggleIsIdempotentInPairs(t *testing.T) {
	repo, _, _ := setupRepository(t)
	ctx := context.Background()
	task, _ := repo.Add(ctx, "buy milk")

	if !repo.Toggle(ctx, task.ID) {
		t.Fatal("toggle reported not found")
	}
	if !repo.Snapshot()[0].Completed {
		t.Fatal("expected completed after first toggle")
	}
	if !repo.Toggle(ctx, task.ID) {
		t.Fatal("second toggle reported not found")
	}
	if repo.Snapshot()[0].Completed {
		t.Fatal("expected not completed after second toggle")
	}
}

func TestToggleAbsentIDIsNoop(t *testing.T) {
	repo, _, _ := setupRepository(t)
	ctx := context.Background()
	repo.Add(ctx, "buy milk")

	if repo.Toggle(ctx, 424242) {
		t.Fatal("expected toggle of absent id to report false")
	}
	if repo.Len() != 1 {
		t.Fatalf("expected length unchanged, got %d", repo.Len())
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	repo, _, _ := setupRepository(t)
	ctx := context.Background()
	first, _ := repo.Add(ctx, "a")
	second, _ := repo.Add(ctx, "b")
	third, _ := repo.Add(ctx, "c")

	if !repo.Delete(ctx, second.ID) {
		t.Fatal("delete reported not found")
	}
	items := repo.Snapshot()
	if len(items) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != third.ID {
		t.Fatalf("expected remaining order [a c], got %+v", items)
	}

	if repo.Delete(ctx, second.ID) {
		t.Fatal("expected delete of absent id to report false")
	}
	if repo.Len() != 2 {
		t.Fatalf("expected length unchanged on absent delete, got %d", repo.Len())
	}
}

func TestClearCompletedNoopWithoutCompleted(t *testing.T) {
	repo, notifier, _ := setupRepository(t)
	ctx := context.Background()
	repo.Add(ctx, "a")

	confirmCalled := false
	removed := repo.ClearCompleted(ctx, func(string) bool {
		confirmCalled = true
		return true
	})
	if removed != 0 {
		t.Fatalf("expected 0 removed, got %d", removed)
	}
	if confirmCalled {
		t.Fatal("confirm must not be asked when nothing is completed")
	}
	if notifier.last().Severity != SeverityInfo {
		t.Fatalf("expected info notification, got %+v", notifier.last())
	}
}

func TestClearCompletedConfirmed(t *testing.T) {
	repo, _, _ := setupRepository(t)
	ctx := context.Background()
	a, _ := repo.Add(ctx, "a")
	b, _ := repo.Add(ctx, "b")
	c, _ := repo.Add(ctx, "c")
	repo.Toggle(ctx, a.ID)
	repo.Toggle(ctx, c.ID)

	modalPrompt := repo.ClearPrompt()
	var prompt string
	removed := repo.ClearCompleted(ctx, func(message string) bool {
		prompt = message
		return true
	})
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if prompt != "Delete 2 completed task(s)?" {
		t.Fatalf("unexpected prompt: %q", prompt)
	}
	if prompt != modalPrompt {
		t.Fatalf("confirm prompt %q diverges from ClearPrompt %q", prompt, modalPrompt)
	}
	items := repo.Snapshot()
	if len(items) != 1 || items[0].ID != b.ID {
		t.Fatalf("expected only incomplete task kept, got %+v", items)
	}
}

func TestClearCompletedDeclined(t *testing.T) {
	repo, notifier, _ := setupRepository(t)
	ctx := context.Background()
	a, _ := repo.Add(ctx, "a")
	repo.Toggle(ctx, a.ID)
	before := len(notifier.notes)

	removed := repo.ClearCompleted(ctx, func(string) bool { return false })
	if removed != 0 {
		t.Fatalf("expected 0 removed on decline, got %d", removed)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected state unchanged, got %d tasks", repo.Len())
	}
	if len(notifier.notes) != before {
		t.Fatalf("expected no notification on decline, got %+v", notifier.last())
	}
}

func TestLoadSeedsIDGeneration(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := NewRepository(store, nil)
	if err := first.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	task, _ := first.Add(ctx, "persisted")

	second := NewRepository(store, nil)
	if err := second.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	// Clock frozen before the persisted id: the monotonic guard must win.
	second.now = fixedClock(time.UnixMilli(task.ID - 1000))
	next, _ := second.Add(ctx, "later")
	if next.ID <= task.ID {
		t.Fatalf("expected id above persisted max %d, got %d", task.ID, next.ID)
	}
}

func TestLoadDefaultsOnMissingAndMalformed(t *testing.T) {
	ctx := context.Background()

	repo, _, store := setupRepository(t)
	if repo.Len() != 0 {
		t.Fatalf("expected empty collection on missing key, got %d", repo.Len())
	}

	if err := store.Set(ctx, StorageKey, "{not json"); err != nil {
		t.Fatalf("seed malformed: %v", err)
	}
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("load malformed: %v", err)
	}
	if repo.Len() != 0 {
		t.Fatalf("expected empty collection on malformed payload, got %d", repo.Len())
	}
}

func TestMutationsPersistImmediately(t *testing.T) {
	repo, _, store := setupRepository(t)
	ctx := context.Background()

	task, _ := repo.Add(ctx, "buy milk")
	assertPersistedEquals(t, store, repo)

	repo.Toggle(ctx, task.ID)
	assertPersistedEquals(t, store, repo)

	repo.Delete(ctx, task.ID)
	assertPersistedEquals(t, store, repo)
}

func assertPersistedEquals(t *testing.T, store storage.KeyValueStore, repo *Repository) {
	t.Helper()
	payload, err := store.Get(context.Background(), StorageKey)
	if err != nil {
		t.Fatalf("get persisted: %v", err)
	}
	persisted, err := DecodeTasks(payload)
	if err != nil {
		t.Fatalf("decode persisted: %v", err)
	}
	inMemory := repo.Snapshot()
	if len(persisted) != len(inMemory) {
		t.Fatalf("persisted %d tasks, in-memory %d", len(persisted), len(inMemory))
	}
	for i := range persisted {
		if persisted[i].ID != inMemory[i].ID || persisted[i].Text != inMemory[i].Text || persisted[i].Completed != inMemory[i].Completed {
			t.Fatalf("persisted[%d] = %+v, in-memory %+v", i, persisted[i], inMemory[i])
		}
	}
}
