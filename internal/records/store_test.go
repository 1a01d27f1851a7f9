package records

import (
	"context"
	"errors"
	"testing"
)

type failingStore struct {
	*MemoryStore
	fail Collection
}

func (s failingStore) List(ctx context.Context, studentID string, c Collection) ([]Record, error) {
	if c == s.fail {
		return nil, errors.New("permission denied")
	}
	return s.MemoryStore.List(ctx, studentID, c)
}

func TestParseCollection(t *testing.T) {
	got, err := ParseCollection(" Sports ")
	if err != nil || got != Sports {
		t.Fatalf("ParseCollection = %q, %v", got, err)
	}
	if _, err := ParseCollection("gallery"); !errors.Is(err, ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
}

func TestMemoryStoreKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, subject := range []string{"Math", "Science", "Art"} {
		if err := store.Put(ctx, "s1", Academic, Record{"subject": subject}); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	recs, err := store.List(ctx, "s1", Academic)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 3 || recs[0]["subject"] != "Math" || recs[2]["subject"] != "Art" {
		t.Fatalf("unexpected records: %v", recs)
	}
	other, err := store.List(ctx, "s2", Academic)
	if err != nil || len(other) != 0 {
		t.Fatalf("expected no records for another student, got %v, %v", other, err)
	}
}

func TestFetchAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Put(ctx, "s1", Academic, Record{"subject": "Math"})
	_ = store.Put(ctx, "s1", Journal, Record{"mood": "happy"})
	_ = store.Put(ctx, "s1", Profile, Record{"name": "Ada"})

	set, err := FetchAll(ctx, store, "s1")
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(set.Academic) != 1 || len(set.Journal) != 1 || len(set.Profile) != 1 {
		t.Fatalf("unexpected set: %+v", set)
	}
	if len(set.Get(Sports)) != 0 {
		t.Fatalf("expected no sports records")
	}
}

func TestFetchAllFailsWhole(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	_ = mem.Put(ctx, "s1", Academic, Record{"subject": "Math"})

	set, err := FetchAll(ctx, failingStore{MemoryStore: mem, fail: Feedback}, "s1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(set.Academic) != 0 {
		t.Fatalf("expected empty set on failure, got %+v", set)
	}
}

func TestFetchAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FetchAll(ctx, NewMemoryStore(), "s1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
