package store

import (
	"fmt"
	"sync"
	"testing"
)

type widget struct {
	Name string `json:"name"`
}

func TestSetGetDelete(t *testing.T) {
	s := New[widget]("wid")

	s.Set("wid_1", widget{Name: "a"})
	got, ok := s.Get("wid_1")
	if !ok || got.Name != "a" {
		t.Fatalf("expected widget a, got %v (ok=%v)", got, ok)
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("expected missing ID to not resolve")
	}

	if !s.Delete("wid_1") {
		t.Error("expected delete to report existing item")
	}
	if s.Delete("wid_1") {
		t.Error("expected second delete to report missing item")
	}
	if s.Count() != 0 {
		t.Errorf("expected empty store, got %d items", s.Count())
	}
}

func TestNextIDFormat(t *testing.T) {
	s := New[widget]("wid")
	if id := s.NextID(); id != "wid_000001" {
		t.Errorf("expected wid_000001, got %s", id)
	}
	if id := s.NextID(); id != "wid_000002" {
		t.Errorf("expected wid_000002, got %s", id)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := New[widget]("wid")
	for i := 0; i < 5; i++ {
		s.Set(fmt.Sprintf("wid_%d", i), widget{Name: fmt.Sprintf("w%d", i)})
	}

	// Overwriting keeps the original position.
	s.Set("wid_2", widget{Name: "updated"})

	items := s.List()
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	if items[2].Name != "updated" {
		t.Errorf("expected overwritten item at position 2, got %s", items[2].Name)
	}

	ids := s.ListIDs()
	if ids[0] != "wid_0" || ids[4] != "wid_4" {
		t.Errorf("unexpected ID order: %v", ids)
	}
}

func TestResetClearsItemsAndCounter(t *testing.T) {
	s := New[widget]("wid")
	s.Set(s.NextID(), widget{Name: "a"})
	s.Reset()

	if s.Count() != 0 {
		t.Errorf("expected empty store after reset, got %d", s.Count())
	}
	if id := s.NextID(); id != "wid_000001" {
		t.Errorf("expected counter reset, got %s", id)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New[widget]("wid")
	s.Set("wid_b", widget{Name: "b"})
	s.Set("wid_a", widget{Name: "a"})

	snap := s.Snapshot()
	if len(snap) != 2 || snap["wid_a"].Name != "a" {
		t.Fatalf("unexpected snapshot: %v", snap)
	}

	delete(snap, "wid_a")
	if s.Count() != 2 {
		t.Error("mutating the snapshot must not affect the store")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New[widget]("wid")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := s.NextID()
			s.Set(id, widget{Name: fmt.Sprintf("w%d", n)})
			s.Get(id)
			s.List()
		}(i)
	}
	wg.Wait()

	if s.Count() != 50 {
		t.Errorf("expected 50 items, got %d", s.Count())
	}
}
