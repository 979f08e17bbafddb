package session

import (
	"testing"
	"time"

	"github.com/paperlens/backend/internal/testutil"
)

func TestResultStore(t *testing.T) {
	s := NewStore(time.Minute, 10)

	a := testutil.NewTestAnalysis("Stored Paper")
	s.Put(a)

	got, ok := s.Get(a.ID)
	if !ok {
		t.Fatalf("Analysis not found after Put")
	}
	if got.Title != "Stored Paper" {
		t.Errorf("Expected title %q, got %q", "Stored Paper", got.Title)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 stored analysis, got %d", s.Len())
	}

	if _, ok := s.Get("unknown-id"); ok {
		t.Error("Expected unknown ID to miss")
	}
}

func TestResultStorePutStampsExpiry(t *testing.T) {
	s := NewStore(time.Hour, 10)

	a := testutil.NewTestAnalysis("Expiry Paper")
	a.ExpiresAt = time.Time{}
	s.Put(a)

	got, _ := s.Get(a.ID)
	if got.ExpiresAt.Before(time.Now().Add(30 * time.Minute)) {
		t.Errorf("Expected expiry about an hour out, got %v", got.ExpiresAt)
	}
}

func TestResultStoreCleanupExpired(t *testing.T) {
	s := NewStore(200*time.Millisecond, 10)

	a := testutil.NewTestAnalysis("Aging Paper")
	s.Put(a)

	// Still fresh
	if removed := s.CleanupExpired(); removed != 0 {
		t.Errorf("Expected no removals yet, got %d", removed)
	}

	time.Sleep(300 * time.Millisecond)

	if removed := s.CleanupExpired(); removed != 1 {
		t.Errorf("Expected 1 removal after TTL, got %d", removed)
	}
	if _, ok := s.Get(a.ID); ok {
		t.Error("Expected aged analysis to be gone")
	}
}

func TestResultStoreTouchExtendsLife(t *testing.T) {
	s := NewStore(200*time.Millisecond, 10)

	a := testutil.NewTestAnalysis("Touched Paper")
	s.Put(a)

	// Keep touching past the original TTL
	time.Sleep(120 * time.Millisecond)
	if !s.Touch(a.ID) {
		t.Fatalf("Touch failed for stored analysis")
	}
	time.Sleep(120 * time.Millisecond)

	if removed := s.CleanupExpired(); removed != 0 {
		t.Errorf("Expected touched analysis to survive, %d removed", removed)
	}

	if s.Touch("unknown-id") {
		t.Error("Expected Touch to fail for unknown ID")
	}
}

func TestResultStoreEvictsOldest(t *testing.T) {
	s := NewStore(time.Minute, 2)

	first := testutil.NewTestAnalysis("First")
	second := testutil.NewTestAnalysis("Second")
	third := testutil.NewTestAnalysis("Third")

	s.Put(first)
	time.Sleep(5 * time.Millisecond)
	s.Put(second)
	time.Sleep(5 * time.Millisecond)
	s.Put(third)

	if s.Len() != 2 {
		t.Fatalf("Expected store capped at 2, got %d", s.Len())
	}
	if _, ok := s.Get(first.ID); ok {
		t.Error("Expected oldest analysis to be evicted")
	}
	if _, ok := s.Get(second.ID); !ok {
		t.Error("Expected second analysis to survive")
	}
	if _, ok := s.Get(third.ID); !ok {
		t.Error("Expected newest analysis to survive")
	}
}

func TestResultStoreList(t *testing.T) {
	s := NewStore(time.Minute, 10)

	older := testutil.NewTestAnalysis("Older Paper")
	older.CreatedAt = time.Now().Add(-time.Minute)
	newer := testutil.NewTestAnalysis("Newer Paper")
	newer.CreatedAt = time.Now()

	s.Put(older)
	s.Put(newer)

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(list))
	}
	if list[0].Title != "Newer Paper" {
		t.Errorf("Expected newest first, got %q", list[0].Title)
	}
	if list[1].Title != "Older Paper" {
		t.Errorf("Expected oldest last, got %q", list[1].Title)
	}
	if list[0].ID != newer.ID {
		t.Errorf("Expected summary to carry the analysis ID")
	}
}

func TestResultStoreDelete(t *testing.T) {
	s := NewStore(time.Minute, 10)

	a := testutil.NewTestAnalysis("Doomed Paper")
	s.Put(a)

	if !s.Delete(a.ID) {
		t.Fatalf("Delete failed for stored analysis")
	}
	if _, ok := s.Get(a.ID); ok {
		t.Error("Expected deleted analysis to be gone")
	}
	if s.Delete(a.ID) {
		t.Error("Expected second delete to report missing")
	}
}
