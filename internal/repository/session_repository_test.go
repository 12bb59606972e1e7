package repository

import (
	"errors"
	"sync"
	"testing"
	"time"

	"doc-compare/internal/domain"
	"doc-compare/pkg/logger"
)

func TestMemorySessionRepository_SaveGetDelete(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour, logger.NewNop())

	saved, err := repo.Save([2]string{"first", "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected session id to be generated")
	}

	got, err := repo.Get(saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Documents[0] != "first" || got.Documents[1] != "second" {
		t.Fatalf("unexpected documents %v", got.Documents)
	}

	if err := repo.Delete(saved.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := repo.Get(saved.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := repo.Delete(saved.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestMemorySessionRepository_SessionsAreIsolated(t *testing.T) {
	repo := NewMemorySessionRepository(0, logger.NewNop())

	a, _ := repo.Save([2]string{"a1", "a2"})
	b, _ := repo.Save([2]string{"b1", "b2"})
	if a.ID == b.ID {
		t.Fatalf("expected distinct session ids")
	}

	got, err := repo.Get(a.ID)
	if err != nil || got.Documents[0] != "a1" {
		t.Fatalf("expected first session untouched, got %v %v", got, err)
	}
}

func TestMemorySessionRepository_Expiry(t *testing.T) {
	repo := NewMemorySessionRepository(time.Minute, logger.NewNop())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	old, _ := repo.Save([2]string{"x", "y"})

	now = now.Add(2 * time.Minute)
	if _, err := repo.Get(old.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}

	// Saving evicts expired entries.
	fresh, _ := repo.Save([2]string{"x", "y"})
	repo.mu.RLock()
	_, stillThere := repo.sessions[old.ID]
	count := len(repo.sessions)
	repo.mu.RUnlock()
	if stillThere || count != 1 {
		t.Fatalf("expected only %s to remain, got %d sessions", fresh.ID, count)
	}
}

func TestMemorySessionRepository_ConcurrentAccess(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour, logger.NewNop())

	var wg sync.WaitGroup
	ids := make([]string, 50)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := repo.Save([2]string{"a", "b"})
			if err != nil {
				t.Errorf("save failed: %v", err)
				return
			}
			ids[i] = s.ID
			if _, err := repo.Get(s.ID); err != nil {
				t.Errorf("get failed: %v", err)
			}
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
