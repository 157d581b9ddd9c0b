package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"colab/internal/domain/matching"
	"colab/internal/domain/profile"
)

type mockMatchCache struct {
	store   map[string][]matching.Match
	deleted []string
	sets    int
}

func newMockMatchCache() *mockMatchCache {
	return &mockMatchCache{store: map[string][]matching.Match{}}
}

func (m *mockMatchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	v, ok := m.store[key]
	if !ok {
		return false, nil
	}
	*(out.(*[]matching.Match)) = v
	return true, nil
}

func (m *mockMatchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.store[key] = value.([]matching.Match)
	m.sets++
	return nil
}

func (m *mockMatchCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.store, key)
	return nil
}

func strPtr(s string) *string { return &s }

func TestMatchingUsecase_Rank(t *testing.T) {
	now := time.Now().UTC()
	repo := &mockProfileRepo{
		byUserID: map[string]profile.Profile{
			"alice-1": {UserID: "alice-1", Courses: []string{"CS101", "MATH201"}, Interests: []string{"AI"}},
		},
		others: []profile.Profile{
			{UserID: "bob-1", Email: strPtr("bob@state.edu"), Courses: []string{"CS101", "MATH201", "PHYS101"}, Interests: []string{"Math"}, CreatedAt: now},
			{UserID: "carol-1", Courses: []string{"CS101"}, Interests: []string{"Programming"}, CreatedAt: now},
			{UserID: "dave-1", Courses: []string{"BIO300"}, Interests: []string{"AI"}, CreatedAt: now},
		},
	}
	uc := NewMatchingUsecase(repo, nil)

	matches, err := uc.Rank(context.Background(), "alice-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].UserID != "bob-1" || matches[0].Score != 4 {
		t.Fatalf("expected bob-1 score 4 first, got %s score %d", matches[0].UserID, matches[0].Score)
	}
	if matches[0].Email != "bob@state.edu" {
		t.Fatalf("match must carry candidate email, got %q", matches[0].Email)
	}
	if matches[1].UserID != "carol-1" || matches[1].Score != 2 {
		t.Fatalf("expected carol-1 score 2 second, got %s score %d", matches[1].UserID, matches[1].Score)
	}
}

func TestMatchingUsecase_Rank_ProfileNotFound(t *testing.T) {
	uc := NewMatchingUsecase(&mockProfileRepo{byUserID: map[string]profile.Profile{}}, nil)

	if _, err := uc.Rank(context.Background(), "ghost-1"); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected profile.ErrNotFound, got %v", err)
	}
}

func TestMatchingUsecase_Rank_MissingUserID(t *testing.T) {
	uc := NewMatchingUsecase(&mockProfileRepo{}, nil)

	if _, err := uc.Rank(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchingUsecase_Rank_CachesResult(t *testing.T) {
	repo := &mockProfileRepo{
		byUserID: map[string]profile.Profile{
			"alice-1": {UserID: "alice-1", Courses: []string{"CS101"}},
		},
		others: []profile.Profile{
			{UserID: "bob-1", Courses: []string{"CS101"}},
		},
	}
	cache := newMockMatchCache()
	uc := NewMatchingUsecase(repo, cache)

	first, err := uc.Rank(context.Background(), "alice-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache write, got %d", cache.sets)
	}

	// Second call must be served from the cache, not recomputed.
	repo.others = nil
	second, err := uc.Rank(context.Background(), "alice-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("cached result differs: %d vs %d", len(second), len(first))
	}
}
