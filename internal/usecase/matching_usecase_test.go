package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

func TestComputeMatches_UnknownRequester(t *testing.T) {
	uc := NewMatchingUsecase(mockUserRepo{users: map[uuid.UUID]repository.User{}}, mockSkillRepo{}, nil, time.Minute, nil)

	_, err := uc.ComputeMatches(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestComputeMatches_EmptyLearnListShortCircuits(t *testing.T) {
	requester := uuid.New()
	other := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]repository.User{
		requester: {ID: requester},
		other:     {ID: other},
	}}
	skills := mockSkillRepo{byUser: map[uuid.UUID][]repository.UserSkill{
		requester: {{ID: uuid.New(), UserID: requester, Kind: repository.SkillKindTeach, Name: "Guitar"}},
		other:     {{ID: uuid.New(), UserID: other, Kind: repository.SkillKindTeach, Name: "Python"}},
	}}
	cache := &mockMatchCache{}
	uc := NewMatchingUsecase(users, skills, cache, time.Minute, nil)

	results, err := uc.ComputeMatches(context.Background(), requester)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if results == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
	if cache.sets != 0 {
		t.Fatalf("short circuit should not touch the cache")
	}
}

func TestComputeMatches_ScoresAndSorts(t *testing.T) {
	requester := uuid.New()
	strong := uuid.New()
	weak := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]repository.User{
		requester: {ID: requester, DisplayName: "Alice"},
		strong:    {ID: strong, DisplayName: "Bob"},
		weak:      {ID: weak, DisplayName: "Carol"},
	}}
	skills := mockSkillRepo{byUser: map[uuid.UUID][]repository.UserSkill{
		requester: {
			{ID: uuid.New(), UserID: requester, Kind: repository.SkillKindTeach, Name: "Guitar"},
			{ID: uuid.New(), UserID: requester, Kind: repository.SkillKindLearn, Name: "Python"},
		},
		strong: {
			{ID: uuid.New(), UserID: strong, Kind: repository.SkillKindTeach, Name: "python"},
			{ID: uuid.New(), UserID: strong, Kind: repository.SkillKindLearn, Name: "guitar"},
		},
		weak: {
			{ID: uuid.New(), UserID: weak, Kind: repository.SkillKindTeach, Name: "Cooking"},
		},
	}}
	uc := NewMatchingUsecase(users, skills, nil, time.Minute, nil)

	results, err := uc.ComputeMatches(context.Background(), requester)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].CandidateID != strong || results[0].Score != 15 {
		t.Fatalf("expected strong candidate first with score 15, got %s score %d", results[0].CandidateID, results[0].Score)
	}
	if results[1].CandidateID != weak || results[1].Score != 0 {
		t.Fatalf("expected zero-score candidate kept last, got %s score %d", results[1].CandidateID, results[1].Score)
	}
}

func TestComputeMatches_CacheHitSkipsDirectoryScan(t *testing.T) {
	requester := uuid.New()
	other := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]repository.User{
		requester: {ID: requester},
		other:     {ID: other, DisplayName: "Bob"},
	}}
	skills := mockSkillRepo{byUser: map[uuid.UUID][]repository.UserSkill{
		requester: {{ID: uuid.New(), UserID: requester, Kind: repository.SkillKindLearn, Name: "Python"}},
		other:     {{ID: uuid.New(), UserID: other, Kind: repository.SkillKindTeach, Name: "Python"}},
	}}
	cache := &mockMatchCache{}
	uc := NewMatchingUsecase(users, skills, cache, time.Minute, nil)

	first, err := uc.ComputeMatches(context.Background(), requester)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected first call to populate the cache")
	}

	second, err := uc.ComputeMatches(context.Background(), requester)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.getHits != 1 {
		t.Fatalf("expected second call to hit the cache")
	}
	if len(first) != len(second) || first[0].CandidateID != second[0].CandidateID || first[0].Score != second[0].Score {
		t.Fatalf("cached results differ from computed results")
	}
}

func TestSkillMutationInvalidatesMatchCache(t *testing.T) {
	userID := uuid.New()
	cache := &mockMatchCache{store: map[string][]byte{MatchCacheKey(userID): []byte("[]")}}
	uc := NewSkillUsecase(mockSkillRepo{}, cache, nil)

	_, err := uc.Add(context.Background(), userID, SkillInput{Kind: "teach", Name: "Guitar", Level: "Beginner"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.deletes) != 1 || cache.deletes[0] != MatchCacheKey(userID) {
		t.Fatalf("expected the user's match cache entry to be invalidated, got %v", cache.deletes)
	}
}
