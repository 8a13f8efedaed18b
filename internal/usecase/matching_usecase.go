package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"skill-swap/internal/domain/matching"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

type MatchingUsecase interface {
	ComputeMatches(ctx context.Context, requesterID uuid.UUID) ([]matching.Result, error)
}

type Matching struct {
	users  repository.UserRepository
	skills repository.UserSkillRepository
	cache  MatchCache
	ttl    time.Duration
	logger *log.Logger
}

func NewMatchingUsecase(users repository.UserRepository, skills repository.UserSkillRepository, cache MatchCache, ttl time.Duration, logger *log.Logger) *Matching {
	if logger == nil {
		logger = log.Default()
	}
	return &Matching{users: users, skills: skills, cache: cache, ttl: ttl, logger: logger}
}

// ComputeMatches ranks every other user against the requester's skill
// lists. Read-only; results are cached per requester for a short TTL and
// invalidated by the skill usecase on mutation.
func (u *Matching) ComputeMatches(ctx context.Context, requesterID uuid.UUID) ([]matching.Result, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUserNotFound
	}

	if _, err := u.users.GetUserByID(ctx, requesterID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	ownSkills, err := u.skills.ListByUser(ctx, requesterID)
	if err != nil {
		return nil, ErrInternal
	}
	teaches, learns := partitionSkills(ownSkills)

	// Nothing to learn means nothing can satisfy the requester; skip the
	// directory scan entirely.
	if len(learns) == 0 {
		return []matching.Result{}, nil
	}

	key := MatchCacheKey(requesterID)
	if u.cache != nil {
		var cached []matching.Result
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	others, err := u.users.ListUsersExcept(ctx, requesterID)
	if err != nil {
		return nil, ErrInternal
	}

	ids := make([]uuid.UUID, 0, len(others))
	for _, o := range others {
		ids = append(ids, o.ID)
	}
	skillsByUser, err := u.skills.ListByUsers(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	candidates := make([]matching.Candidate, 0, len(others))
	for _, o := range others {
		cTeaches, cLearns := partitionSkills(skillsByUser[o.ID])
		candidates = append(candidates, matching.Candidate{
			UserID:      o.ID,
			DisplayName: o.DisplayName,
			Bio:         o.Bio,
			AvatarURL:   o.AvatarURL,
			Teaches:     cTeaches,
			Learns:      cLearns,
		})
	}

	results := matching.Rank(teaches, learns, candidates)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, results, u.ttl); err != nil {
			u.logger.Printf("match cache | op=set key=%s error=%v", key, err)
		}
	}

	return results, nil
}

func partitionSkills(skills []repository.UserSkill) (teaches, learns []matching.Skill) {
	for _, s := range skills {
		ms := matching.Skill{
			ID:          s.ID,
			Name:        s.Name,
			Category:    s.Category,
			Level:       s.Level,
			Description: s.Description,
		}
		switch s.Kind {
		case repository.SkillKindTeach:
			teaches = append(teaches, ms)
		case repository.SkillKindLearn:
			learns = append(learns, ms)
		}
	}
	return teaches, learns
}
