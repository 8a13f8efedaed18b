package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidSkillKind  = errors.New("kind must be teach or learn")
	ErrInvalidSkillLevel = errors.New("level must be Beginner, Intermediate or Advanced")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrSkillForbidden    = errors.New("skill belongs to another user")
)

// The closed level enumeration, validated at the boundary.
var skillLevels = map[string]string{
	"beginner":     "Beginner",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
}

type SkillInput struct {
	Kind        string
	Name        string
	Category    string
	Level       string
	Description string
}

type SkillUsecase interface {
	List(ctx context.Context, userID uuid.UUID, kind string) ([]repository.UserSkill, error)
	Add(ctx context.Context, userID uuid.UUID, in SkillInput) (repository.UserSkill, error)
	Update(ctx context.Context, userID, skillID uuid.UUID, in SkillInput) (repository.UserSkill, error)
	Delete(ctx context.Context, userID, skillID uuid.UUID) error
}

type Skills struct {
	repo   repository.UserSkillRepository
	cache  MatchCache
	logger *log.Logger
}

func NewSkillUsecase(repo repository.UserSkillRepository, cache MatchCache, logger *log.Logger) *Skills {
	if logger == nil {
		logger = log.Default()
	}
	return &Skills{repo: repo, cache: cache, logger: logger}
}

func (u *Skills) List(ctx context.Context, userID uuid.UUID, kind string) ([]repository.UserSkill, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != "" && kind != repository.SkillKindTeach && kind != repository.SkillKindLearn {
		return nil, ErrInvalidSkillKind
	}

	all, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if kind == "" {
		return all, nil
	}

	out := make([]repository.UserSkill, 0, len(all))
	for _, s := range all {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out, nil
}

func (u *Skills) Add(ctx context.Context, userID uuid.UUID, in SkillInput) (repository.UserSkill, error) {
	us, err := u.validate(userID, in)
	if err != nil {
		return repository.UserSkill{}, err
	}
	us.ID = uuid.New()

	created, err := u.repo.Create(ctx, us)
	if err != nil {
		return repository.UserSkill{}, ErrInternal
	}

	u.invalidateMatches(ctx, userID)
	return created, nil
}

func (u *Skills) Update(ctx context.Context, userID, skillID uuid.UUID, in SkillInput) (repository.UserSkill, error) {
	us, err := u.validate(userID, in)
	if err != nil {
		return repository.UserSkill{}, err
	}
	us.ID = skillID

	updated, err := u.repo.Update(ctx, us)
	if err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return repository.UserSkill{}, ErrSkillNotFound
		}
		return repository.UserSkill{}, ErrInternal
	}

	u.invalidateMatches(ctx, userID)
	return updated, nil
}

func (u *Skills) Delete(ctx context.Context, userID, skillID uuid.UUID) error {
	if err := u.repo.Delete(ctx, skillID, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserSkillNotFound):
			return ErrSkillNotFound
		case errors.Is(err, repository.ErrUserSkillForbidden):
			return ErrSkillForbidden
		default:
			return ErrInternal
		}
	}

	u.invalidateMatches(ctx, userID)
	return nil
}

func (u *Skills) validate(userID uuid.UUID, in SkillInput) (repository.UserSkill, error) {
	kind := strings.ToLower(strings.TrimSpace(in.Kind))
	if kind != repository.SkillKindTeach && kind != repository.SkillKindLearn {
		return repository.UserSkill{}, ErrInvalidSkillKind
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.UserSkill{}, ErrInvalidInput
	}

	level, ok := skillLevels[strings.ToLower(strings.TrimSpace(in.Level))]
	if !ok {
		return repository.UserSkill{}, ErrInvalidSkillLevel
	}

	return repository.UserSkill{
		UserID:      userID,
		Kind:        kind,
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		Level:       level,
		Description: strings.TrimSpace(in.Description),
	}, nil
}

// A changed skill list changes what the owner should be matched with, so
// their cached ranking goes stale immediately.
func (u *Skills) invalidateMatches(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	key := MatchCacheKey(userID)
	if err := u.cache.Delete(ctx, key); err != nil {
		u.logger.Printf("match cache | op=delete key=%s error=%v", key, err)
	}
}
