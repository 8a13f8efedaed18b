package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type Profile struct {
	User   repository.User
	Skills []repository.UserSkill
}

type UpdateProfileInput struct {
	DisplayName string
	Bio         string
	AvatarURL   string
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error)
}

type Users struct {
	users  repository.UserRepository
	skills repository.UserSkillRepository
}

func NewUserUsecase(users repository.UserRepository, skills repository.UserSkillRepository) *Users {
	return &Users{users: users, skills: skills}
}

func (u *Users) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Profile{}, ErrUserNotFound
		}
		return Profile{}, ErrInternal
	}

	skills, err := u.skills.ListByUser(ctx, userID)
	if err != nil {
		return Profile{}, ErrInternal
	}

	usr.PasswordHash = ""
	return Profile{User: usr, Skills: skills}, nil
}

func (u *Users) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error) {
	displayName := strings.TrimSpace(in.DisplayName)
	if displayName == "" {
		return Profile{}, ErrInvalidInput
	}

	_, err := u.users.UpdateProfile(ctx, repository.User{
		ID:          userID,
		DisplayName: displayName,
		Bio:         strings.TrimSpace(in.Bio),
		AvatarURL:   strings.TrimSpace(in.AvatarURL),
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Profile{}, ErrUserNotFound
		}
		return Profile{}, ErrInternal
	}

	return u.GetProfile(ctx, userID)
}
