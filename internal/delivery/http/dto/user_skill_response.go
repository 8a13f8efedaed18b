package dto

import (
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type UserSkillResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Description string    `json:"description"`
}

func NewUserSkillResponse(s repository.UserSkill) UserSkillResponse {
	return UserSkillResponse{
		ID:          s.ID,
		Kind:        s.Kind,
		Name:        s.Name,
		Category:    s.Category,
		Level:       s.Level,
		Description: s.Description,
	}
}

func NewUserSkillResponses(skills []repository.UserSkill) []UserSkillResponse {
	out := make([]UserSkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, NewUserSkillResponse(s))
	}
	return out
}
