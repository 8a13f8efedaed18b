package dto

import (
	"skill-swap/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchSkillResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

type MatchResponse struct {
	UserID         uuid.UUID            `json:"user_id"`
	DisplayName    string               `json:"display_name"`
	Bio            string               `json:"bio"`
	AvatarURL      string               `json:"avatar_url"`
	Score          int                  `json:"score"`
	MatchingSkills []string             `json:"matching_skills"`
	MutualSkills   []string             `json:"mutual_skills"`
	Teaches        []MatchSkillResponse `json:"teaches"`
	Learns         []MatchSkillResponse `json:"learns"`
}

func NewMatchResponse(r matching.Result) MatchResponse {
	return MatchResponse{
		UserID:         r.CandidateID,
		DisplayName:    r.DisplayName,
		Bio:            r.Bio,
		AvatarURL:      r.AvatarURL,
		Score:          r.Score,
		MatchingSkills: r.MatchingSkills,
		MutualSkills:   r.MutualSkills,
		Teaches:        newMatchSkillResponses(r.Teaches),
		Learns:         newMatchSkillResponses(r.Learns),
	}
}

func NewMatchResponses(results []matching.Result) []MatchResponse {
	out := make([]MatchResponse, 0, len(results))
	for _, r := range results {
		out = append(out, NewMatchResponse(r))
	}
	return out
}

func newMatchSkillResponses(skills []matching.Skill) []MatchSkillResponse {
	out := make([]MatchSkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, MatchSkillResponse{Name: s.Name, Category: s.Category, Level: s.Level})
	}
	return out
}
