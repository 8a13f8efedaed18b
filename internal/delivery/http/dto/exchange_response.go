package dto

import (
	"time"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type ExchangeResponse struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"sender_id"`
	ReceiverID  uuid.UUID  `json:"receiver_id"`
	TeachSkill  string     `json:"teach_skill"`
	LearnSkill  string     `json:"learn_skill"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at"`
}

type CounterpartResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
}

type ExchangeListItemResponse struct {
	ExchangeResponse
	Counterpart CounterpartResponse `json:"counterpart"`
}

func NewExchangeResponse(e repository.ExchangeRequest) ExchangeResponse {
	return ExchangeResponse{
		ID:          e.ID,
		SenderID:    e.SenderID,
		ReceiverID:  e.ReceiverID,
		TeachSkill:  e.TeachSkill,
		LearnSkill:  e.LearnSkill,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		RespondedAt: e.RespondedAt,
	}
}

func NewExchangeListItemResponses(entries []repository.ExchangeListEntry) []ExchangeListItemResponse {
	out := make([]ExchangeListItemResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ExchangeListItemResponse{
			ExchangeResponse: NewExchangeResponse(e.ExchangeRequest),
			Counterpart: CounterpartResponse{
				ID:          e.CounterpartID,
				DisplayName: e.CounterpartName,
				AvatarURL:   e.CounterpartAvatar,
			},
		})
	}
	return out
}
