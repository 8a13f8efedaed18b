package dto

import (
	"time"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Message   string     `json:"message"`
	RelatedID *uuid.UUID `json:"related_id"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewNotificationResponses(items []repository.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			Kind:      n.Kind,
			Message:   n.Message,
			RelatedID: n.RelatedID,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
