package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type NotificationEvent struct {
	Type      string `json:"type"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	RelatedID string `json:"related_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

type MessageEvent struct {
	Type       string    `json:"type"`
	MessageID  uuid.UUID `json:"message_id"`
	ExchangeID uuid.UUID `json:"exchange_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	Body       string    `json:"body"`
	CreatedAt  string    `json:"created_at"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyNotification pushes a notification event to the user's open
// connections. No-op when no hub is wired (tests, one-off tools).
func NotifyNotification(userID uuid.UUID, kind, message, relatedID string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := NotificationEvent{
		Type:      "notification",
		Kind:      kind,
		Message:   message,
		RelatedID: relatedID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.SendToUser(userID, b)
}

func NotifyMessage(recipientID, messageID, exchangeID, senderID uuid.UUID, body string, createdAt time.Time) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := MessageEvent{
		Type:       "chat_message",
		MessageID:  messageID,
		ExchangeID: exchangeID,
		SenderID:   senderID,
		Body:       body,
		CreatedAt:  createdAt.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.SendToUser(recipientID, b)
}
