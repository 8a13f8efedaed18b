package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

func acceptedExchange() (*mockExchangeRepo, uuid.UUID, uuid.UUID, uuid.UUID) {
	sender := uuid.New()
	receiver := uuid.New()
	reqID := uuid.New()
	exchanges := &mockExchangeRepo{byID: map[uuid.UUID]repository.ExchangeRequest{
		reqID: {ID: reqID, SenderID: sender, ReceiverID: receiver, Status: repository.ExchangeStatusAccepted},
	}}
	return exchanges, reqID, sender, receiver
}

func TestChatSendMessage_EmptyBody(t *testing.T) {
	exchanges, reqID, sender, _ := acceptedExchange()
	uc := NewChatUsecase(&mockMessageRepo{}, exchanges, mockUserRepo{}, nil)

	_, err := uc.SendMessage(context.Background(), reqID, sender, "   ")
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestChatSendMessage_UnknownExchange(t *testing.T) {
	uc := NewChatUsecase(&mockMessageRepo{}, &mockExchangeRepo{byID: map[uuid.UUID]repository.ExchangeRequest{}}, mockUserRepo{}, nil)

	_, err := uc.SendMessage(context.Background(), uuid.New(), uuid.New(), "hi")
	if !errors.Is(err, ErrExchangeNotFound) {
		t.Fatalf("expected ErrExchangeNotFound, got %v", err)
	}
}

func TestChatSendMessage_NonParticipant(t *testing.T) {
	exchanges, reqID, _, _ := acceptedExchange()
	uc := NewChatUsecase(&mockMessageRepo{}, exchanges, mockUserRepo{}, nil)

	_, err := uc.SendMessage(context.Background(), reqID, uuid.New(), "hi")
	if !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
}

func TestChatSendMessage_LockedUntilAccepted(t *testing.T) {
	sender := uuid.New()
	receiver := uuid.New()
	reqID := uuid.New()
	exchanges := &mockExchangeRepo{byID: map[uuid.UUID]repository.ExchangeRequest{
		reqID: {ID: reqID, SenderID: sender, ReceiverID: receiver, Status: repository.ExchangeStatusPending},
	}}
	uc := NewChatUsecase(&mockMessageRepo{}, exchanges, mockUserRepo{}, nil)

	_, err := uc.SendMessage(context.Background(), reqID, sender, "hi")
	if !errors.Is(err, ErrChatLocked) {
		t.Fatalf("expected ErrChatLocked, got %v", err)
	}
}

func TestChatSendMessage_NotifiesCounterpart(t *testing.T) {
	exchanges, reqID, sender, receiver := acceptedExchange()
	messages := &mockMessageRepo{}
	notifier := &recorderNotifier{}
	users := mockUserRepo{users: map[uuid.UUID]repository.User{
		sender: {ID: sender, DisplayName: "Alice"},
	}}
	uc := NewChatUsecase(messages, exchanges, users, notifier)

	msg, err := uc.SendMessage(context.Background(), reqID, sender, "see you tuesday")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if msg.Body != "see you tuesday" {
		t.Fatalf("unexpected body %q", msg.Body)
	}
	if len(messages.items) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(messages.items))
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.calls))
	}
	if notifier.calls[0].UserID != receiver {
		t.Fatalf("notification went to %s, want counterpart %s", notifier.calls[0].UserID, receiver)
	}
	if notifier.calls[0].Kind != repository.NotificationMessageReceived {
		t.Fatalf("unexpected kind %q", notifier.calls[0].Kind)
	}
}

func TestChatListMessages_ParticipantOnly(t *testing.T) {
	exchanges, reqID, _, receiver := acceptedExchange()
	messages := &mockMessageRepo{items: []repository.Message{{ID: uuid.New(), ExchangeID: reqID, Body: "hello"}}}
	uc := NewChatUsecase(messages, exchanges, mockUserRepo{}, nil)

	out, err := uc.ListMessages(context.Background(), reqID, receiver)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 message, got %d", len(out))
	}

	if _, err := uc.ListMessages(context.Background(), reqID, uuid.New()); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
}
