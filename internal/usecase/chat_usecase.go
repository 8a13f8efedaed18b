package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skill-swap/internal/repository"
	"skill-swap/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrNotParticipant = errors.New("not a participant of this exchange")
	ErrChatLocked     = errors.New("chat is only available for accepted exchanges")
	ErrEmptyMessage   = errors.New("message body is empty")
)

type ChatUsecase interface {
	ListMessages(ctx context.Context, exchangeID, userID uuid.UUID) ([]repository.Message, error)
	SendMessage(ctx context.Context, exchangeID, senderID uuid.UUID, body string) (repository.Message, error)
}

type Chat struct {
	messages  repository.MessageRepository
	exchanges repository.ExchangeRepository
	users     repository.UserRepository
	notifier  Notifier
}

func NewChatUsecase(messages repository.MessageRepository, exchanges repository.ExchangeRepository, users repository.UserRepository, notifier Notifier) *Chat {
	return &Chat{messages: messages, exchanges: exchanges, users: users, notifier: notifier}
}

func (u *Chat) ListMessages(ctx context.Context, exchangeID, userID uuid.UUID) ([]repository.Message, error) {
	if _, err := u.unlockedExchange(ctx, exchangeID, userID); err != nil {
		return nil, err
	}

	out, err := u.messages.ListByExchange(ctx, exchangeID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Chat) SendMessage(ctx context.Context, exchangeID, senderID uuid.UUID, body string) (repository.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return repository.Message{}, ErrEmptyMessage
	}

	req, err := u.unlockedExchange(ctx, exchangeID, senderID)
	if err != nil {
		return repository.Message{}, err
	}

	created, err := u.messages.Insert(ctx, repository.Message{
		ID:         uuid.New(),
		ExchangeID: exchangeID,
		SenderID:   senderID,
		Body:       body,
	})
	if err != nil {
		return repository.Message{}, ErrInternal
	}

	recipientID := req.SenderID
	if senderID == req.SenderID {
		recipientID = req.ReceiverID
	}

	ws.NotifyMessage(recipientID, created.ID, exchangeID, senderID, body, created.CreatedAt)

	if u.notifier != nil {
		name := "Your exchange partner"
		if sender, serr := u.users.GetUserByID(ctx, senderID); serr == nil {
			name = sender.DisplayName
		}
		id := created.ID
		u.notifier.Notify(recipientID, repository.NotificationMessageReceived,
			fmt.Sprintf("%s sent you a message", name), &id)
	}

	return created, nil
}

// unlockedExchange checks the chat gate: the exchange must exist, the user
// must be one of its two parties, and the receiver must have accepted.
func (u *Chat) unlockedExchange(ctx context.Context, exchangeID, userID uuid.UUID) (repository.ExchangeRequest, error) {
	req, err := u.exchanges.FindByID(ctx, exchangeID)
	if err != nil {
		if errors.Is(err, repository.ErrExchangeNotFound) {
			return repository.ExchangeRequest{}, ErrExchangeNotFound
		}
		return repository.ExchangeRequest{}, ErrInternal
	}
	if userID != req.SenderID && userID != req.ReceiverID {
		return repository.ExchangeRequest{}, ErrNotParticipant
	}
	if req.Status != repository.ExchangeStatusAccepted {
		return repository.ExchangeRequest{}, ErrChatLocked
	}
	return req, nil
}
