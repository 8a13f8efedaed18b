package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSelfRequest      = errors.New("cannot send an exchange request to yourself")
	ErrDuplicatePending = errors.New("an identical exchange request is already pending")
	ErrExchangeNotFound = errors.New("exchange request not found")
	ErrNotReceiver      = errors.New("only the receiver may respond to a request")
	ErrInvalidDecision  = errors.New("decision must be accepted or rejected")
	ErrAlreadyDecided   = errors.New("exchange request already decided")
	ErrInvalidInput     = errors.New("invalid input")
)

type ExchangeUsecase interface {
	Create(ctx context.Context, senderID, receiverID uuid.UUID, teachSkill, learnSkill string) (repository.ExchangeRequest, error)
	ListSent(ctx context.Context, userID uuid.UUID) ([]repository.ExchangeListEntry, error)
	ListReceived(ctx context.Context, userID uuid.UUID) ([]repository.ExchangeListEntry, error)
	Respond(ctx context.Context, requestID, responderID uuid.UUID, decision string) (repository.ExchangeRequest, error)
}

type Exchange struct {
	exchanges repository.ExchangeRepository
	users     repository.UserRepository
	notifier  Notifier
}

func NewExchangeUsecase(exchanges repository.ExchangeRepository, users repository.UserRepository, notifier Notifier) *Exchange {
	return &Exchange{exchanges: exchanges, users: users, notifier: notifier}
}

func (u *Exchange) Create(ctx context.Context, senderID, receiverID uuid.UUID, teachSkill, learnSkill string) (repository.ExchangeRequest, error) {
	teachSkill = strings.TrimSpace(teachSkill)
	learnSkill = strings.TrimSpace(learnSkill)
	if teachSkill == "" || learnSkill == "" || receiverID == uuid.Nil {
		return repository.ExchangeRequest{}, ErrInvalidInput
	}
	if senderID == receiverID {
		return repository.ExchangeRequest{}, ErrSelfRequest
	}

	sender, err := u.users.GetUserByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.ExchangeRequest{}, ErrUserNotFound
		}
		return repository.ExchangeRequest{}, ErrInternal
	}
	if _, err := u.users.GetUserByID(ctx, receiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.ExchangeRequest{}, ErrUserNotFound
		}
		return repository.ExchangeRequest{}, ErrInternal
	}

	// Friendly pre-check; the partial unique index is what actually closes
	// the race between concurrent creates.
	exists, err := u.exchanges.HasPending(ctx, senderID, receiverID, teachSkill, learnSkill)
	if err != nil {
		return repository.ExchangeRequest{}, ErrInternal
	}
	if exists {
		return repository.ExchangeRequest{}, ErrDuplicatePending
	}

	created, err := u.exchanges.Insert(ctx, repository.ExchangeRequest{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		TeachSkill: teachSkill,
		LearnSkill: learnSkill,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePending) {
			return repository.ExchangeRequest{}, ErrDuplicatePending
		}
		return repository.ExchangeRequest{}, ErrInternal
	}

	if u.notifier != nil {
		id := created.ID
		u.notifier.Notify(receiverID, repository.NotificationRequestReceived,
			fmt.Sprintf("%s offers to teach you %s in exchange for %s", sender.DisplayName, teachSkill, learnSkill),
			&id,
		)
	}

	return created, nil
}

func (u *Exchange) ListSent(ctx context.Context, userID uuid.UUID) ([]repository.ExchangeListEntry, error) {
	out, err := u.exchanges.ListBySender(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Exchange) ListReceived(ctx context.Context, userID uuid.UUID) ([]repository.ExchangeListEntry, error) {
	out, err := u.exchanges.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Exchange) Respond(ctx context.Context, requestID, responderID uuid.UUID, decision string) (repository.ExchangeRequest, error) {
	status, err := parseDecision(decision)
	if err != nil {
		return repository.ExchangeRequest{}, err
	}

	req, err := u.exchanges.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrExchangeNotFound) {
			return repository.ExchangeRequest{}, ErrExchangeNotFound
		}
		return repository.ExchangeRequest{}, ErrInternal
	}
	if req.ReceiverID != responderID {
		return repository.ExchangeRequest{}, ErrNotReceiver
	}
	if req.Status != repository.ExchangeStatusPending {
		return repository.ExchangeRequest{}, ErrAlreadyDecided
	}

	updated, err := u.exchanges.DecideIfPending(ctx, requestID, status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyDecided):
			return repository.ExchangeRequest{}, ErrAlreadyDecided
		case errors.Is(err, repository.ErrExchangeNotFound):
			return repository.ExchangeRequest{}, ErrExchangeNotFound
		default:
			return repository.ExchangeRequest{}, ErrInternal
		}
	}

	if u.notifier != nil {
		responder, rerr := u.users.GetUserByID(ctx, responderID)
		name := responder.DisplayName
		if rerr != nil {
			name = "The receiver"
		}
		id := updated.ID
		kind := repository.NotificationRequestAccepted
		if status == repository.ExchangeStatusRejected {
			kind = repository.NotificationRequestRejected
		}
		u.notifier.Notify(updated.SenderID, kind,
			fmt.Sprintf("%s %s your exchange request for %s", name, status, updated.LearnSkill),
			&id,
		)
	}

	return updated, nil
}

func parseDecision(decision string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(decision)) {
	case repository.ExchangeStatusAccepted:
		return repository.ExchangeStatusAccepted, nil
	case repository.ExchangeStatusRejected:
		return repository.ExchangeStatusRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}
