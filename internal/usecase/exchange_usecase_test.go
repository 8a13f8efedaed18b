package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

func twoUsers() (mockUserRepo, uuid.UUID, uuid.UUID) {
	sender := uuid.New()
	receiver := uuid.New()
	repo := mockUserRepo{users: map[uuid.UUID]repository.User{
		sender:   {ID: sender, DisplayName: "Alice"},
		receiver: {ID: receiver, DisplayName: "Bob"},
	}}
	return repo, sender, receiver
}

func TestExchangeCreate_RejectsSelfRequest(t *testing.T) {
	users, sender, _ := twoUsers()
	uc := NewExchangeUsecase(&mockExchangeRepo{}, users, nil)

	_, err := uc.Create(context.Background(), sender, sender, "Guitar", "Python")
	if !errors.Is(err, ErrSelfRequest) {
		t.Fatalf("expected ErrSelfRequest, got %v", err)
	}
}

func TestExchangeCreate_RejectsBlankSkills(t *testing.T) {
	users, sender, receiver := twoUsers()
	uc := NewExchangeUsecase(&mockExchangeRepo{}, users, nil)

	if _, err := uc.Create(context.Background(), sender, receiver, "   ", "Python"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank teach skill, got %v", err)
	}
	if _, err := uc.Create(context.Background(), sender, receiver, "Guitar", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank learn skill, got %v", err)
	}
}

func TestExchangeCreate_UnknownReceiver(t *testing.T) {
	users, sender, _ := twoUsers()
	uc := NewExchangeUsecase(&mockExchangeRepo{}, users, nil)

	_, err := uc.Create(context.Background(), sender, uuid.New(), "Guitar", "Python")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestExchangeCreate_DuplicatePendingConflict(t *testing.T) {
	users, sender, receiver := twoUsers()
	uc := NewExchangeUsecase(&mockExchangeRepo{pending: true}, users, nil)

	_, err := uc.Create(context.Background(), sender, receiver, "Guitar", "Python")
	if !errors.Is(err, ErrDuplicatePending) {
		t.Fatalf("expected ErrDuplicatePending, got %v", err)
	}
}

func TestExchangeCreate_DuplicateSurfacedByInsert(t *testing.T) {
	// The pre-check can miss a concurrent create; the repository surfaces
	// the uniqueness violation instead.
	users, sender, receiver := twoUsers()
	uc := NewExchangeUsecase(&mockExchangeRepo{insertErr: repository.ErrDuplicatePending}, users, nil)

	_, err := uc.Create(context.Background(), sender, receiver, "Guitar", "Python")
	if !errors.Is(err, ErrDuplicatePending) {
		t.Fatalf("expected ErrDuplicatePending, got %v", err)
	}
}

func TestExchangeCreate_NotifiesReceiver(t *testing.T) {
	users, sender, receiver := twoUsers()
	exchanges := &mockExchangeRepo{}
	notifier := &recorderNotifier{}
	uc := NewExchangeUsecase(exchanges, users, notifier)

	created, err := uc.Create(context.Background(), sender, receiver, "Guitar", "Python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != repository.ExchangeStatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if len(exchanges.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(exchanges.inserted))
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.calls))
	}
	n := notifier.calls[0]
	if n.UserID != receiver {
		t.Fatalf("notification went to %s, want receiver %s", n.UserID, receiver)
	}
	if n.Kind != repository.NotificationRequestReceived {
		t.Fatalf("unexpected notification kind %q", n.Kind)
	}
	if n.RelatedID == nil || *n.RelatedID != created.ID {
		t.Fatalf("notification not linked to created request")
	}
}

func TestExchangeRespond_InvalidDecision(t *testing.T) {
	users, _, receiver := twoUsers()
	uc := NewExchangeUsecase(&mockExchangeRepo{}, users, nil)

	_, err := uc.Respond(context.Background(), uuid.New(), receiver, "maybe")
	if !errors.Is(err, ErrInvalidDecision) {
		t.Fatalf("expected ErrInvalidDecision, got %v", err)
	}
}

func TestExchangeRespond_NotFound(t *testing.T) {
	users, _, receiver := twoUsers()
	uc := NewExchangeUsecase(&mockExchangeRepo{byID: map[uuid.UUID]repository.ExchangeRequest{}}, users, nil)

	_, err := uc.Respond(context.Background(), uuid.New(), receiver, "accepted")
	if !errors.Is(err, ErrExchangeNotFound) {
		t.Fatalf("expected ErrExchangeNotFound, got %v", err)
	}
}

func TestExchangeRespond_OnlyReceiverMayRespond(t *testing.T) {
	users, sender, receiver := twoUsers()
	reqID := uuid.New()
	exchanges := &mockExchangeRepo{byID: map[uuid.UUID]repository.ExchangeRequest{
		reqID: {ID: reqID, SenderID: sender, ReceiverID: receiver, Status: repository.ExchangeStatusPending},
	}}
	uc := NewExchangeUsecase(exchanges, users, nil)

	if _, err := uc.Respond(context.Background(), reqID, sender, "accepted"); !errors.Is(err, ErrNotReceiver) {
		t.Fatalf("expected ErrNotReceiver for sender, got %v", err)
	}
	if _, err := uc.Respond(context.Background(), reqID, uuid.New(), "accepted"); !errors.Is(err, ErrNotReceiver) {
		t.Fatalf("expected ErrNotReceiver for stranger, got %v", err)
	}
}

func TestExchangeRespond_AlreadyDecidedConflict(t *testing.T) {
	users, sender, receiver := twoUsers()
	reqID := uuid.New()
	exchanges := &mockExchangeRepo{byID: map[uuid.UUID]repository.ExchangeRequest{
		reqID: {ID: reqID, SenderID: sender, ReceiverID: receiver, Status: repository.ExchangeStatusAccepted},
	}}
	uc := NewExchangeUsecase(exchanges, users, nil)

	_, err := uc.Respond(context.Background(), reqID, receiver, "rejected")
	if !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("expected ErrAlreadyDecided, got %v", err)
	}
}

func TestExchangeRespond_ConcurrentDecisionLosesGracefully(t *testing.T) {
	users, sender, receiver := twoUsers()
	reqID := uuid.New()
	exchanges := &mockExchangeRepo{
		byID: map[uuid.UUID]repository.ExchangeRequest{
			reqID: {ID: reqID, SenderID: sender, ReceiverID: receiver, Status: repository.ExchangeStatusPending},
		},
		decideErr: repository.ErrAlreadyDecided,
	}
	uc := NewExchangeUsecase(exchanges, users, nil)

	_, err := uc.Respond(context.Background(), reqID, receiver, "accepted")
	if !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("expected ErrAlreadyDecided, got %v", err)
	}
}

func TestExchangeRespond_AcceptNotifiesSender(t *testing.T) {
	users, sender, receiver := twoUsers()
	reqID := uuid.New()
	exchanges := &mockExchangeRepo{byID: map[uuid.UUID]repository.ExchangeRequest{
		reqID: {ID: reqID, SenderID: sender, ReceiverID: receiver, LearnSkill: "Python", Status: repository.ExchangeStatusPending},
	}}
	notifier := &recorderNotifier{}
	uc := NewExchangeUsecase(exchanges, users, notifier)

	updated, err := uc.Respond(context.Background(), reqID, receiver, "Accepted")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != repository.ExchangeStatusAccepted {
		t.Fatalf("expected accepted, got %q", updated.Status)
	}
	if updated.RespondedAt == nil {
		t.Fatalf("expected responded_at to be set")
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.calls))
	}
	n := notifier.calls[0]
	if n.UserID != sender {
		t.Fatalf("notification went to %s, want sender %s", n.UserID, sender)
	}
	if n.Kind != repository.NotificationRequestAccepted {
		t.Fatalf("unexpected notification kind %q", n.Kind)
	}
}

func TestExchangeRespond_RejectNotifiesSender(t *testing.T) {
	users, sender, receiver := twoUsers()
	reqID := uuid.New()
	exchanges := &mockExchangeRepo{byID: map[uuid.UUID]repository.ExchangeRequest{
		reqID: {ID: reqID, SenderID: sender, ReceiverID: receiver, LearnSkill: "Python", Status: repository.ExchangeStatusPending},
	}}
	notifier := &recorderNotifier{}
	uc := NewExchangeUsecase(exchanges, users, notifier)

	updated, err := uc.Respond(context.Background(), reqID, receiver, "rejected")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != repository.ExchangeStatusRejected {
		t.Fatalf("expected rejected, got %q", updated.Status)
	}
	if len(notifier.calls) != 1 || notifier.calls[0].Kind != repository.NotificationRequestRejected {
		t.Fatalf("expected a rejected notification, got %+v", notifier.calls)
	}
}
