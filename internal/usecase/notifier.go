package usecase

import (
	"context"
	"log"
	"time"

	"skill-swap/internal/repository"
	"skill-swap/internal/ws"

	"github.com/google/uuid"
)

// Notifier records a user-facing notification. Delivery is best-effort:
// implementations must never surface failures to the triggering operation.
type Notifier interface {
	Notify(userID uuid.UUID, kind, message string, relatedID *uuid.UUID)
}

type AsyncNotifier struct {
	repo   repository.NotificationRepository
	logger *log.Logger
}

func NewAsyncNotifier(repo repository.NotificationRepository, logger *log.Logger) *AsyncNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &AsyncNotifier{repo: repo, logger: logger}
}

// Notify persists and pushes the notification off the caller's goroutine.
// The triggering write has already committed, so a failure here is logged
// and dropped.
func (n *AsyncNotifier) Notify(userID uuid.UUID, kind, message string, relatedID *uuid.UUID) {
	if n == nil || n.repo == nil {
		return
	}

	record := repository.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Message:   message,
		RelatedID: relatedID,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := n.repo.Insert(ctx, record); err != nil {
			n.logger.Printf("notify | user=%s kind=%s error=%v", userID, kind, err)
			return
		}

		related := ""
		if relatedID != nil {
			related = relatedID.String()
		}
		ws.NotifyNotification(userID, kind, message, related)
	}()
}
