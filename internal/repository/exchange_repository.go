package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skill-swap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrExchangeNotFound = errors.New("exchange request not found")
	ErrDuplicatePending = errors.New("duplicate pending exchange request")
	ErrAlreadyDecided   = errors.New("exchange request already decided")
)

const (
	ExchangeStatusPending  = "pending"
	ExchangeStatusAccepted = "accepted"
	ExchangeStatusRejected = "rejected"
)

type ExchangeRequest struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	ReceiverID  uuid.UUID
	TeachSkill  string
	LearnSkill  string
	Status      string
	CreatedAt   time.Time
	RespondedAt *time.Time
}

// ExchangeListEntry carries the counterpart's presentation fields resolved
// at read time.
type ExchangeListEntry struct {
	ExchangeRequest
	CounterpartID     uuid.UUID
	CounterpartName   string
	CounterpartAvatar string
}

type ExchangeRepository interface {
	Insert(ctx context.Context, req ExchangeRequest) (ExchangeRequest, error)
	FindByID(ctx context.Context, id uuid.UUID) (ExchangeRequest, error)
	HasPending(ctx context.Context, senderID, receiverID uuid.UUID, teachSkill, learnSkill string) (bool, error)
	DecideIfPending(ctx context.Context, id uuid.UUID, status string) (ExchangeRequest, error)
	ListBySender(ctx context.Context, senderID uuid.UUID) ([]ExchangeListEntry, error)
	ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]ExchangeListEntry, error)
}

type PostgresExchangeRepository struct {
	db database.DB
}

func NewPostgresExchangeRepository(db database.DB) *PostgresExchangeRepository {
	return &PostgresExchangeRepository{db: db}
}

const exchangeColumns = `id, sender_id, receiver_id, teach_skill, learn_skill, status, created_at, responded_at`

func (r *PostgresExchangeRepository) Insert(ctx context.Context, req ExchangeRequest) (ExchangeRequest, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO exchange_requests (id, sender_id, receiver_id, teach_skill, learn_skill, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+exchangeColumns,
		req.ID, req.SenderID, req.ReceiverID, req.TeachSkill, req.LearnSkill, ExchangeStatusPending,
	)

	created, err := scanExchange(row)
	if err != nil {
		if isUniqueViolation(err) {
			return ExchangeRequest{}, ErrDuplicatePending
		}
		return ExchangeRequest{}, err
	}
	return created, nil
}

func (r *PostgresExchangeRepository) FindByID(ctx context.Context, id uuid.UUID) (ExchangeRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+exchangeColumns+` FROM exchange_requests WHERE id = $1`, id)
	return scanExchange(row)
}

func (r *PostgresExchangeRepository) HasPending(ctx context.Context, senderID, receiverID uuid.UUID, teachSkill, learnSkill string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM exchange_requests
			WHERE sender_id = $1 AND receiver_id = $2
			  AND lower(teach_skill) = lower($3) AND lower(learn_skill) = lower($4)
			  AND status = 'pending'
		 )`,
		senderID, receiverID, teachSkill, learnSkill,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// DecideIfPending transitions pending -> status. The WHERE clause makes the
// transition conditional, so a concurrent decision loses cleanly instead of
// overwriting a terminal state.
func (r *PostgresExchangeRepository) DecideIfPending(ctx context.Context, id uuid.UUID, status string) (ExchangeRequest, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE exchange_requests
		 SET status = $1, responded_at = now()
		 WHERE id = $2 AND status = 'pending'
		 RETURNING `+exchangeColumns,
		status, id,
	)

	updated, err := scanExchange(row)
	if err != nil {
		if errors.Is(err, ErrExchangeNotFound) {
			// Distinguish a missing row from an already-decided one.
			if _, findErr := r.FindByID(ctx, id); findErr == nil {
				return ExchangeRequest{}, ErrAlreadyDecided
			}
			return ExchangeRequest{}, ErrExchangeNotFound
		}
		return ExchangeRequest{}, err
	}
	return updated, nil
}

func (r *PostgresExchangeRepository) ListBySender(ctx context.Context, senderID uuid.UUID) ([]ExchangeListEntry, error) {
	return r.list(ctx,
		`SELECT e.id, e.sender_id, e.receiver_id, e.teach_skill, e.learn_skill, e.status, e.created_at, e.responded_at,
		        u.id, u.display_name, u.avatar_url
		 FROM exchange_requests e
		 JOIN users u ON u.id = e.receiver_id
		 WHERE e.sender_id = $1
		 ORDER BY e.created_at DESC`,
		senderID,
	)
}

func (r *PostgresExchangeRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]ExchangeListEntry, error) {
	return r.list(ctx,
		`SELECT e.id, e.sender_id, e.receiver_id, e.teach_skill, e.learn_skill, e.status, e.created_at, e.responded_at,
		        u.id, u.display_name, u.avatar_url
		 FROM exchange_requests e
		 JOIN users u ON u.id = e.sender_id
		 WHERE e.receiver_id = $1
		 ORDER BY e.created_at DESC`,
		receiverID,
	)
}

func (r *PostgresExchangeRepository) list(ctx context.Context, query string, id uuid.UUID) ([]ExchangeListEntry, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ExchangeListEntry, 0)
	for rows.Next() {
		var e ExchangeListEntry
		if err := rows.Scan(
			&e.ID, &e.SenderID, &e.ReceiverID, &e.TeachSkill, &e.LearnSkill, &e.Status, &e.CreatedAt, &e.RespondedAt,
			&e.CounterpartID, &e.CounterpartName, &e.CounterpartAvatar,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanExchange(row database.Row) (ExchangeRequest, error) {
	var e ExchangeRequest
	if err := row.Scan(&e.ID, &e.SenderID, &e.ReceiverID, &e.TeachSkill, &e.LearnSkill, &e.Status, &e.CreatedAt, &e.RespondedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return ExchangeRequest{}, ErrExchangeNotFound
		}
		return ExchangeRequest{}, err
	}
	return e, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
