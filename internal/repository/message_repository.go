package repository

import (
	"context"
	"time"

	"skill-swap/internal/database"

	"github.com/google/uuid"
)

type Message struct {
	ID         uuid.UUID
	ExchangeID uuid.UUID
	SenderID   uuid.UUID
	Body       string
	CreatedAt  time.Time
}

type MessageRepository interface {
	Insert(ctx context.Context, m Message) (Message, error)
	ListByExchange(ctx context.Context, exchangeID uuid.UUID) ([]Message, error)
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Insert(ctx context.Context, m Message) (Message, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO messages (id, exchange_id, sender_id, body)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, exchange_id, sender_id, body, created_at`,
		m.ID, m.ExchangeID, m.SenderID, m.Body,
	)

	var created Message
	if err := row.Scan(&created.ID, &created.ExchangeID, &created.SenderID, &created.Body, &created.CreatedAt); err != nil {
		return Message{}, err
	}
	return created, nil
}

func (r *PostgresMessageRepository) ListByExchange(ctx context.Context, exchangeID uuid.UUID) ([]Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, exchange_id, sender_id, body, created_at
		 FROM messages WHERE exchange_id = $1
		 ORDER BY created_at ASC`,
		exchangeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Message, 0)
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ExchangeID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
