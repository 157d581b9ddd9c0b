package repository

import (
	"context"
	"time"

	"colab/internal/database"
)

type Message struct {
	ID           int64
	ConnectionID int64
	SenderID     string
	Body         string
	CreatedAt    time.Time
}

type MessageRepository interface {
	Append(ctx context.Context, connectionID int64, senderID, body string) (Message, error)
	History(ctx context.Context, connectionID int64) ([]Message, error)
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Append(ctx context.Context, connectionID int64, senderID, body string) (Message, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO messages (connection_id, sender_id, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, connection_id, sender_id, body, created_at`,
		connectionID, senderID, body,
	)

	var m Message
	if err := row.Scan(&m.ID, &m.ConnectionID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
		return Message{}, err
	}
	return m, nil
}

// History returns the full log in chronological order; created_at ties are
// broken by insertion id so the order is insensitive to timestamp jitter.
func (r *PostgresMessageRepository) History(ctx context.Context, connectionID int64) ([]Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, connection_id, sender_id, body, created_at
		 FROM messages
		 WHERE connection_id = $1
		 ORDER BY created_at ASC, id ASC`,
		connectionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Message, 0)
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ConnectionID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
