package repository

import (
	"context"
	"database/sql"
	"errors"

	"colab/internal/database"
	"colab/internal/domain/connection"

	"github.com/jackc/pgx/v5"
)

// ConnectionWithPeer is a connection row enriched with the counterparty as
// seen from the listing user's side.
type ConnectionWithPeer struct {
	connection.Connection
	PeerID   string
	PeerName string
}

type ConnectionRepository interface {
	Create(ctx context.Context, requesterID, recipientID string) (connection.Connection, error)
	GetByID(ctx context.Context, id int64) (connection.Connection, error)
	Resolve(ctx context.Context, id int64, status connection.Status) (connection.Connection, error)
	ListByUser(ctx context.Context, userID string, status *connection.Status) ([]ConnectionWithPeer, error)
}

type PostgresConnectionRepository struct {
	db database.DB
}

func NewPostgresConnectionRepository(db database.DB) *PostgresConnectionRepository {
	return &PostgresConnectionRepository{db: db}
}

// Create inserts a pending row. Uniqueness over the unordered pair is enforced
// by the store, so two concurrent requests for the same pair race at the
// index and the loser sees ErrDuplicatePair.
func (r *PostgresConnectionRepository) Create(ctx context.Context, requesterID, recipientID string) (connection.Connection, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO connections (requester_id, recipient_id, status)
		 VALUES ($1, $2, 'pending')
		 ON CONFLICT (LEAST(requester_id, recipient_id), GREATEST(requester_id, recipient_id)) DO NOTHING
		 RETURNING id, requester_id, recipient_id, status, created_at, updated_at`,
		requesterID, recipientID,
	)

	c, err := scanConnection(row)
	if err != nil {
		if errors.Is(err, connection.ErrNotFound) {
			return connection.Connection{}, connection.ErrDuplicatePair
		}
		return connection.Connection{}, err
	}
	return c, nil
}

func (r *PostgresConnectionRepository) GetByID(ctx context.Context, id int64) (connection.Connection, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, requester_id, recipient_id, status, created_at, updated_at
		 FROM connections
		 WHERE id = $1`,
		id,
	)
	return scanConnection(row)
}

// Resolve moves a pending connection to accepted or rejected. A row that is
// no longer pending yields ErrAlreadyResolved, an unknown id ErrNotFound.
func (r *PostgresConnectionRepository) Resolve(ctx context.Context, id int64, status connection.Status) (connection.Connection, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE connections
		 SET status = $2, updated_at = NOW()
		 WHERE id = $1 AND status = 'pending'
		 RETURNING id, requester_id, recipient_id, status, created_at, updated_at`,
		id, string(status),
	)

	c, err := scanConnection(row)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, connection.ErrNotFound) {
		return connection.Connection{}, err
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return connection.Connection{}, getErr
	}
	return connection.Connection{}, connection.ErrAlreadyResolved
}

func (r *PostgresConnectionRepository) ListByUser(ctx context.Context, userID string, status *connection.Status) ([]ConnectionWithPeer, error) {
	query := `SELECT c.id, c.requester_id, c.recipient_id, c.status, c.created_at, c.updated_at,
		 CASE WHEN c.requester_id = $1 THEN c.recipient_id ELSE c.requester_id END,
		 COALESCE(p.name, CASE WHEN c.requester_id = $1 THEN c.recipient_id ELSE c.requester_id END)
		 FROM connections c
		 LEFT JOIN profiles p
		 ON p.user_id = CASE WHEN c.requester_id = $1 THEN c.recipient_id ELSE c.requester_id END
		 WHERE (c.requester_id = $1 OR c.recipient_id = $1)`

	args := []any{userID}
	if status != nil {
		query += ` AND c.status = $2`
		args = append(args, string(*status))
	}
	query += ` ORDER BY c.created_at DESC, c.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ConnectionWithPeer, 0)
	for rows.Next() {
		var c ConnectionWithPeer
		var st string
		if err := rows.Scan(&c.ID, &c.RequesterID, &c.RecipientID, &st, &c.CreatedAt, &c.UpdatedAt, &c.PeerID, &c.PeerName); err != nil {
			return nil, err
		}
		c.Status = connection.Status(st)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanConnection(row database.Row) (connection.Connection, error) {
	var c connection.Connection
	var st string
	if err := row.Scan(&c.ID, &c.RequesterID, &c.RecipientID, &st, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return connection.Connection{}, connection.ErrNotFound
		}
		return connection.Connection{}, err
	}
	c.Status = connection.Status(st)
	return c, nil
}
