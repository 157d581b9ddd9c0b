package repository

import (
	"context"
	"database/sql"
	"errors"

	"colab/internal/database"
	"colab/internal/domain/profile"

	"github.com/jackc/pgx/v5"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// Upsert creates or wholesale-replaces the row keyed by user_id. Courses,
// interests, name and email take the submitted values even when empty; the
// password hash is preserved when the submission carries none so a profile
// edit cannot lock the user out.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (user_id, name, email, password_hash, courses, interests)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
		 	name = EXCLUDED.name,
		 	email = EXCLUDED.email,
		 	password_hash = COALESCE(EXCLUDED.password_hash, profiles.password_hash),
		 	courses = EXCLUDED.courses,
		 	interests = EXCLUDED.interests,
		 	updated_at = NOW()
		 RETURNING id, user_id, name, email, password_hash, courses, interests, created_at, updated_at`,
		p.UserID, p.Name, p.Email, p.PasswordHash, p.Courses, p.Interests,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, email, password_hash, courses, interests, created_at, updated_at
		 FROM profiles
		 WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) GetByEmail(ctx context.Context, email string) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, email, password_hash, courses, interests, created_at, updated_at
		 FROM profiles
		 WHERE email = $1
		 LIMIT 1`,
		email,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) ListOthers(ctx context.Context, userID string) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, email, password_hash, courses, interests, created_at, updated_at
		 FROM profiles
		 WHERE user_id != $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	for rows.Next() {
		var p profile.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Email, &p.PasswordHash, &p.Courses, &p.Interests, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Email, &p.PasswordHash, &p.Courses, &p.Interests, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}
