package seeder

import (
	"context"
	"fmt"

	"colab/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// ProfilesSeeder loads a handful of demo student profiles for development
// environments. Existing rows are left untouched.
type ProfilesSeeder struct{}

func (ProfilesSeeder) Name() string { return "profiles" }

func (ProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		UserID    string
		Name      string
		Email     string
		Password  string
		Courses   []string
		Interests []string
	}{
		{
			UserID:    "ada-demo",
			Name:      "Ada Lovelace",
			Email:     "ada@demo.edu",
			Password:  "demo-pass",
			Courses:   []string{"CS101", "MATH201"},
			Interests: []string{"AI", "Music"},
		},
		{
			UserID:    "grace-demo",
			Name:      "Grace Hopper",
			Email:     "grace@demo.edu",
			Password:  "demo-pass",
			Courses:   []string{"CS101", "CS240"},
			Interests: []string{"Compilers", "AI"},
		},
		{
			UserID:    "alan-demo",
			Name:      "Alan Turing",
			Email:     "alan@demo.edu",
			Password:  "demo-pass",
			Courses:   []string{"MATH201", "CS240"},
			Interests: []string{"Cryptography"},
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range items {
		hash, err := bcrypt.GenerateFromPassword([]byte(it.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO profiles (user_id, name, email, password_hash, courses, interests)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (user_id) DO NOTHING`,
			it.UserID, it.Name, it.Email, string(hash), it.Courses, it.Interests,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
