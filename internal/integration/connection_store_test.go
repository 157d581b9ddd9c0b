package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"colab/internal/config"
	"colab/internal/database"
	"colab/internal/database/migration"
	dbpostgres "colab/internal/database/postgres"
	"colab/internal/domain/connection"
	"colab/internal/domain/profile"
	"colab/internal/repository"

	"github.com/google/uuid"
)

func TestIntegration_ConnectionPairIsUnordered(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()
	runMigrations(t, ctx, db)

	a := testUserID("alice")
	b := testUserID("bob")
	defer cleanupUsers(t, ctx, db, a, b)

	repo := repository.NewPostgresConnectionRepository(db)

	first, err := repo.Create(ctx, a, b)
	if err != nil {
		t.Fatalf("create a->b: %v", err)
	}
	if first.Status != connection.StatusPending {
		t.Fatalf("create a->b: expected pending, got %s", first.Status)
	}

	if _, err := repo.Create(ctx, b, a); !errors.Is(err, connection.ErrDuplicatePair) {
		t.Fatalf("create b->a: expected ErrDuplicatePair, got %v", err)
	}
	if _, err := repo.Create(ctx, a, b); !errors.Is(err, connection.ErrDuplicatePair) {
		t.Fatalf("create a->b again: expected ErrDuplicatePair, got %v", err)
	}
}

func TestIntegration_ResolvedConnectionCannotTransitionAgain(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()
	runMigrations(t, ctx, db)

	a := testUserID("carol")
	b := testUserID("dave")
	defer cleanupUsers(t, ctx, db, a, b)

	repo := repository.NewPostgresConnectionRepository(db)

	conn, err := repo.Create(ctx, a, b)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	accepted, err := repo.Resolve(ctx, conn.ID, connection.StatusAccepted)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != connection.StatusAccepted {
		t.Fatalf("accept: expected accepted, got %s", accepted.Status)
	}

	if _, err := repo.Resolve(ctx, conn.ID, connection.StatusRejected); !errors.Is(err, connection.ErrAlreadyResolved) {
		t.Fatalf("reject after accept: expected ErrAlreadyResolved, got %v", err)
	}
	if _, err := repo.Resolve(ctx, conn.ID, connection.StatusAccepted); !errors.Is(err, connection.ErrAlreadyResolved) {
		t.Fatalf("re-accept: expected ErrAlreadyResolved, got %v", err)
	}

	if _, err := repo.Resolve(ctx, conn.ID+1_000_000, connection.StatusAccepted); !errors.Is(err, connection.ErrNotFound) {
		t.Fatalf("resolve unknown id: expected ErrNotFound, got %v", err)
	}
}

func TestIntegration_MessageHistoryOrderSurvivesTimestampTies(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()
	runMigrations(t, ctx, db)

	a := testUserID("erin")
	b := testUserID("frank")
	defer cleanupUsers(t, ctx, db, a, b)

	connRepo := repository.NewPostgresConnectionRepository(db)
	msgRepo := repository.NewPostgresMessageRepository(db)

	conn, err := connRepo.Create(ctx, a, b)
	if err != nil {
		t.Fatalf("create connection: %v", err)
	}
	if _, err := connRepo.Resolve(ctx, conn.ID, connection.StatusAccepted); err != nil {
		t.Fatalf("accept connection: %v", err)
	}

	earlier := time.Now().UTC().Add(-time.Minute).Truncate(time.Microsecond)
	tied := time.Now().UTC().Truncate(time.Microsecond)

	insertMessageAt(t, ctx, db, conn.ID, a, "hey", earlier)
	insertMessageAt(t, ctx, db, conn.ID, a, "still there?", tied)
	insertMessageAt(t, ctx, db, conn.ID, b, "yes, here", tied)

	history, err := msgRepo.History(ctx, conn.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history: expected 3 messages, got %d", len(history))
	}

	got := []string{history[0].Body, history[1].Body, history[2].Body}
	want := []string{"hey", "still there?", "yes, here"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("history order: at idx=%d expected %q, got %q (full=%v)", i, want[i], got[i], got)
		}
	}
	if !history[1].CreatedAt.Equal(history[2].CreatedAt) {
		t.Fatalf("history: expected tied timestamps, got %v and %v", history[1].CreatedAt, history[2].CreatedAt)
	}
	if history[1].ID >= history[2].ID {
		t.Fatalf("history: tie must break by insertion id: %d >= %d", history[1].ID, history[2].ID)
	}
}

func TestIntegration_ProfileUpsertKeepsPasswordHashWhenOmitted(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()
	runMigrations(t, ctx, db)

	userID := testUserID("grace")
	defer cleanupUsers(t, ctx, db, userID)

	repo := repository.NewPostgresProfileRepository(db)

	name := "Grace"
	email := userID + "@state.edu"
	hash := "$2a$10$integration-fixture-hash"
	created, err := repo.Upsert(ctx, profile.Profile{
		UserID:       userID,
		Name:         &name,
		Email:        &email,
		PasswordHash: &hash,
		Courses:      []string{"CS101"},
		Interests:    []string{"robotics"},
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if created.PasswordHash == nil || *created.PasswordHash != hash {
		t.Fatalf("first upsert: hash not stored")
	}

	updated, err := repo.Upsert(ctx, profile.Profile{
		UserID:    userID,
		Courses:   []string{"CS101", "MATH200"},
		Interests: nil,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if updated.PasswordHash == nil || *updated.PasswordHash != hash {
		t.Fatalf("second upsert: expected stored hash preserved, got %v", updated.PasswordHash)
	}
	if updated.Name != nil || updated.Email != nil {
		t.Fatalf("second upsert: expected omitted name/email to be nulled, got name=%v email=%v", updated.Name, updated.Email)
	}
	if len(updated.Courses) != 2 {
		t.Fatalf("second upsert: expected courses replaced, got %v", updated.Courses)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("COLAB_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("COLAB_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("COLAB_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("COLAB_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("COLAB_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("COLAB_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set COLAB_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	r := migration.Runner{Dir: resolveMigrationsDir(t)}
	if err := r.Run(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}

	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	migDir := filepath.Join(root, "migrations")

	if st, err := os.Stat(migDir); err != nil || !st.IsDir() {
		t.Fatalf("resolve migrations dir: not found or not a dir: %s", migDir)
	}
	files, _ := filepath.Glob(filepath.Join(migDir, "V*__*.sql"))
	if len(files) == 0 {
		t.Fatalf("resolve migrations dir: no migration files found in %s", migDir)
	}
	return migDir
}

func insertMessageAt(t *testing.T, ctx context.Context, db database.DB, connectionID int64, senderID, body string, at time.Time) {
	t.Helper()

	_, err := db.Exec(ctx,
		`INSERT INTO messages (connection_id, sender_id, body, created_at)
		 VALUES ($1, $2, $3, $4)`,
		connectionID, senderID, body, at,
	)
	if err != nil {
		t.Fatalf("insert message %q: %v", body, err)
	}
}

func cleanupUsers(t *testing.T, ctx context.Context, db database.DB, userIDs ...string) {
	t.Helper()

	for _, id := range userIDs {
		_, _ = db.Exec(ctx,
			`DELETE FROM messages WHERE connection_id IN
			 (SELECT id FROM connections WHERE requester_id = $1 OR recipient_id = $1)`, id)
		_, _ = db.Exec(ctx, `DELETE FROM connections WHERE requester_id = $1 OR recipient_id = $1`, id)
		_, _ = db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, id)
	}
}

// testUserID keeps seeded rows from colliding with earlier runs or with the
// unordered-pair index rows of other tests.
func testUserID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
