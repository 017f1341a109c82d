package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/msomdec/job-portal/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first migration run: %v", err)
	}

	// Verify the users table exists by inserting a row.
	_, err := db.ExecContext(ctx,
		"INSERT INTO users (email, fullname, role, password) VALUES (?, ?, ?, ?)",
		"test@example.com", "Test User", "applicant", "secret",
	)
	if err != nil {
		t.Fatalf("insert into users: %v", err)
	}

	applied, err := migrations.Applied(ctx, db)
	if err != nil {
		t.Fatalf("Applied: %v", err)
	}
	if len(applied) == 0 || applied[0] != "001_create_users.sql" {
		t.Fatalf("expected 001_create_users.sql to be recorded, got %v", applied)
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	// Run migrations twice; second run should be a no-op.
	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("second run (idempotent): %v", err)
	}

	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	if err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 migration record, got %d", count)
	}
}

func TestUsersEmailIsPrimaryKey(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	insert := "INSERT INTO users (email, fullname, role, password) VALUES (?, ?, ?, ?)"
	if _, err := db.ExecContext(ctx, insert, "pk@example.com", "First", "applicant", "p"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := db.ExecContext(ctx, insert, "pk@example.com", "Second", "recruiter", "q"); err == nil {
		t.Fatal("expected primary key violation on duplicate email")
	}
}
