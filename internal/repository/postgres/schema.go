package postgres

import (
	"context"
	"fmt"

	"github.com/gdugdh24/heartline-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

// bootstrapTables are applied in order so that every foreign key target exists
// before the table referencing it.
var bootstrapTables = []struct {
	name string
	ddl  string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(100) NOT NULL,
			gender VARCHAR(10) NOT NULL,
			age INT NOT NULL,
			bio TEXT,
			profile_picture TEXT
		)`},
	{"preferences", `
		CREATE TABLE IF NOT EXISTS preferences (
			id SERIAL PRIMARY KEY,
			user_id INT REFERENCES users(id) ON DELETE CASCADE,
			preferred_gender VARCHAR(10) NOT NULL,
			min_age INT NOT NULL,
			max_age INT NOT NULL
		)`},
	{"matches", `
		CREATE TABLE IF NOT EXISTS matches (
			id SERIAL PRIMARY KEY,
			user1_id INT REFERENCES users(id) ON DELETE CASCADE,
			user2_id INT REFERENCES users(id) ON DELETE CASCADE,
			matched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"messages", `
		CREATE TABLE IF NOT EXISTS messages (
			id SERIAL PRIMARY KEY,
			match_id INT REFERENCES matches(id) ON DELETE CASCADE,
			sender_id INT REFERENCES users(id) ON DELETE CASCADE,
			message TEXT NOT NULL,
			sent_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
}

const profilesTable = `
	CREATE TABLE IF NOT EXISTS profiles (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		age INT NOT NULL,
		location TEXT NOT NULL,
		bio TEXT NOT NULL,
		interests TEXT[] NOT NULL DEFAULT '{}',
		images TEXT[] NOT NULL DEFAULT '{}',
		distance DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

type migrator struct {
	db *sqlx.DB
}

func NewMigrator(db *sqlx.DB) repository.SchemaMigrator {
	return &migrator{db: db}
}

// CreateTables creates users, preferences, matches and messages in a single
// transaction. Postgres DDL is transactional, so a failure leaves none of them
// half-applied.
func (m *migrator) CreateTables(ctx context.Context) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range bootstrapTables {
		if _, err := tx.ExecContext(ctx, table.ddl); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}
	return nil
}

func (m *migrator) CreateProfilesTable(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, profilesTable); err != nil {
		return fmt.Errorf("failed to create table profiles: %w", err)
	}
	return nil
}
