package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gdugdh24/heartline-backend/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	bio := "likes hiking"

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("Ann", "ann@example.com", "hash", "female", 28, &bio, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	user := &domain.User{Name: "Ann", Email: "ann@example.com", Password: "hash", Gender: "female", Age: 28, Bio: &bio}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, 7, user.ID)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	dup := &domain.User{Name: "Ann", Email: "ann@example.com", Password: "hash", Gender: "female", Age: 28}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrUserEmailTaken)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(errors.New("connection refused"))
	err := repo.Create(ctx, dup)
	assert.EqualError(t, err, "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "gender", "age", "bio", "profile_picture"}).
		AddRow(1, "Ann", "ann@example.com", "hash", "female", 28, nil, nil).
		AddRow(2, "Bob", "bob@example.com", "hash", "male", 31, "hi", "https://img/bob.png")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users ORDER BY id`)).WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Nil(t, users[0].Bio)
	require.NotNil(t, users[1].ProfilePicture)
	assert.Equal(t, "https://img/bob.png", *users[1].ProfilePicture)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_CreateTables(t *testing.T) {
	db, mock := setupMockDB(t)
	m := NewMigrator(db)

	mock.ExpectBegin()
	for _, table := range []string{"users", "preferences", "matches", "messages"} {
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS " + table + " (")).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, m.CreateTables(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_CreateTablesRollsBackOnFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	m := NewMigrator(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users (")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS preferences (")).
		WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err := m.CreateTables(context.Background())
	assert.EqualError(t, err, "failed to create table preferences: permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_CreateProfilesTable(t *testing.T) {
	db, mock := setupMockDB(t)
	m := NewMigrator(db)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS profiles (")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, m.CreateProfilesTable(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
