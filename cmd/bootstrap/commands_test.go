package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gdugdh24/heartline-backend/internal/domain"
	"github.com/gdugdh24/heartline-backend/internal/usecase/bootstrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	calls     []string
	inserted  []bootstrap.InsertUserInput
	users     []*domain.User
	tablesErr error
	insertErr error
}

func (s *fakeService) CreateTables(ctx context.Context) error {
	s.calls = append(s.calls, "tables")
	return s.tablesErr
}

func (s *fakeService) CreateProfilesTable(ctx context.Context) error {
	s.calls = append(s.calls, "profiles")
	return nil
}

func (s *fakeService) InsertUser(ctx context.Context, in bootstrap.InsertUserInput) (*domain.User, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	s.inserted = append(s.inserted, in)
	return &domain.User{ID: len(s.inserted), Name: in.Name, Email: in.Email}, nil
}

func (s *fakeService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users, nil
}

// cli runs execute against svc and captures its output.
type cli struct {
	svc      *fakeService
	connects int
	connErr  error
	closed   bool
	stdout   bytes.Buffer
	stderr   bytes.Buffer
}

func (c *cli) run(args ...string) int {
	return execute(context.Background(), args, &c.stdout, &c.stderr, func() (Service, func(), error) {
		c.connects++
		if c.connErr != nil {
			return nil, nil, c.connErr
		}
		return c.svc, func() { c.closed = true }, nil
	})
}

func newCLI() *cli { return &cli{svc: &fakeService{}} }

func TestExecuteMigrate(t *testing.T) {
	c := newCLI()
	require.Equal(t, exitOK, c.run("migrate"))
	assert.Equal(t, []string{"tables", "profiles"}, c.svc.calls)
	assert.True(t, c.closed)
	assert.Empty(t, c.stderr.String())
}

func TestExecuteMigrateReportsFailure(t *testing.T) {
	c := newCLI()
	c.svc.tablesErr = errors.New("failed to create table users: permission denied")

	assert.Equal(t, exitError, c.run("migrate"))
	assert.Equal(t, []string{"tables"}, c.svc.calls)
	assert.Equal(t, "bootstrap migrate: failed to create table users: permission denied\n", c.stderr.String())
	assert.True(t, c.closed)
}

func TestExecuteInsertUser(t *testing.T) {
	c := newCLI()

	code := c.run("insert-user",
		"-name", "Ann", "-email", "ann@example.com", "-password", "pw",
		"-gender", "female", "-age", "28", "-bio", "",
	)
	require.Equal(t, exitOK, code, c.stderr.String())
	require.Len(t, c.svc.inserted, 1)

	in := c.svc.inserted[0]
	assert.Equal(t, "Ann", in.Name)
	assert.Equal(t, 28, in.Age)
	require.NotNil(t, in.Bio)
	assert.Equal(t, "", *in.Bio)
	assert.Nil(t, in.ProfilePicture)
	assert.Equal(t, "inserted user 1\n", c.stdout.String())
}

func TestExecuteInsertUserReportsConflict(t *testing.T) {
	c := newCLI()
	c.svc.insertErr = domain.ErrUserEmailTaken

	assert.Equal(t, exitError, c.run("insert-user", "-name", "Ann", "-email", "ann@example.com"))
	assert.Contains(t, c.stderr.String(), "user with this email already exists")
}

func TestParseInsertUserDefaults(t *testing.T) {
	in, err := parseInsertUser([]string{"-name", "Ann"})
	require.NoError(t, err)
	assert.Equal(t, -1, in.Age)
	assert.Nil(t, in.Bio)
}

func TestExecuteListUsers(t *testing.T) {
	c := newCLI()
	c.svc.users = []*domain.User{{ID: 1, Name: "Ann", Email: "ann@example.com", Password: "hash"}}

	require.Equal(t, exitOK, c.run("list-users"))

	var users []map[string]any
	require.NoError(t, json.Unmarshal(c.stdout.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Ann", users[0]["name"])
	assert.NotContains(t, users[0], "password")
}

func TestExecuteUsageErrorsSkipConnect(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no command", nil, "bootstrap: missing command"},
		{"unknown command", []string{"drop"}, `bootstrap: unknown command "drop"`},
		{"misspelled flag", []string{"insert-user", "-nmae", "Ann"}, "insert-user: flag provided but not defined: -nmae"},
		{"bad flag value", []string{"insert-user", "-age", "old"}, `invalid value "old" for flag -age`},
		{"stray argument", []string{"migrate", "now"}, `migrate takes no arguments, got ["now"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI()
			assert.Equal(t, exitUsage, c.run(tt.args...))
			assert.Zero(t, c.connects)
			assert.Contains(t, c.stderr.String(), tt.wantErr)
			assert.Contains(t, c.stderr.String(), "usage: bootstrap <command> [flags]")
			assert.Empty(t, c.stdout.String())
		})
	}
}

func TestExecuteInsertUserUsageListsFlags(t *testing.T) {
	c := newCLI()
	c.run("insert-user", "-nmae", "Ann")

	for _, name := range []string{"-name", "-email", "-password", "-gender", "-age", "-bio", "-picture"} {
		assert.Contains(t, c.stderr.String(), name)
	}
}

func TestExecuteHelp(t *testing.T) {
	c := newCLI()
	assert.Equal(t, exitOK, c.run("-h"))
	assert.True(t, strings.HasPrefix(c.stdout.String(), "usage: bootstrap"))
	assert.NotContains(t, c.stdout.String(), "insert-user flags")

	c = newCLI()
	assert.Equal(t, exitOK, c.run("insert-user", "-h"))
	assert.Contains(t, c.stdout.String(), "insert-user flags:")
	assert.Contains(t, c.stdout.String(), "age in years")
	assert.Zero(t, c.connects)
	assert.Empty(t, c.stderr.String())
}

func TestExecuteConnectFailure(t *testing.T) {
	c := newCLI()
	c.connErr = errors.New("failed to load config: DB_HOST is required")

	assert.Equal(t, exitError, c.run("list-users"))
	assert.Equal(t, 1, c.connects)
	assert.Equal(t, "bootstrap: failed to load config: DB_HOST is required\n", c.stderr.String())
}
