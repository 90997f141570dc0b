package repository

import (
	"context"

	"github.com/gdugdh24/heartline-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
}

// SchemaMigrator creates the tables both binaries depend on.
type SchemaMigrator interface {
	CreateTables(ctx context.Context) error
	CreateProfilesTable(ctx context.Context) error
}
