package postgres

import (
	"context"
	"errors"

	"github.com/gdugdh24/heartline-backend/internal/domain"
	"github.com/gdugdh24/heartline-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = pq.ErrorCode("23505")

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name, email, password, gender, age, bio, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.Name, user.Email, user.Password, user.Gender, user.Age, user.Bio, user.ProfilePicture,
	).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrUserEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	query := `
		SELECT id, name, email, password, gender, age, bio, profile_picture
		FROM users ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}
