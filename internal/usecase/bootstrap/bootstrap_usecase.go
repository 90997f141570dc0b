package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/heartline-backend/internal/domain"
	"github.com/gdugdh24/heartline-backend/internal/repository"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// BootstrapUseCase initializes the schema and seeds users. Every failure is
// logged and returned to the caller.
type BootstrapUseCase struct {
	migrator repository.SchemaMigrator
	userRepo repository.UserRepository
	validate *validator.Validate
	log      *zap.Logger
}

func NewBootstrapUseCase(
	migrator repository.SchemaMigrator,
	userRepo repository.UserRepository,
	log *zap.Logger,
) *BootstrapUseCase {
	return &BootstrapUseCase{
		migrator: migrator,
		userRepo: userRepo,
		validate: validator.New(),
		log:      log,
	}
}

// InsertUserInput carries the arguments of InsertUser. Bio and ProfilePicture
// are stored as NULL when nil.
type InsertUserInput struct {
	Name           string  `validate:"required,max=100"`
	Email          string  `validate:"required,email,max=100"`
	Password       string  `validate:"required,max=72"`
	Gender         string  `validate:"required,max=10"`
	Age            int     `validate:"gte=0"`
	Bio            *string `validate:"omitempty"`
	ProfilePicture *string `validate:"omitempty,uri"`
}

// CreateTables ensures users, preferences, matches and messages exist.
func (uc *BootstrapUseCase) CreateTables(ctx context.Context) error {
	if err := uc.migrator.CreateTables(ctx); err != nil {
		uc.log.Error("error creating tables", zap.Error(err))
		return err
	}
	uc.log.Info("tables created successfully")
	return nil
}

// CreateProfilesTable ensures the profiles table served by the HTTP API exists.
func (uc *BootstrapUseCase) CreateProfilesTable(ctx context.Context) error {
	if err := uc.migrator.CreateProfilesTable(ctx); err != nil {
		uc.log.Error("error creating profiles table", zap.Error(err))
		return err
	}
	uc.log.Info("profiles table created successfully")
	return nil
}

// InsertUser hashes the password and inserts one user row.
func (uc *BootstrapUseCase) InsertUser(ctx context.Context, in InsertUserInput) (*domain.User, error) {
	if err := uc.validate.Struct(in); err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		uc.log.Error("error inserting user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Error("error hashing password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:           in.Name,
		Email:          in.Email,
		Password:       string(hash),
		Gender:         in.Gender,
		Age:            in.Age,
		Bio:            in.Bio,
		ProfilePicture: in.ProfilePicture,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.log.Error("error inserting user", zap.String("email", in.Email), zap.Error(err))
		if errors.Is(err, domain.ErrUserEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	uc.log.Info("user inserted successfully", zap.Int("user_id", user.ID))
	return user, nil
}

// ListUsers returns every user ordered by id.
func (uc *BootstrapUseCase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.log.Error("error fetching users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
