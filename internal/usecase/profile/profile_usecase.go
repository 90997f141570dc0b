package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/heartline-backend/internal/domain"
	"github.com/gdugdh24/heartline-backend/internal/repository"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Cache is a read-through store for single profiles.
type Cache interface {
	Get(ctx context.Context, id int) (*domain.Profile, error)
	Set(ctx context.Context, profile *domain.Profile) error
	Invalidate(ctx context.Context, id int) error
}

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	cache       Cache
	validate    *validator.Validate
	log         *zap.Logger
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	cache Cache,
	log *zap.Logger,
) *ProfileUseCase {
	v := validator.New()
	v.SetTagName("binding")
	return &ProfileUseCase{
		profileRepo: profileRepo,
		cache:       cache,
		validate:    v,
		log:         log,
	}
}

// ProfileRequest is the body of both create and update. Every field must be
// present; zero values such as age 0 or an empty images list are accepted.
// Age is bounded by the int4 column that stores it.
type ProfileRequest struct {
	Name      *string  `json:"name" binding:"required"`
	Age       *int     `json:"age" binding:"required,min=-2147483648,max=2147483647"`
	Location  *string  `json:"location" binding:"required"`
	Bio       *string  `json:"bio" binding:"required"`
	Interests []string `json:"interests" binding:"required"`
	Images    []string `json:"images" binding:"required"`
	Distance  *float64 `json:"distance" binding:"required"`
}

func (uc *ProfileUseCase) toProfile(req *ProfileRequest) (*domain.Profile, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request body is required", domain.ErrInvalidInput)
	}
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &domain.Profile{
		Name:      *req.Name,
		Age:       *req.Age,
		Location:  *req.Location,
		Bio:       *req.Bio,
		Interests: req.Interests,
		Images:    req.Images,
		Distance:  *req.Distance,
	}, nil
}

// CreateProfile inserts a new profile and returns it with its generated id
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, req *ProfileRequest) (*domain.Profile, error) {
	profile, err := uc.toProfile(req)
	if err != nil {
		return nil, err
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	uc.log.Info("profile created", zap.Int("profile_id", profile.ID))
	return profile, nil
}

// ListProfiles returns every stored profile ordered by id
func (uc *ProfileUseCase) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// GetProfile returns a profile by id, consulting the cache first
func (uc *ProfileUseCase) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	cached, err := uc.cache.Get(ctx, id)
	if err != nil {
		uc.log.Warn("profile cache read failed", zap.Int("profile_id", id), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := uc.cache.Set(ctx, profile); err != nil {
		uc.log.Warn("profile cache write failed", zap.Int("profile_id", id), zap.Error(err))
	}
	return profile, nil
}

// UpdateProfile replaces every field of an existing profile
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, id int, req *ProfileRequest) (*domain.Profile, error) {
	profile, err := uc.toProfile(req)
	if err != nil {
		return nil, err
	}
	profile.ID = id

	if err := uc.evict(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.evictAfterWrite(ctx, id)
	return profile, nil
}

// DeleteProfile removes a profile
func (uc *ProfileUseCase) DeleteProfile(ctx context.Context, id int) error {
	if err := uc.evict(ctx, id); err != nil {
		return err
	}
	if err := uc.profileRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	uc.evictAfterWrite(ctx, id)
	uc.log.Info("profile deleted", zap.Int("profile_id", id))
	return nil
}

// evict drops the cached copy before a write. A mutation is refused when the
// key cannot be removed, otherwise reads could keep serving the old row
// until the TTL expires.
func (uc *ProfileUseCase) evict(ctx context.Context, id int) error {
	if err := uc.cache.Invalidate(ctx, id); err != nil {
		uc.log.Error("profile cache invalidation failed", zap.Int("profile_id", id), zap.Error(err))
		return fmt.Errorf("failed to invalidate profile cache: %w: %w", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// evictAfterWrite removes a copy cached by a read that raced the write.
func (uc *ProfileUseCase) evictAfterWrite(ctx context.Context, id int) {
	if err := uc.cache.Invalidate(ctx, id); err != nil {
		uc.log.Warn("profile cache invalidation after write failed", zap.Int("profile_id", id), zap.Error(err))
	}
}
