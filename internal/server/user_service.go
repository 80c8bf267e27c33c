// Package server provides the HTTP REST API for AndikaCV.
package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gedeon/andikacv/internal/config"
	"github.com/gedeon/andikacv/internal/db"
	"github.com/gedeon/andikacv/internal/types"
)

// ProfileStore is the subset of the db layer the user service needs.
// Tests substitute an in-memory implementation.
type ProfileStore interface {
	CreateProfile(ctx context.Context, email, passwordHash, fullName string) (*db.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*db.Profile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*db.Profile, error)
	UpdateProfileName(ctx context.Context, id uuid.UUID, fullName string) error
	UpdateProfilePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UserService provides business logic for profile authentication operations
type UserService struct {
	store          ProfileStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store ProfileStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// toAPIProfile converts db.Profile to types.Profile. The password hash
// stays behind in the db layer.
func toAPIProfile(p *db.Profile) *types.Profile {
	if p == nil {
		return nil
	}
	return &types.Profile{
		ID:               p.ID,
		Email:            p.Email,
		FullName:         p.FullName,
		SubscriptionTier: p.SubscriptionTier,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// Register creates a new profile with password authentication
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.Profile, error) {
	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile, err := s.store.CreateProfile(ctx, req.Email, passwordHash, req.FullName)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return nil, &ErrEmailAlreadyExists{Email: req.Email}
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return toAPIProfile(profile), nil
}

// Login authenticates a profile and returns its data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.Profile, error) {
	profile, err := s.store.GetProfileByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	// Security: Always return generic error if profile not found or password wrong
	if profile == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, profile.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	// Hashes made under a lower cost get upgraded now that we hold the
	// plaintext. A failure here must not block the login.
	if s.passwordConfig.NeedsRehash(profile.PasswordHash) {
		if newHash, err := s.passwordConfig.HashPassword(req.Password); err == nil {
			_ = s.store.UpdateProfilePassword(ctx, profile.ID, newHash)
		}
	}

	return toAPIProfile(profile), nil
}

// GetProfile retrieves a profile by ID.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	profile, err := s.store.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return toAPIProfile(profile), nil
}

// UpdateProfile updates mutable profile fields and returns the fresh profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.Profile, error) {
	profile, err := s.store.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	if err := s.store.UpdateProfileName(ctx, userID, req.FullName); err != nil {
		return nil, fmt.Errorf("failed to update profile name: %w", err)
	}

	profile.FullName = req.FullName
	return toAPIProfile(profile), nil
}

// UpdatePassword updates a profile's password
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	profile, err := s.store.GetProfileByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, profile.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.store.UpdateProfilePassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
