package repository

import (
	"context"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
)

// UserRepository defines the interface for user role profiles. Profiles are
// keyed by Firebase UID; authentication itself lives in Firebase Auth.
type UserRepository interface {
	// Create persists the profile under its UID.
	Create(ctx context.Context, profile *entity.UserProfile) error
	// GetByUID returns (nil, nil) when no profile exists for the UID.
	GetByUID(ctx context.Context, uid string) (*entity.UserProfile, error)
	// List returns all profiles.
	List(ctx context.Context) ([]entity.UserProfile, error)
	// UpdateRole sets the role field of an existing profile.
	UpdateRole(ctx context.Context, uid string, role enum.UserRole) error
}
