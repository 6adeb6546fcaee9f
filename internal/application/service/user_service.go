package service

import (
	"context"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
)

// UserService handles user profile administration.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns all user profiles.
func (s *UserService) ListUsers(ctx context.Context) ([]entity.UserProfile, error) {
	return s.userRepo.List(ctx)
}

// GetUser retrieves a profile by UID.
func (s *UserService) GetUser(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return profile, nil
}

// SetRole changes a user's role. An admin cannot demote themselves, which
// keeps at least one admin reachable.
func (s *UserService) SetRole(ctx context.Context, actorUID, uid string, role enum.UserRole) (*entity.UserProfile, error) {
	if !role.Valid() {
		return nil, apperror.NewBadRequestError("Unknown role")
	}
	if actorUID == uid && role != enum.UserRoleAdmin {
		return nil, apperror.NewBadRequestError("You cannot remove your own admin role")
	}

	if _, err := s.GetUser(ctx, uid); err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateRole(ctx, uid, role); err != nil {
		return nil, err
	}
	return s.GetUser(ctx, uid)
}
