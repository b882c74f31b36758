package service

import (
	"context"
	"fmt"

	"voting-service/internal/ports/models"
)

// UserService exposes voter administration: the user listing that feeds the
// allow-list editor, and role changes (the only way an account becomes an
// admin).
type UserService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns all registered voters
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// UpdateUserRole changes a user's role
func (s *UserService) UpdateUserRole(ctx context.Context, id uint, role string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
