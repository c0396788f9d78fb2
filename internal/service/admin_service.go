package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"tripplanner/internal/auth"
	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

const minPasswordLength = 6

// AdminService exposes account management for administrators. Callers are
// assumed to have passed the admin gate already; the one authorization rule
// enforced here is the self-deletion block, which needs the caller's id.
type AdminService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, targetID, role string) error
	UpdatePassword(ctx context.Context, targetID, password string) error
	DeleteUser(ctx context.Context, callerID uint, targetID string) error
}

type adminService struct {
	users repository.UserRepository
}

// NewAdminService creates a new admin service.
func NewAdminService(users repository.UserRepository) AdminService {
	return &adminService{users: users}
}

// parseUserID accepts only a plain non-negative decimal, nothing JS-loose.
func parseUserID(id string) (uint, error) {
	parsed, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return 0, apperrors.ErrInvalidUserID
	}
	return uint(parsed), nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *adminService) UpdateRole(ctx context.Context, targetID, role string) error {
	userID, err := parseUserID(targetID)
	if err != nil {
		return err
	}

	newRole := model.Role(role)
	if !newRole.Valid() {
		return apperrors.ErrInvalidRole
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := s.users.UpdateRole(ctx, userID, newRole); err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

func (s *adminService) UpdatePassword(ctx context.Context, targetID, password string) error {
	userID, err := parseUserID(targetID)
	if err != nil {
		return err
	}

	if len(password) < minPasswordLength {
		return apperrors.ErrInvalidPassword
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// DeleteUser removes an account. Admins cannot delete themselves even though
// the role gate alone would allow it. Owned trips cascade in the store.
func (s *adminService) DeleteUser(ctx context.Context, callerID uint, targetID string) error {
	userID, err := parseUserID(targetID)
	if err != nil {
		return err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if userID == callerID {
		return apperrors.ErrCannotDeleteSelf
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
