package service

import (
	"context"
	"errors"
	"fmt"

	"cloudshop/internal/model"
	"cloudshop/internal/repository"
	"cloudshop/internal/utils"

	"github.com/jackc/pgx/v5"
)

var (
	ErrAdminNotFound    = errors.New("admin not found")
	ErrWrongPassword    = errors.New("current password is wrong")
	ErrPasswordTooShort = errors.New("new password must be at least 6 characters")
)

// AdminService authenticates administrators and backs the admin panel's user
// management
type AdminService interface {
	Login(ctx context.Context, req model.AdminLoginRequest) (*model.Admin, string, error)
	ChangePassword(ctx context.Context, adminID int, currentPassword, newPassword string) error
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, userID int) error
}

type adminService struct {
	adminRepo    repository.AdminRepository
	userRepo     repository.UserRepository
	verification VerificationService
	jwtUtil      *utils.JWTUtil
}

// NewAdminService creates a new AdminService
func NewAdminService(adminRepo repository.AdminRepository, userRepo repository.UserRepository, verification VerificationService, jwtUtil *utils.JWTUtil) AdminService {
	return &adminService{
		adminRepo:    adminRepo,
		userRepo:     userRepo,
		verification: verification,
		jwtUtil:      jwtUtil,
	}
}

// Login is captcha-gated: the captcha is consumed before credentials are
// checked, so a failed password attempt still spends the captcha.
func (s *adminService) Login(ctx context.Context, req model.AdminLoginRequest) (*model.Admin, string, error) {
	if err := s.verification.ConsumeCaptcha(ctx, req.CaptchaID, req.CaptchaText); err != nil {
		return nil, "", err
	}

	admin, err := s.adminRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find admin: %w", err)
	}
	if admin == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(admin.ID, admin.Username, model.RoleAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return admin, token, nil
}

// ChangePassword verifies the current password before storing a new hash
func (s *adminService) ChangePassword(ctx context.Context, adminID int, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to find admin: %w", err)
	}
	if admin == nil {
		return ErrAdminNotFound
	}
	if !utils.CheckPasswordHash(currentPassword, admin.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.adminRepo.UpdatePassword(ctx, adminID, hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ListUsers returns all registered users for the admin panel
func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user account
func (s *adminService) DeleteUser(ctx context.Context, userID int) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
