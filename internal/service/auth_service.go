package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloudshop/internal/model"
	"cloudshop/internal/repository"
	"cloudshop/internal/utils"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrInvalidUsername    = errors.New("username must be 3-20 characters")
	ErrInvalidPassword    = errors.New("password must be 6-20 characters and contain letters and digits")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService registers and authenticates storefront users
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error)
	LoginPassword(ctx context.Context, login, password string) (*model.User, string, error)
	LoginSms(ctx context.Context, phone, code string) (*model.User, string, error)
}

type authService struct {
	userRepo     repository.UserRepository
	verification VerificationService
	jwtUtil      *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, verification VerificationService, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo:     userRepo,
		verification: verification,
		jwtUtil:      jwtUtil,
	}
}

// Register creates a user account gated on a valid SMS code. The code is
// checked up front but only invalidated after the account is created, so a
// rejected attempt (taken username or phone) does not burn a valid code.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	if !utils.IsValidUsername(req.Username) {
		return nil, "", ErrInvalidUsername
	}
	if !utils.IsValidPassword(req.Password) {
		return nil, "", ErrInvalidPassword
	}
	if !utils.IsValidPhone(req.Phone) {
		return nil, "", ErrInvalidPhone
	}

	if err := s.verification.CheckSmsCode(ctx, req.Phone, req.SmsCode); err != nil {
		return nil, "", err
	}

	taken, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, "", ErrUsernameTaken
	}

	taken, err = s.userRepo.PhoneExists(ctx, req.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check phone: %w", err)
	}
	if taken {
		return nil, "", ErrPhoneTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Phone:        req.Phone,
		Email:        req.Email,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.verification.InvalidateSmsCode(ctx, req.Phone); err != nil {
		return nil, "", fmt.Errorf("user created, but failed to invalidate sms code: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Username, model.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}
	return user, token, nil
}

// LoginPassword authenticates by username or phone plus password
func (s *authService) LoginPassword(ctx context.Context, login, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Username, model.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// LoginSms authenticates an existing user by phone plus SMS code. The code is
// consumed first, so a valid code spent on an unknown phone cannot be reused.
func (s *authService) LoginSms(ctx context.Context, phone, code string) (*model.User, string, error) {
	if !utils.IsValidPhone(phone) {
		return nil, "", ErrInvalidPhone
	}

	if err := s.verification.ConsumeSmsCode(ctx, phone, code); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Username, model.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}
