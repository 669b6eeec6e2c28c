package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cloudshop/internal/model"
	"cloudshop/internal/repository"
	"cloudshop/internal/sms"
	"cloudshop/internal/utils"

	"github.com/google/uuid"
	"github.com/mojocn/base64Captcha"
)

var (
	ErrInvalidPhone   = errors.New("invalid phone number format")
	ErrSmsSendFailed  = errors.New("failed to send sms")
	ErrSmsCodeInvalid = errors.New("sms code is wrong or expired")
	ErrCaptchaInvalid = errors.New("captcha is wrong or expired")
)

const codeTTL = 5 * time.Minute

// Confusable characters (0/O, 1/I/l) are excluded from captcha text
const captchaAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// VerificationService issues and checks SMS codes and image captchas
type VerificationService interface {
	IssueSmsCode(ctx context.Context, phone string) error
	// CheckSmsCode verifies phone+code without consuming it. Returns
	// ErrSmsCodeInvalid when no unexpired match exists.
	CheckSmsCode(ctx context.Context, phone, code string) error
	// ConsumeSmsCode verifies phone+code and deletes the record, enforcing
	// single use. Returns ErrSmsCodeInvalid when no unexpired match exists.
	ConsumeSmsCode(ctx context.Context, phone, code string) error
	// InvalidateSmsCode removes whatever code is stored for a phone,
	// regardless of its state
	InvalidateSmsCode(ctx context.Context, phone string) error
	// IssueCaptcha returns a captcha id and a base64 PNG data URI
	IssueCaptcha(ctx context.Context) (string, string, error)
	// ConsumeCaptcha verifies id+text case-insensitively and marks the
	// record used. Returns ErrCaptchaInvalid on no match.
	ConsumeCaptcha(ctx context.Context, id, text string) error
}

type verificationService struct {
	smsRepo     repository.SmsCodeRepository
	captchaRepo repository.CaptchaRepository
	sender      sms.Sender
	driver      *base64Captcha.DriverString
}

// NewVerificationService creates a new VerificationService
func NewVerificationService(smsRepo repository.SmsCodeRepository, captchaRepo repository.CaptchaRepository, sender sms.Sender) VerificationService {
	return &verificationService{
		smsRepo:     smsRepo,
		captchaRepo: captchaRepo,
		sender:      sender,
		driver:      base64Captcha.NewDriverString(60, 200, 2, base64Captcha.OptionShowHollowLine, 6, captchaAlphabet, nil, nil, nil),
	}
}

// IssueSmsCode generates a 6-digit code for a phone with a 5-minute expiry,
// replacing any previous code, and hands it to the send adapter. A send
// failure is reported as ErrSmsSendFailed, never masked as success.
func (s *verificationService) IssueSmsCode(ctx context.Context, phone string) error {
	if !utils.IsValidPhone(phone) {
		return ErrInvalidPhone
	}

	code := &model.SmsCode{
		Phone:     phone,
		Code:      utils.GenerateSmsCode(),
		ExpiresAt: time.Now().Add(codeTTL),
		CreatedAt: time.Now(),
	}
	if err := s.smsRepo.Save(ctx, code); err != nil {
		return fmt.Errorf("failed to store sms code: %w", err)
	}

	if err := s.sender.Send(ctx, phone, code.Code); err != nil {
		log.Printf("sms send to %s failed: %v", phone, err)
		return ErrSmsSendFailed
	}
	return nil
}

// CheckSmsCode verifies a code without consuming it
func (s *verificationService) CheckSmsCode(ctx context.Context, phone, code string) error {
	match, err := s.smsRepo.Verify(ctx, phone, code)
	if err != nil {
		return fmt.Errorf("failed to verify sms code: %w", err)
	}
	if match == nil {
		return ErrSmsCodeInvalid
	}
	return nil
}

// ConsumeSmsCode verifies and deletes a code in one call
func (s *verificationService) ConsumeSmsCode(ctx context.Context, phone, code string) error {
	if err := s.CheckSmsCode(ctx, phone, code); err != nil {
		return err
	}
	return s.InvalidateSmsCode(ctx, phone)
}

// InvalidateSmsCode removes the stored code for a phone
func (s *verificationService) InvalidateSmsCode(ctx context.Context, phone string) error {
	if err := s.smsRepo.Delete(ctx, phone); err != nil {
		return fmt.Errorf("failed to invalidate sms code: %w", err)
	}
	return nil
}

// IssueCaptcha draws a captcha image and stores its uppercased text with a
// 5-minute expiry
func (s *verificationService) IssueCaptcha(ctx context.Context) (string, string, error) {
	_, content, answer := s.driver.GenerateIdQuestionAnswer()
	item, err := s.driver.DrawCaptcha(content)
	if err != nil {
		return "", "", fmt.Errorf("failed to draw captcha: %w", err)
	}

	captcha := &model.Captcha{
		ID:        "CAP" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Text:      strings.ToUpper(answer),
		ExpiresAt: time.Now().Add(codeTTL),
		Used:      false,
		CreatedAt: time.Now(),
	}
	if err := s.captchaRepo.Save(ctx, captcha); err != nil {
		return "", "", fmt.Errorf("failed to store captcha: %w", err)
	}

	return captcha.ID, item.EncodeB64string(), nil
}

// ConsumeCaptcha verifies case-insensitively and marks the record used
func (s *verificationService) ConsumeCaptcha(ctx context.Context, id, text string) error {
	match, err := s.captchaRepo.Verify(ctx, id, strings.ToUpper(text))
	if err != nil {
		return fmt.Errorf("failed to verify captcha: %w", err)
	}
	if match == nil {
		return ErrCaptchaInvalid
	}
	if err := s.captchaRepo.MarkUsed(ctx, id); err != nil {
		return fmt.Errorf("failed to consume captcha: %w", err)
	}
	return nil
}
