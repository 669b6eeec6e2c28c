package model

import "time"

// SmsCode is a short-lived verification code bound to a phone number.
// At most one active code exists per phone; saving a new one replaces it.
type SmsCode struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Captcha is a one-shot image captcha record. Text is stored uppercased;
// verification is case-insensitive and consumes the record.
type Captcha struct {
	ID        string    `json:"id"`
	Text      string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// VerifyCaptchaRequest is the payload for the captcha verification endpoint
type VerifyCaptchaRequest struct {
	CaptchaID   string `json:"captchaId" binding:"required"`
	CaptchaText string `json:"captchaText" binding:"required"`
}
