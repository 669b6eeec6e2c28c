package repository

import (
	"context"
	"errors"
	"fmt"

	"cloudshop/internal/model"

	"github.com/jackc/pgx/v5"
)

// SmsCodeRepository defines operations for SMS verification codes. There is
// no background reclaimer: Save and Verify sweep expired rows inline, so an
// expired code can never verify.
type SmsCodeRepository interface {
	Save(ctx context.Context, code *model.SmsCode) error
	Verify(ctx context.Context, phone, code string) (*model.SmsCode, error)
	Delete(ctx context.Context, phone string) error
}

type smsCodeRepository struct {
	db DB
}

// NewSmsCodeRepository creates a new SmsCodeRepository
func NewSmsCodeRepository(db DB) SmsCodeRepository {
	return &smsCodeRepository{db: db}
}

const sweepSmsSQL = `DELETE FROM sms_codes WHERE expires_at < NOW()`

// Save stores a code for a phone, replacing any previous one. The phone
// column is the primary key, so a single upsert keeps the one-active-code
// invariant without a transaction.
func (r *smsCodeRepository) Save(ctx context.Context, code *model.SmsCode) error {
	if _, err := r.db.Exec(ctx, sweepSmsSQL); err != nil {
		return fmt.Errorf("failed to sweep expired sms codes: %w", err)
	}

	sql := `INSERT INTO sms_codes (phone, code, expires_at, created_at)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (phone) DO UPDATE SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at`
	if _, err := r.db.Exec(ctx, sql, code.Phone, code.Code, code.ExpiresAt, code.CreatedAt); err != nil {
		return fmt.Errorf("failed to save sms code: %w", err)
	}
	return nil
}

// Verify matches phone+code against an unexpired record. Returns (nil, nil)
// when no match exists. The caller must Delete after a successful use.
func (r *smsCodeRepository) Verify(ctx context.Context, phone, code string) (*model.SmsCode, error) {
	if _, err := r.db.Exec(ctx, sweepSmsSQL); err != nil {
		return nil, fmt.Errorf("failed to sweep expired sms codes: %w", err)
	}

	sc := &model.SmsCode{}
	sql := `SELECT phone, code, expires_at, created_at FROM sms_codes
            WHERE phone = $1 AND code = $2 AND expires_at > NOW()`
	err := r.db.QueryRow(ctx, sql, phone, code).Scan(&sc.Phone, &sc.Code, &sc.ExpiresAt, &sc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to verify sms code: %w", err)
	}
	return sc, nil
}

// Delete removes the code for a phone after successful use
func (r *smsCodeRepository) Delete(ctx context.Context, phone string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sms_codes WHERE phone = $1`, phone); err != nil {
		return fmt.Errorf("failed to delete sms code: %w", err)
	}
	return nil
}
