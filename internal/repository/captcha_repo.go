package repository

import (
	"context"
	"errors"
	"fmt"

	"cloudshop/internal/model"

	"github.com/jackc/pgx/v5"
)

// CaptchaRepository defines operations for image captcha records
type CaptchaRepository interface {
	Save(ctx context.Context, captcha *model.Captcha) error
	// Verify matches id+text (case-insensitive) against an unused, unexpired
	// record; (nil, nil) when no match. The caller marks the record used.
	Verify(ctx context.Context, id, text string) (*model.Captcha, error)
	MarkUsed(ctx context.Context, id string) error
}

type captchaRepository struct {
	db DB
}

// NewCaptchaRepository creates a new CaptchaRepository
func NewCaptchaRepository(db DB) CaptchaRepository {
	return &captchaRepository{db: db}
}

const sweepCaptchaSQL = `DELETE FROM captchas WHERE expires_at < NOW()`

// Save stores a captcha record, sweeping expired ones first
func (r *captchaRepository) Save(ctx context.Context, captcha *model.Captcha) error {
	if _, err := r.db.Exec(ctx, sweepCaptchaSQL); err != nil {
		return fmt.Errorf("failed to sweep expired captchas: %w", err)
	}

	sql := `INSERT INTO captchas (id, text, expires_at, used, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, sql, captcha.ID, captcha.Text, captcha.ExpiresAt, captcha.Used, captcha.CreatedAt); err != nil {
		return fmt.Errorf("failed to save captcha: %w", err)
	}
	return nil
}

// Verify matches against an unused, unexpired record. Stored text is
// uppercase; the caller normalizes input the same way.
func (r *captchaRepository) Verify(ctx context.Context, id, text string) (*model.Captcha, error) {
	c := &model.Captcha{}
	sql := `SELECT id, text, expires_at, used, created_at FROM captchas
            WHERE id = $1 AND text = $2 AND used = FALSE AND expires_at > NOW()`
	err := r.db.QueryRow(ctx, sql, id, text).Scan(&c.ID, &c.Text, &c.ExpiresAt, &c.Used, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to verify captcha: %w", err)
	}
	return c, nil
}

// MarkUsed consumes a captcha so it cannot verify again
func (r *captchaRepository) MarkUsed(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `UPDATE captchas SET used = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to mark captcha used: %w", err)
	}
	return nil
}
