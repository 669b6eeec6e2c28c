package repository

import (
	"context"
	"errors"
	"fmt"

	"cloudshop/internal/model"

	"github.com/jackc/pgx/v5"
)

// AdminRepository defines operations for administrator accounts
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	FindByID(ctx context.Context, id int) (*model.Admin, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	Count(ctx context.Context) (int, error)
}

type adminRepository struct {
	db DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create inserts a new admin account
func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	sql := `INSERT INTO admins (username, password_hash, email) VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, sql, admin.Username, admin.PasswordHash, admin.Email).Scan(&admin.ID)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// FindByUsername retrieves an admin by username
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return r.scanOne(ctx, `SELECT id, username, password_hash, email FROM admins WHERE username = $1`, username)
}

// FindByID retrieves an admin by id
func (r *adminRepository) FindByID(ctx context.Context, id int) (*model.Admin, error) {
	return r.scanOne(ctx, `SELECT id, username, password_hash, email FROM admins WHERE id = $1`, id)
}

func (r *adminRepository) scanOne(ctx context.Context, sql string, arg any) (*model.Admin, error) {
	admin := &model.Admin{}
	err := r.db.QueryRow(ctx, sql, arg).Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return admin, nil
}

// UpdatePassword replaces the password hash of an admin account
func (r *adminRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE admins SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Count returns the number of admin accounts
func (r *adminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}
