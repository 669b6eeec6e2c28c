package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"cloudshop/internal/model"
	"cloudshop/internal/repository"
	"cloudshop/internal/utils"
)

// SeedDefaultAdmin creates the default administrator account when the admins
// table is empty. Credentials come from ADMIN_USERNAME / ADMIN_PASSWORD.
func SeedDefaultAdmin(adminRepo repository.AdminRepository) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("WARNING: ADMIN_PASSWORD not set, seeding default admin with the development password")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &model.Admin{
		Username:     username,
		PasswordHash: hash,
		Email:        os.Getenv("ADMIN_EMAIL"),
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	log.Printf("Seeded default admin account %q (id %d)", admin.Username, admin.ID)
	return nil
}
