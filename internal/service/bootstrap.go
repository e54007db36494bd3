package service

import (
	"errors"
	"fmt"

	"ml-league-backend/internal/auth"
	"ml-league-backend/internal/database/models"
	"ml-league-backend/internal/logger"
	"ml-league-backend/internal/repository"

	"gorm.io/gorm"
)

// EnsureAdmin makes sure an administrator account with the given handle
// exists. It is invoked once by the process entry point and is idempotent: an
// existing account is left untouched, and empty credentials skip seeding
// entirely. This is the only path that sets the administrator flag.
func EnsureAdmin(users repository.UserRepositoryInterface, handle, password string) error {
	if handle == "" || password == "" {
		return nil
	}

	existing, err := users.GetByHandle(handle)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		Handle:       handle,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := users.Create(admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	logger.New().WithField("handle", handle).Info("seeded administrator account")
	return nil
}
