package bootstrap

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/config"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/repository"
)

// SeedAdmin creates the default administrator account on first startup.
// It is idempotent: if any admin user already exists, nothing is written.
// A concurrent seeder losing the unique-index race is treated as success.
func SeedAdmin(ctx context.Context, users repository.UserRepository, cfg config.AdminCfg, log *zap.SugaredLogger) error {
	n, err := users.CountByType(ctx, models.UserTypeAdmin)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = users.Insert(ctx, &models.User{
		Username:   cfg.Username,
		Email:      cfg.Email,
		Password:   string(hash),
		UserType:   models.UserTypeAdmin,
		FullName:   "Administrator",
		IsVerified: true,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil
	}
	if err != nil {
		return err
	}

	log.Infow("default admin account created", "username", cfg.Username)
	return nil
}
