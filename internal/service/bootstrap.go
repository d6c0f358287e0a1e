package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/student-service/internal/auth"
	"github.com/spec-kit/student-service/internal/domain"
	"github.com/spec-kit/student-service/internal/repository"
)

// SeedDefaultUsers provisions the demo accounts on startup when absent:
// admin/admin with the admin role and user/user with the basic role.
// Demo accounts only; real deployments disable seeding via config.
func SeedDefaultUsers(ctx context.Context, users repository.UserRepository, bcryptCost int, logger *zap.Logger) error {
	seeds := []struct {
		username string
		password string
		roles    []domain.Role
	}{
		{username: "admin", password: "admin", roles: []domain.Role{domain.RoleAdmin, domain.RoleUser}},
		{username: "user", password: "user", roles: []domain.Role{domain.RoleUser}},
	}

	for _, seed := range seeds {
		exists, err := users.ExistsByUsername(ctx, seed.username)
		if err != nil {
			return fmt.Errorf("check user %s: %w", seed.username, err)
		}
		if exists {
			continue
		}

		hash, err := auth.HashPassword(seed.password, bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", seed.username, err)
		}

		user := &domain.User{
			Username:     seed.username,
			PasswordHash: hash,
			Roles:        seed.roles,
			Enabled:      true,
		}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("create user %s: %w", seed.username, err)
		}
		logger.Info("seeded default user", zap.String("username", seed.username))
	}

	return nil
}
