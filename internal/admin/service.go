// AngelaMos | 2026
// service.go

package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dheerghayush/storefront-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// EnsureExists creates the admin when no admin holds email. It reports
// whether a row was inserted and is safe to call on every startup.
func (s *Service) EnsureExists(
	ctx context.Context,
	email, password, name string,
) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := core.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	if name == "" {
		name = "Admin"
	}

	err = s.repo.Create(ctx, &Admin{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         DefaultRole,
		IsActive:     true,
	})
	if errors.Is(err, core.ErrDuplicateKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
