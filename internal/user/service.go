// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dheerghayush/storefront-api/internal/auth"
	"github.com/dheerghayush/storefront-api/internal/core"
)

const (
	msgEmailTaken = "Email already registered"
	msgPhoneTaken = "Phone number already registered"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a customer. The existence checks only produce a
// friendlier message; the unique indexes decide races.
func (s *Service) Register(
	ctx context.Context,
	input auth.NewUser,
) (*auth.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, core.DuplicateError(msgEmailTaken)
	}

	exists, err = s.repo.ExistsByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, core.DuplicateError(msgPhoneTaken)
	}

	user := &User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        email,
		Phone:        input.Phone,
		PasswordHash: input.PasswordHash,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, conflictFor(err)
	}

	return toAccount(user), nil
}

func conflictFor(err error) error {
	if !errors.Is(err, core.ErrDuplicateKey) {
		return fmt.Errorf("register user: %w", err)
	}

	switch core.ConstraintOf(err) {
	case phoneConstraint:
		return core.DuplicateError(msgPhoneTaken)
	case emailConstraint:
		return core.DuplicateError(msgEmailTaken)
	default:
		return core.DuplicateError("User already registered")
	}
}

func toAccount(u *User) *auth.Account {
	return &auth.Account{
		Kind:         auth.KindUser,
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

var _ auth.UserRegistrar = (*Service)(nil)
