// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dheerghayush/storefront-api/internal/core"
)

type Repository interface {
	FindAccountByEmail(ctx context.Context, email string) (*Account, error)
	FindAdminByEmail(ctx context.Context, email string) (*Account, error)
	GetAccount(ctx context.Context, kind, id string) (*Account, error)
	UpdatePasswordHash(ctx context.Context, kind, id, passwordHash string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// FindAccountByEmail searches admins and users in one statement. An admin
// row sorts first so it wins when the same email exists in both tables.
func (r *repository) FindAccountByEmail(
	ctx context.Context,
	email string,
) (*Account, error) {
	query := `
		SELECT kind, id, name, email, phone, role, password_hash, is_active, created_at
		FROM (
			SELECT 'admin' AS kind, id, name, email, '' AS phone, role,
			       password_hash, is_active, created_at, 0 AS precedence
			FROM admins
			WHERE LOWER(email) = $1
			UNION ALL
			SELECT 'user' AS kind, id, name, email, phone, '' AS role,
			       password_hash, is_active, created_at, 1 AS precedence
			FROM users
			WHERE LOWER(email) = $1
		) accounts
		ORDER BY precedence
		LIMIT 1`

	var account Account
	err := r.db.GetContext(ctx, &account, query, normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find account: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &account, nil
}

func (r *repository) FindAdminByEmail(
	ctx context.Context,
	email string,
) (*Account, error) {
	query := `
		SELECT 'admin' AS kind, id, name, email, '' AS phone, role,
		       password_hash, is_active, created_at
		FROM admins
		WHERE LOWER(email) = $1`

	var account Account
	err := r.db.GetContext(ctx, &account, query, normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find admin: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	return &account, nil
}

func (r *repository) GetAccount(
	ctx context.Context,
	kind, id string,
) (*Account, error) {
	var query string
	switch kind {
	case KindAdmin:
		query = `
			SELECT 'admin' AS kind, id, name, email, '' AS phone, role,
			       password_hash, is_active, created_at
			FROM admins
			WHERE id = $1`
	case KindUser:
		query = `
			SELECT 'user' AS kind, id, name, email, phone, '' AS role,
			       password_hash, is_active, created_at
			FROM users
			WHERE id = $1`
	default:
		return nil, fmt.Errorf("get account: unknown kind %q: %w", kind, core.ErrNotFound)
	}

	var account Account
	err := r.db.GetContext(ctx, &account, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get account: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return &account, nil
}

func (r *repository) UpdatePasswordHash(
	ctx context.Context,
	kind, id, passwordHash string,
) error {
	table := "users"
	if kind == KindAdmin {
		table = "admins"
	}

	query := fmt.Sprintf(`UPDATE %s SET password_hash = $2 WHERE id = $1`, table)

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := core.RowsAffectedOrNotFound(result); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
