// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/dheerghayush/storefront-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, admin *Admin) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, admin *Admin) error {
	query := `
		INSERT INTO admins (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &admin.CreatedAt, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.Name,
		admin.Role,
		admin.IsActive,
	)
	if err != nil {
		return fmt.Errorf("create admin: %w", core.MapWriteError(err))
	}

	return nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE LOWER(email) = LOWER($1))`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check admin exists: %w", err)
	}

	return exists, nil
}
