// AngelaMos | 2026
// repository.go

package banner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dheerghayush/storefront-api/internal/core"
)

const bannerColumns = `id, title, subtitle, description, bg_color, image,
	button_text, button_link, is_active, display_order, created_at`

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Banner, error)
	Create(ctx context.Context, banner *Banner) error
	Update(ctx context.Context, id string, set *core.Assignments) (*Banner, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, created_at, id`

	banners := []Banner{}
	if err := r.db.SelectContext(ctx, &banners, query); err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}

	return banners, nil
}

func (r *repository) Create(ctx context.Context, b *Banner) error {
	query := `
		INSERT INTO banners (id, title, subtitle, description, bg_color, image,
			button_text, button_link, is_active, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Title,
		b.Subtitle,
		b.Description,
		b.BgColor,
		b.Image,
		b.ButtonText,
		b.ButtonLink,
		b.IsActive,
		b.Order,
		b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create banner: %w", core.MapWriteError(err))
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	set *core.Assignments,
) (*Banner, error) {
	query, args := set.UpdateQuery("banners", "id", id, bannerColumns)

	var b Banner
	err := r.db.GetContext(ctx, &b, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update banner: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}

	return &b, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}

	if err := core.RowsAffectedOrNotFound(result); err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM banners`); err != nil {
		return 0, fmt.Errorf("count banners: %w", err)
	}
	return total, nil
}
