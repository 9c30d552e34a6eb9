// AngelaMos | 2026
// repository.go

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dheerghayush/storefront-api/internal/core"
)

const (
	categoryColumns = `id, name, image, slug, is_active, created_at`
	productColumns  = `id, name, category, weight, price, original_price, image,
		is_bestseller, description, stock, is_active, created_at`
)

type Repository interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]Category, error)
	GetCategoryBySlug(ctx context.Context, slug string, activeOnly bool) (*Category, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, id string, set *core.Assignments) (*Category, error)
	DeactivateCategory(ctx context.Context, id string) error
	CountActiveCategories(ctx context.Context) (int, error)

	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
	GetProduct(ctx context.Context, id string, activeOnly bool) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, id string, set *core.Assignments) (*Product, error)
	DeactivateProduct(ctx context.Context, id string) error
	CountActiveProducts(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListCategories(
	ctx context.Context,
	activeOnly bool,
) ([]Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at, id`

	categories := []Category{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func (r *repository) GetCategoryBySlug(
	ctx context.Context,
	slug string,
	activeOnly bool,
) (*Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}

	var category Category
	err := r.db.GetContext(ctx, &category, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get category: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &category, nil
}

func (r *repository) SlugExists(
	ctx context.Context,
	slug, excludeID string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, slug, excludeID); err != nil {
		return false, fmt.Errorf("check slug exists: %w", err)
	}

	return exists, nil
}

func (r *repository) CreateCategory(ctx context.Context, c *Category) error {
	query := `
		INSERT INTO categories (id, name, image, slug, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Image,
		c.Slug,
		c.IsActive,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create category: %w", core.MapWriteError(err))
	}

	return nil
}

func (r *repository) UpdateCategory(
	ctx context.Context,
	id string,
	set *core.Assignments,
) (*Category, error) {
	query, args := set.UpdateQuery("categories", "id", id, categoryColumns)

	var category Category
	err := r.db.GetContext(ctx, &category, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update category: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update category: %w", core.MapWriteError(err))
	}

	return &category, nil
}

func (r *repository) DeactivateCategory(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE categories SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate category: %w", err)
	}

	if err := core.RowsAffectedOrNotFound(result); err != nil {
		return fmt.Errorf("deactivate category: %w", err)
	}

	return nil
}

func (r *repository) CountActiveCategories(ctx context.Context) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM categories WHERE is_active = TRUE`)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return total, nil
}

func (r *repository) ListProducts(
	ctx context.Context,
	filter ProductFilter,
) ([]Product, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, filter.Category)
		argIdx++
	}

	if filter.Bestseller != nil {
		conditions = append(conditions, fmt.Sprintf("is_bestseller = $%d", argIdx))
		args = append(args, *filter.Bestseller)
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at, id`

	products := []Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (r *repository) GetProduct(
	ctx context.Context,
	id string,
	activeOnly bool,
) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}

	var product Product
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &product, nil
}

func (r *repository) CreateProduct(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (id, name, category, weight, price, original_price,
			image, is_bestseller, description, stock, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Category,
		p.Weight,
		p.Price,
		p.OriginalPrice,
		p.Image,
		p.IsBestseller,
		p.Description,
		p.Stock,
		p.IsActive,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create product: %w", core.MapWriteError(err))
	}

	return nil
}

func (r *repository) UpdateProduct(
	ctx context.Context,
	id string,
	set *core.Assignments,
) (*Product, error) {
	query, args := set.UpdateQuery("products", "id", id, productColumns)

	var product Product
	err := r.db.GetContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return &product, nil
}

func (r *repository) DeactivateProduct(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}

	if err := core.RowsAffectedOrNotFound(result); err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}

	return nil
}

func (r *repository) CountActiveProducts(ctx context.Context) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM products WHERE is_active = TRUE`)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}
