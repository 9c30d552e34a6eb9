// AngelaMos | 2026
// service.go

package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dheerghayush/storefront-api/internal/core"
)

const msgSlugTaken = "Category with this slug already exists"

var (
	errNoFields  = core.InvalidInput("No fields to update")
	errBlankSlug = core.InvalidInput("Slug must not be blank")
)

type Service struct {
	repo  Repository
	cache Cache
	now   func() time.Time
}

func NewService(repo Repository, cache Cache) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &Service{
		repo:  repo,
		cache: cache,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) ListCategories(
	ctx context.Context,
	activeOnly bool,
) ([]Category, error) {
	if !activeOnly {
		return s.repo.ListCategories(ctx, false)
	}

	if cached, ok := s.cache.Categories(ctx); ok {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx, true)
	if err != nil {
		return nil, err
	}

	s.cache.StoreCategories(ctx, categories)
	return categories, nil
}

func (s *Service) GetCategoryBySlug(
	ctx context.Context,
	slug string,
	activeOnly bool,
) (*Category, error) {
	return s.repo.GetCategoryBySlug(ctx, slug, activeOnly)
}

// CreateCategory rejects a slug held by any category, active or not.
func (s *Service) CreateCategory(
	ctx context.Context,
	req CreateCategoryRequest,
) (*Category, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return nil, errBlankSlug
	}

	if err := s.ensureSlugFree(ctx, slug, ""); err != nil {
		return nil, err
	}

	category := &Category{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Image:     req.Image,
		Slug:      slug,
		IsActive:  true,
		CreatedAt: s.now(),
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, slugConflict(err)
	}

	s.cache.Invalidate(ctx)
	return category, nil
}

func (s *Service) UpdateCategory(
	ctx context.Context,
	id string,
	req UpdateCategoryRequest,
) (*Category, error) {
	var set core.Assignments
	core.SetIf(&set, "name", req.Name)
	core.SetIf(&set, "image", req.Image)
	core.SetIf(&set, "is_active", req.IsActive)

	if req.Slug != nil {
		slug := strings.TrimSpace(*req.Slug)
		if slug == "" {
			return nil, errBlankSlug
		}
		if err := s.ensureSlugFree(ctx, slug, id); err != nil {
			return nil, err
		}
		set.Set("slug", slug)
	}

	if set.Empty() {
		return nil, errNoFields
	}

	category, err := s.repo.UpdateCategory(ctx, id, &set)
	if err != nil {
		return nil, slugConflict(err)
	}

	s.cache.Invalidate(ctx)
	return category, nil
}

// DeactivateCategory leaves products that reference the slug untouched.
func (s *Service) DeactivateCategory(ctx context.Context, id string) error {
	if err := s.repo.DeactivateCategory(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	return nil
}

func (s *Service) ListProducts(
	ctx context.Context,
	filter ProductFilter,
) ([]Product, error) {
	if !filter.ActiveOnly {
		return s.repo.ListProducts(ctx, filter)
	}

	if cached, ok := s.cache.Products(ctx, filter); ok {
		return cached, nil
	}

	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.cache.StoreProducts(ctx, filter, products)
	return products, nil
}

func (s *Service) GetProduct(
	ctx context.Context,
	id string,
	activeOnly bool,
) (*Product, error) {
	return s.repo.GetProduct(ctx, id, activeOnly)
}

func (s *Service) CreateProduct(
	ctx context.Context,
	req CreateProductRequest,
) (*Product, error) {
	product := &Product{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Category:      req.Category,
		Weight:        req.Weight,
		Price:         core.RoundMoney(req.Price),
		OriginalPrice: core.RoundMoney(req.OriginalPrice),
		Image:         req.Image,
		IsBestseller:  req.IsBestseller,
		Stock:         DefaultStock,
		IsActive:      true,
		CreatedAt:     s.now(),
	}

	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return product, nil
}

func (s *Service) UpdateProduct(
	ctx context.Context,
	id string,
	req UpdateProductRequest,
) (*Product, error) {
	var set core.Assignments
	core.SetIf(&set, "name", req.Name)
	core.SetIf(&set, "category", req.Category)
	core.SetIf(&set, "weight", req.Weight)
	core.SetIf(&set, "price", core.RoundMoneyPtr(req.Price))
	core.SetIf(&set, "original_price", core.RoundMoneyPtr(req.OriginalPrice))
	core.SetIf(&set, "image", req.Image)
	core.SetIf(&set, "is_bestseller", req.IsBestseller)
	core.SetIf(&set, "description", req.Description)
	core.SetIf(&set, "stock", req.Stock)
	core.SetIf(&set, "is_active", req.IsActive)

	if set.Empty() {
		return nil, errNoFields
	}

	product, err := s.repo.UpdateProduct(ctx, id, &set)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return product, nil
}

func (s *Service) DeactivateProduct(ctx context.Context, id string) error {
	if err := s.repo.DeactivateProduct(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	return nil
}

// ActiveCounts reports active products and categories for the dashboard.
func (s *Service) ActiveCounts(ctx context.Context) (products, categories int, err error) {
	products, err = s.repo.CountActiveProducts(ctx)
	if err != nil {
		return 0, 0, err
	}

	categories, err = s.repo.CountActiveCategories(ctx)
	if err != nil {
		return 0, 0, err
	}

	return products, categories, nil
}

// InvalidateCache drops every cached listing. Used after bulk reseeding.
func (s *Service) InvalidateCache(ctx context.Context) {
	s.cache.Invalidate(ctx)
}

func (s *Service) ensureSlugFree(ctx context.Context, slug, excludeID string) error {
	exists, err := s.repo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return core.DuplicateError(msgSlugTaken)
	}
	return nil
}

func slugConflict(err error) error {
	if errors.Is(err, core.ErrDuplicateKey) {
		return core.DuplicateError(msgSlugTaken)
	}
	return err
}
