// AngelaMos | 2026
// service.go

package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dheerghayush/storefront-api/internal/banner"
	"github.com/dheerghayush/storefront-api/internal/catalog"
	"github.com/dheerghayush/storefront-api/internal/config"
)

const seededMessage = "Database seeded successfully"

type AdminEnsurer interface {
	EnsureExists(ctx context.Context, email, password, name string) (bool, error)
}

type BannerCounter interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, b *banner.Banner) error
}

type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

type Result struct {
	Message         string `json:"message"`
	CategoriesCount int    `json:"categories_count"`
	ProductsCount   int    `json:"products_count"`
	BannersCount    int    `json:"banners_count"`
}

type BootstrapResult struct {
	AdminCreated   bool
	BannersCreated int
}

type Service struct {
	store   Store
	admins  AdminEnsurer
	banners BannerCounter
	cache   CacheInvalidator
	cfg     config.BootstrapConfig
	now     func() time.Time
}

type ServiceConfig struct {
	Store     Store
	Admins    AdminEnsurer
	Banners   BannerCounter
	Cache     CacheInvalidator
	Bootstrap config.BootstrapConfig
}

func NewService(cfg ServiceConfig) *Service {
	return &Service{
		store:   cfg.Store,
		admins:  cfg.Admins,
		banners: cfg.Banners,
		cache:   cfg.Cache,
		cfg:     cfg.Bootstrap,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Bootstrap makes sure the configured admin exists and, when the banner
// table is empty, installs the default hero slides. Repeated runs change
// nothing.
func (s *Service) Bootstrap(ctx context.Context) (*BootstrapResult, error) {
	result := &BootstrapResult{}

	created, err := s.admins.EnsureExists(
		ctx,
		s.cfg.AdminEmail,
		s.cfg.AdminPassword,
		s.cfg.AdminName,
	)
	if err != nil {
		return nil, fmt.Errorf("ensure admin: %w", err)
	}
	result.AdminCreated = created
	if created {
		slog.InfoContext(ctx, "default admin created", "email", s.cfg.AdminEmail)
	}

	if !s.cfg.SeedBanners {
		return result, nil
	}

	count, err := s.banners.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return result, nil
	}

	base := s.now()
	for i := range banners {
		b := banners[i]
		b.ID = uuid.New().String()
		b.IsActive = true
		b.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)

		if err := s.banners.Create(ctx, &b); err != nil {
			return nil, fmt.Errorf("seed default banners: %w", err)
		}
		result.BannersCreated++
	}

	slog.InfoContext(ctx, "default banners seeded", "count", result.BannersCreated)
	return result, nil
}

// Reseed replaces categories, products and banners with the fixed dataset
// in a single transaction. Created timestamps step by a millisecond so the
// dataset lists in its declared order.
func (s *Service) Reseed(ctx context.Context) (*Result, error) {
	base := s.now()
	tick := 0
	next := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}

	err := s.store.InTx(ctx, func(w Writer) error {
		if err := w.Clear(ctx); err != nil {
			return err
		}

		for i := range categories {
			c := categories[i]
			c.IsActive = true
			c.CreatedAt = next()
			if err := w.CreateCategory(ctx, &c); err != nil {
				return fmt.Errorf("seed category %s: %w", c.Slug, err)
			}
		}

		for i := range products {
			p := products[i]
			p.Stock = catalog.DefaultStock
			p.Description = ""
			p.IsActive = true
			p.CreatedAt = next()
			if err := w.CreateProduct(ctx, &p); err != nil {
				return fmt.Errorf("seed product %s: %w", p.ID, err)
			}
		}

		for i := range banners {
			b := banners[i]
			b.IsActive = true
			b.CreatedAt = next()
			if err := w.CreateBanner(ctx, &b); err != nil {
				return fmt.Errorf("seed banner %s: %w", b.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateCache(ctx)
	}

	slog.InfoContext(ctx, "database reseeded",
		"categories", len(categories),
		"products", len(products),
		"banners", len(banners),
	)

	return &Result{
		Message:         seededMessage,
		CategoriesCount: len(categories),
		ProductsCount:   len(products),
		BannersCount:    len(banners),
	}, nil
}
