// AngelaMos | 2026
// store.go

package seed

import (
	"context"
	"fmt"

	"github.com/dheerghayush/storefront-api/internal/banner"
	"github.com/dheerghayush/storefront-api/internal/catalog"
	"github.com/dheerghayush/storefront-api/internal/core"
)

// Writer is the set of writes a reseed performs inside one transaction.
type Writer interface {
	Clear(ctx context.Context) error
	CreateCategory(ctx context.Context, c *catalog.Category) error
	CreateProduct(ctx context.Context, p *catalog.Product) error
	CreateBanner(ctx context.Context, b *banner.Banner) error
}

type Store interface {
	InTx(ctx context.Context, fn func(w Writer) error) error
}

type sqlStore struct {
	db core.TxRunner
}

func NewStore(db core.TxRunner) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) InTx(ctx context.Context, fn func(w Writer) error) error {
	return s.db.InTx(ctx, func(tx core.DBTX) error {
		return fn(&txWriter{
			tx:      tx,
			catalog: catalog.NewRepository(tx),
			banners: banner.NewRepository(tx),
		})
	})
}

type txWriter struct {
	tx      core.DBTX
	catalog catalog.Repository
	banners banner.Repository
}

// Clear empties the seeded tables. Orders and accounts are kept.
func (w *txWriter) Clear(ctx context.Context) error {
	for _, table := range []string{"products", "categories", "banners"} {
		if _, err := w.tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (w *txWriter) CreateCategory(ctx context.Context, c *catalog.Category) error {
	return w.catalog.CreateCategory(ctx, c)
}

func (w *txWriter) CreateProduct(ctx context.Context, p *catalog.Product) error {
	return w.catalog.CreateProduct(ctx, p)
}

func (w *txWriter) CreateBanner(ctx context.Context, b *banner.Banner) error {
	return w.banners.Create(ctx, b)
}
