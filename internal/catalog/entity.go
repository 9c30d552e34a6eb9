// AngelaMos | 2026
// entity.go

package catalog

import (
	"time"
)

type Category struct {
	ID        string    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Image     string    `db:"image"      json:"image"`
	Slug      string    `db:"slug"       json:"slug"`
	IsActive  bool      `db:"is_active"  json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Product struct {
	ID            string    `db:"id"             json:"id"`
	Name          string    `db:"name"           json:"name"`
	Category      string    `db:"category"       json:"category"`
	Weight        string    `db:"weight"         json:"weight"`
	Price         float64   `db:"price"          json:"price"`
	OriginalPrice float64   `db:"original_price" json:"original_price"`
	Image         string    `db:"image"          json:"image"`
	IsBestseller  bool      `db:"is_bestseller"  json:"is_bestseller"`
	Description   string    `db:"description"    json:"description"`
	Stock         int       `db:"stock"          json:"stock"`
	IsActive      bool      `db:"is_active"      json:"is_active"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
}

const DefaultStock = 100

// ProductFilter narrows a product listing. A nil Bestseller matches both.
type ProductFilter struct {
	Category   string
	Bestseller *bool
	ActiveOnly bool
}
