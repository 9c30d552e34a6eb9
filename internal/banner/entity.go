// AngelaMos | 2026
// entity.go

package banner

import (
	"time"
)

const (
	DefaultBgColor    = "#4CAF50"
	DefaultButtonText = "Shop Now"
	DefaultButtonLink = "/products"
)

// Banner is a hero slide. Order is stored as display_order and sorts
// ascending.
type Banner struct {
	ID          string    `db:"id"            json:"id"`
	Title       string    `db:"title"         json:"title"`
	Subtitle    string    `db:"subtitle"      json:"subtitle"`
	Description string    `db:"description"   json:"description"`
	BgColor     string    `db:"bg_color"      json:"bg_color"`
	Image       string    `db:"image"         json:"image"`
	ButtonText  string    `db:"button_text"   json:"button_text"`
	ButtonLink  string    `db:"button_link"   json:"button_link"`
	IsActive    bool      `db:"is_active"     json:"is_active"`
	Order       int       `db:"display_order" json:"order"`
	CreatedAt   time.Time `db:"created_at"    json:"created_at"`
}
