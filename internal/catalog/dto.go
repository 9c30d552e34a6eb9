// AngelaMos | 2026
// dto.go

package catalog

import (
	"time"
)

type CreateCategoryRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=100"`
	Image string `json:"image" validate:"max=2048"`
	Slug  string `json:"slug"  validate:"required,min=1,max=100"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty"      validate:"omitempty,min=1,max=100"`
	Image    *string `json:"image,omitempty"     validate:"omitempty,max=2048"`
	Slug     *string `json:"slug,omitempty"      validate:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type CreateProductRequest struct {
	Name          string  `json:"name"           validate:"required,min=1,max=200"`
	Category      string  `json:"category"       validate:"required,max=100"`
	Weight        string  `json:"weight"         validate:"max=50"`
	Price         float64 `json:"price"          validate:"gte=0"`
	OriginalPrice float64 `json:"original_price" validate:"gte=0"`
	Image         string  `json:"image"          validate:"max=2048"`
	IsBestseller  bool    `json:"is_bestseller"`
	Description   *string `json:"description"`
	Stock         *int    `json:"stock"          validate:"omitempty,gte=0"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty"           validate:"omitempty,min=1,max=200"`
	Category      *string  `json:"category,omitempty"       validate:"omitempty,max=100"`
	Weight        *string  `json:"weight,omitempty"         validate:"omitempty,max=50"`
	Price         *float64 `json:"price,omitempty"          validate:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"original_price,omitempty" validate:"omitempty,gte=0"`
	Image         *string  `json:"image,omitempty"          validate:"omitempty,max=2048"`
	IsBestseller  *bool    `json:"is_bestseller,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Stock         *int     `json:"stock,omitempty"          validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Weight        string    `json:"weight"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price"`
	Image         string    `json:"image"`
	IsBestseller  bool      `json:"is_bestseller"`
	Description   string    `json:"description"`
	Stock         int       `json:"stock"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToCategoryResponse(c *Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Image:     c.Image,
		Slug:      c.Slug,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func ToCategoryResponseList(categories []Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, ToCategoryResponse(&categories[i]))
	}
	return out
}

func ToProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Weight:        p.Weight,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		IsBestseller:  p.IsBestseller,
		Description:   p.Description,
		Stock:         p.Stock,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
}

func ToProductResponseList(products []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i]))
	}
	return out
}
