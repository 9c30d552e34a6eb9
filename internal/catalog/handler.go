// AngelaMos | 2026
// handler.go

package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dheerghayush/storefront-api/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{slug}", h.GetCategory)
	r.Get("/products", h.ListProducts)
	r.Get("/products/{productID}", h.GetProduct)
}

// RegisterAdminRoutes expects r to be scoped to /admin behind the
// admin-only resolver.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.AdminListCategories)
		r.Post("/", h.CreateCategory)
		r.Put("/{categoryID}", h.UpdateCategory)
		r.Delete("/{categoryID}", h.DeleteCategory)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.AdminListProducts)
		r.Post("/", h.CreateProduct)
		r.Put("/{productID}", h.UpdateProduct)
		r.Delete("/{productID}", h.DeleteProduct)
	})
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context(), true)
	if err != nil {
		core.WriteError(w, err, "category")
		return
	}

	core.OK(w, ToCategoryResponseList(categories))
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategoryBySlug(
		r.Context(),
		chi.URLParam(r, "slug"),
		true,
	)
	if err != nil {
		core.WriteError(w, err, "Category")
		return
	}

	core.OK(w, ToCategoryResponse(category))
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseProductFilter(w, r)
	if !ok {
		return
	}
	filter.ActiveOnly = true

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		core.WriteError(w, err, "product")
		return
	}

	core.OK(w, ToProductResponseList(products))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(
		r.Context(),
		chi.URLParam(r, "productID"),
		true,
	)
	if err != nil {
		core.WriteError(w, err, "Product")
		return
	}

	core.OK(w, ToProductResponse(product))
}

func (h *Handler) AdminListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context(), false)
	if err != nil {
		core.WriteError(w, err, "category")
		return
	}

	core.OK(w, ToCategoryResponseList(categories))
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req)
	if err != nil {
		core.WriteError(w, err, "Category")
		return
	}

	core.Created(w, ToCategoryResponse(category))
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req UpdateCategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	category, err := h.service.UpdateCategory(
		r.Context(),
		chi.URLParam(r, "categoryID"),
		req,
	)
	if err != nil {
		core.WriteError(w, err, "Category")
		return
	}

	core.OK(w, ToCategoryResponse(category))
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeactivateCategory(r.Context(), chi.URLParam(r, "categoryID"))
	if err != nil {
		core.WriteError(w, err, "Category")
		return
	}

	core.Message(w, "Category deleted successfully")
}

func (h *Handler) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	filter := ProductFilter{Category: r.URL.Query().Get("category")}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		core.WriteError(w, err, "product")
		return
	}

	core.OK(w, ToProductResponseList(products))
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		core.WriteError(w, err, "Product")
		return
	}

	core.Created(w, ToProductResponse(product))
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	product, err := h.service.UpdateProduct(
		r.Context(),
		chi.URLParam(r, "productID"),
		req,
	)
	if err != nil {
		core.WriteError(w, err, "Product")
		return
	}

	core.OK(w, ToProductResponse(product))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeactivateProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		core.WriteError(w, err, "Product")
		return
	}

	core.Message(w, "Product deleted successfully")
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		core.BadRequest(w, "invalid request body")
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return false
	}

	return true
}

func parseProductFilter(w http.ResponseWriter, r *http.Request) (ProductFilter, bool) {
	q := r.URL.Query()
	filter := ProductFilter{Category: q.Get("category")}

	if raw := q.Get("bestseller"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			core.BadRequest(w, "bestseller must be true or false")
			return filter, false
		}
		filter.Bestseller = &v
	}

	return filter, true
}
