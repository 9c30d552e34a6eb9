// AngelaMos | 2026
// handler.go

package banner

import (
	"encoding/json"
	"net/http"

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
	r.Get("/banners", h.ListActive)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/banners", func(r chi.Router) {
		r.Get("/", h.ListAll)
		r.Post("/", h.Create)
		r.Put("/{bannerID}", h.Update)
		r.Delete("/{bannerID}", h.Delete)
	})
}

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	banners, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		core.WriteError(w, err, "banner")
		return
	}

	core.OK(w, banners)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if !h.decode(w, r, &req) {
		return
	}

	b, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.WriteError(w, err, "Banner")
		return
	}

	core.Created(w, b)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	b, err := h.service.Update(r.Context(), chi.URLParam(r, "bannerID"), req)
	if err != nil {
		core.WriteError(w, err, "Banner")
		return
	}

	core.OK(w, b)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "bannerID")); err != nil {
		core.WriteError(w, err, "Banner")
		return
	}

	core.Message(w, "Banner deleted successfully")
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
