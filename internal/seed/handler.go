// AngelaMos | 2026
// handler.go

package seed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dheerghayush/storefront-api/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/seed-data", h.Reseed)
}

func (h *Handler) Reseed(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Reseed(r.Context())
	if err != nil {
		core.WriteError(w, err, "seed")
		return
	}

	core.OK(w, result)
}
