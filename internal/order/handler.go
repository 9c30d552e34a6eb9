// AngelaMos | 2026
// handler.go

package order

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
	r.Post("/orders", h.Create)
	r.Get("/orders/{orderID}", h.Get)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/orders", h.List)
	r.Put("/orders/{orderID}", h.UpdateStatus)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	o, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		core.WriteError(w, err, "Order")
		return
	}

	core.Created(w, o)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		core.WriteError(w, err, "Order")
		return
	}

	core.OK(w, o)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := queryInt(q.Get("limit"), DefaultListLimit)
	if err != nil {
		core.BadRequest(w, "limit must be an integer")
		return
	}
	skip, err := queryInt(q.Get("skip"), 0)
	if err != nil {
		core.BadRequest(w, "skip must be an integer")
		return
	}

	result, err := h.service.ListOrders(r.Context(), ListFilter{
		OrderStatus: q.Get("order_status"),
		Limit:       limit,
		Skip:        skip,
	})
	if err != nil {
		core.WriteError(w, err, "Order")
		return
	}

	core.OK(w, result)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	o, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "orderID"), req)
	if err != nil {
		core.WriteError(w, err, "Order")
		return
	}

	core.OK(w, o)
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

func queryInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
