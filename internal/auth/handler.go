// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dheerghayush/storefront-api/internal/core"
	"github.com/dheerghayush/storefront-api/internal/middleware"
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

// RegisterRoutes mounts /auth. credentialLimiter guards the endpoints that
// accept passwords.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, credentialLimiter func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(credentialLimiter)
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.GetMe)
			r.Post("/logout", h.Logout)
		})
	})
}

// RegisterAdminRoutes mounts login and profile on a router already scoped
// to /admin.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly, credentialLimiter func(http.Handler) http.Handler,
) {
	r.With(credentialLimiter).Post("/login", h.AdminLogin)
	r.With(authenticator, adminOnly).Get("/me", h.GetAdminMe)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.service.Signup(r.Context(), req)
	if err != nil {
		core.WriteError(w, err, "user")
		return
	}

	core.Created(w, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLogin(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeLoginError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLogin(w, r)
	if !ok {
		return
	}

	resp, err := h.service.AdminLogin(r.Context(), req)
	if err != nil {
		writeLoginError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	if principal == nil {
		core.Unauthorized(w, "")
		return
	}

	core.OK(w, h.service.Me(principal))
}

func (h *Handler) GetAdminMe(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	if !principal.IsAdmin() {
		core.Unauthorized(w, "admin credentials required")
		return
	}

	core.OK(w, h.service.AdminMe(principal))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), middleware.ExtractToken(r)); err != nil {
		core.WriteError(w, err, "token")
		return
	}

	core.NoContent(w)
}

func (h *Handler) decodeLogin(
	w http.ResponseWriter,
	r *http.Request,
) (LoginRequest, bool) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return req, false
	}

	return req, true
}

func writeLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		core.JSONError(w, core.UnauthorizedError("Invalid email or password"))
	case errors.Is(err, ErrAccountDisabled):
		core.JSONError(w, core.UnauthorizedError("Account is disabled"))
	default:
		core.InternalServerError(w, err)
	}
}
