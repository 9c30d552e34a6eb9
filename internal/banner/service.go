// AngelaMos | 2026
// service.go

package banner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dheerghayush/storefront-api/internal/core"
)

var errNoFields = core.InvalidInput("No fields to update")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]Banner, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Banner, error) {
	b := &Banner{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		BgColor:     valueOr(req.BgColor, DefaultBgColor),
		Image:       req.Image,
		ButtonText:  valueOr(req.ButtonText, DefaultButtonText),
		ButtonLink:  valueOr(req.ButtonLink, DefaultButtonLink),
		IsActive:    true,
		Order:       req.Order,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "banner created", "banner_id", b.ID, "title", b.Title)
	return b, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateRequest,
) (*Banner, error) {
	var set core.Assignments
	core.SetIf(&set, "title", req.Title)
	core.SetIf(&set, "subtitle", req.Subtitle)
	core.SetIf(&set, "description", req.Description)
	core.SetIf(&set, "bg_color", req.BgColor)
	core.SetIf(&set, "image", req.Image)
	core.SetIf(&set, "button_text", req.ButtonText)
	core.SetIf(&set, "button_link", req.ButtonLink)
	core.SetIf(&set, "is_active", req.IsActive)
	core.SetIf(&set, "display_order", req.Order)

	if set.Empty() {
		return nil, errNoFields
	}

	return s.repo.Update(ctx, id, &set)
}

// Delete removes the banner outright; banners have no soft delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
