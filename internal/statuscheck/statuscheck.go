// AngelaMos | 2026
// statuscheck.go

package statuscheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dheerghayush/storefront-api/internal/core"
)

// ListLimit caps GET /status.
const ListLimit = 1000

// Check records that a client reached the API.
type Check struct {
	ID         string    `db:"id"          json:"id"`
	ClientName string    `db:"client_name" json:"client_name"`
	Timestamp  time.Time `db:"timestamp"   json:"timestamp"`
}

type CreateRequest struct {
	ClientName string `json:"client_name" validate:"required,max=200"`
}

type Repository interface {
	Create(ctx context.Context, check *Check) error
	List(ctx context.Context, limit int) ([]Check, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Check) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)`,
		c.ID, c.ClientName, c.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("create status check: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context, limit int) ([]Check, error) {
	checks := []Check{}
	err := r.db.SelectContext(ctx, &checks,
		`SELECT id, client_name, timestamp FROM status_checks
		ORDER BY timestamp, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return checks, nil
}

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

func (s *Service) Record(ctx context.Context, req CreateRequest) (*Check, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return nil, core.InvalidInput("client_name must not be blank")
	}

	c := &Check{
		ID:         uuid.New().String(),
		ClientName: name,
		Timestamp:  s.now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]Check, error) {
	return s.repo.List(ctx, ListLimit)
}
