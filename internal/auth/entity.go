// AngelaMos | 2026
// entity.go

package auth

import (
	"time"

	"github.com/dheerghayush/storefront-api/internal/middleware"
)

const (
	KindUser  = middleware.KindUser
	KindAdmin = middleware.KindAdmin
)

// Account is either a customer or an admin credential record, tagged by
// Kind. Phone is empty for admins and Role is empty for users.
type Account struct {
	Kind         string    `db:"kind"`
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Role         string    `db:"role"`
	PasswordHash string    `db:"password_hash"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

func (a *Account) IsAdmin() bool {
	return a.Kind == KindAdmin
}

func (a *Account) Principal() *middleware.Principal {
	return &middleware.Principal{
		ID:    a.ID,
		Kind:  a.Kind,
		Name:  a.Name,
		Email: a.Email,
		Phone: a.Phone,
		Role:  a.Role,
	}
}
