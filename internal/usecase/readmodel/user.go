package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserRM is the user projection exposed to handlers. The password
// hash never leaves the repository layer.
type AuthorizedUserRM struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
