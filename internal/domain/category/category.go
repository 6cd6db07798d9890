package category

import (
	"time"

	"github.com/google/uuid"
)

// Category is a snapshot of a category row as read from storage.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description *string
	ImageURL    *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
