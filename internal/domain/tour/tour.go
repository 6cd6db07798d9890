package tour

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Defaults applied when an admin omits optional fields on creation.
const (
	DefaultDurationDays = 7
	DefaultMaxTravelers = 20
	DefaultImageURL     = "/images/tour-placeholder.jpg"
)

// Tour is a snapshot of a tour row as read from storage.
type Tour struct {
	ID           uuid.UUID
	Name         string
	Description  *string
	Price        decimal.Decimal
	CategoryID   *uuid.UUID
	CategoryName *string
	StartDate    *time.Time
	EndDate      *time.Time
	DurationDays int32
	MaxTravelers int32
	ImageURL     string
	Included     []string
	NotIncluded  []string
	IsPopular    bool
	IsDiscounted bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
