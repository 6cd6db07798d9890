package adminlog

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one append-only audit row recording an admin mutation. OldValues
// and NewValues hold JSON snapshots of the affected entity.
type Entry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Action     Action
	EntityType string
	EntityID   *uuid.UUID
	OldValues  []byte
	NewValues  []byte
	CreatedAt  time.Time
}

type Action string

const (
	ActionCreate        Action = "create"
	ActionUpdate        Action = "update"
	ActionDelete        Action = "delete"
	ActionStatusChange  Action = "status_change"
	ActionResetPassword Action = "reset_password"
)
