package response

import (
	"encoding/json"
	"time"

	"tour-booking-api/internal/domain/adminlog"

	"github.com/google/uuid"
)

type AdminLogResponse struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   *uuid.UUID      `json:"entity_id,omitempty"`
	OldValues  json.RawMessage `json:"old_values,omitempty"`
	NewValues  json.RawMessage `json:"new_values,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func FromAdminLog(e adminlog.Entry) AdminLogResponse {
	return AdminLogResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		Action:     string(e.Action),
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		OldValues:  e.OldValues,
		NewValues:  e.NewValues,
		CreatedAt:  e.CreatedAt,
	}
}

func FromAdminLogs(es []adminlog.Entry) []AdminLogResponse {
	out := make([]AdminLogResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromAdminLog(e))
	}
	return out
}
