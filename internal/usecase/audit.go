package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"tour-booking-api/internal/domain/adminlog"

	"github.com/google/uuid"
)

type AdminLogRepository interface {
	Append(ctx context.Context, entry adminlog.Entry) error
	List(ctx context.Context, userID *uuid.UUID, page, limit int) ([]adminlog.Entry, int64, error)
}

type AdminLogUseCase interface {
	List(ctx context.Context, userID *uuid.UUID, page, limit int) ([]adminlog.Entry, int64, error)
}

type adminLogUseCaseImpl struct {
	repo AdminLogRepository
}

func NewAdminLogUseCase(repo AdminLogRepository) AdminLogUseCase {
	return &adminLogUseCaseImpl{repo: repo}
}

func (u *adminLogUseCaseImpl) List(ctx context.Context, userID *uuid.UUID, page, limit int) ([]adminlog.Entry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return u.repo.List(ctx, userID, page, limit)
}

// writeAdminLog records an admin mutation. Audit failures are logged and
// swallowed: the mutation itself has already committed.
func writeAdminLog(ctx context.Context, repo AdminLogRepository, actorID uuid.UUID, action adminlog.Action, entityType string, entityID *uuid.UUID, oldValues, newValues any) {
	entry := adminlog.Entry{
		UserID:     actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	if oldValues != nil {
		if b, err := json.Marshal(oldValues); err == nil {
			entry.OldValues = b
		}
	}
	if newValues != nil {
		if b, err := json.Marshal(newValues); err == nil {
			entry.NewValues = b
		}
	}

	if err := repo.Append(ctx, entry); err != nil {
		slog.Warn("failed to append admin log entry",
			slog.String("action", string(action)),
			slog.String("entity_type", entityType),
			slog.String("error", err.Error()),
		)
	}
}
