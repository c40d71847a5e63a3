package service

import (
	"context"
	"encoding/json"

	"gowheels/internal/entity"
	"gowheels/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// logAudit writes a best-effort audit row; failures never affect the
// operation that triggered them.
func logAudit(
	ctx context.Context,
	logs repository.AuditLogRepository,
	userID *uuid.UUID,
	action entity.AuditAction,
	metadata map[string]any,
) {
	if logs == nil {
		return
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return
		}
		payload = datatypes.JSON(bytes)
	}
	_ = logs.Log(ctx, &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: payload,
	})
}
