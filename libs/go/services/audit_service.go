package services

import (
	"context"
	"encoding/json"

	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// AuditService records administrative and monetary actions. Write failures are
// logged and never returned to the caller.
type AuditService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(queries db.Querier) *AuditService {
	return &AuditService{
		queries: queries,
		logger:  logger.Log,
	}
}

// Record writes an audit row. uuid.Nil as actor marks a system action.
func (s *AuditService) Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, details map[string]interface{}) {
	// details is JSONB NOT NULL; a nil slice would be sent as NULL
	payload := []byte("{}")
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			s.logger.Warn("failed to marshal audit details", zap.String("action", action), zap.Error(err))
		} else {
			payload = raw
		}
	}

	actor := pgtype.UUID{}
	if actorID != uuid.Nil {
		actor = pgtype.UUID{Bytes: actorID, Valid: true}
	}

	err := s.queries.CreateAuditLog(ctx, db.CreateAuditLogParams{
		ActorID:    actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    payload,
	})
	if err != nil {
		s.logger.Error("failed to write audit log",
			zap.String("action", action),
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID.String()),
			zap.Error(err))
	}
}
