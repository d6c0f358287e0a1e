package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/student-service/internal/events"
)

// AuditService writes an audit log line for every student lifecycle event.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to student events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventStudentCreated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventStudentUpdated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventStudentDeleted, a.handleEvent)
}

func (a *AuditService) handleEvent(_ context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Int64("student_id", event.StudentID),
		zap.String("actor", event.Actor),
		zap.Any("payload", event.Payload),
	)
	return nil
}
