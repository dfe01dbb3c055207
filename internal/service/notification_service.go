package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/samadhan-setu/grievance-service/internal/events"
)

// NotificationService logs notifications for domain events. Outbound
// channels (email, SMS) are out of scope; the hooks are where they would go.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventComplaintStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventComplaintClassified, n.handleClassified)
	n.dispatcher.Subscribe(events.EventOfficialCreated, n.handleOfficialCreated)
}

func (n *NotificationService) handleStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("ComplaintStatusChanged",
		zap.String("complaint_id", event.ComplaintID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleClassified(_ context.Context, event events.Event) error {
	n.logger.Info("ComplaintClassified",
		zap.String("complaint_id", event.ComplaintID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleOfficialCreated(_ context.Context, event events.Event) error {
	n.logger.Info("OfficialCreated", zap.Any("payload", event.Payload))
	return nil
}
