package notification

import (
	"context"
	"fmt"

	"github.com/crosslog/dispatch-backend-go/internal/domain/notification"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
)

type NotificationServiceImpl struct {
	notification.Repository
	hub *sse.Hub
}

func NewNotificationService(repo notification.Repository, hub *sse.Hub) notification.Service {
	return &NotificationServiceImpl{
		Repository: repo,
		hub:        hub,
	}
}

// Queue implements notification.Service.
func (s *NotificationServiceImpl) Queue(ctx context.Context, req notification.CreateNotificationRequest) error {
	n := &notification.Notification{
		CompanyID: req.CompanyID,
		DriverID:  req.DriverID,
		Type:      req.Type,
		Severity:  req.Severity,
		Message:   req.Message,
		Data:      req.Data,
	}

	if err := s.Repository.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to queue notification: %w", err)
	}

	if s.hub != nil {
		s.hub.Publish(req.CompanyID, sse.Event{
			CompanyID: req.CompanyID,
			Event:     "notification",
			Data:      mapNotificationToResponse(n),
		})
	}

	return nil
}

// List implements notification.Service.
func (s *NotificationServiceImpl) List(ctx context.Context, page, limit int, unreadOnly bool) (notification.ListNotificationsResponse, error) {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	notifications, total, err := s.Repository.List(ctx, companyID, page, limit, unreadOnly)
	if err != nil {
		return notification.ListNotificationsResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.Repository.UnreadCount(ctx, companyID)
	if err != nil {
		return notification.ListNotificationsResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, mapNotificationToResponse(n))
	}

	return notification.ListNotificationsResponse{
		TotalCount:    total,
		UnreadCount:   unread,
		Page:          page,
		Limit:         limit,
		Notifications: responses,
	}, nil
}

// MarkRead implements notification.Service.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, req notification.MarkReadRequest) error {
	companyID, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.Repository.MarkAsRead(ctx, req.IDs, companyID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	return nil
}

func tenantFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func mapNotificationToResponse(n *notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		DriverID:  n.DriverID,
		Type:      string(n.Type),
		Severity:  n.Severity,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
