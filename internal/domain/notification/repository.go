package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error

	// List returns a company's notifications, newest first.
	List(ctx context.Context, companyID string, page, pageSize int, unreadOnly bool) ([]*Notification, int, error)

	MarkAsRead(ctx context.Context, ids []string, companyID string) error

	UnreadCount(ctx context.Context, companyID string) (int, error)
}
