package notification

import "context"

// Service queues notification rows and pushes them to connected operator
// consoles over SSE.
type Service interface {
	// Queue inserts the row and publishes it. Used by the status sweep and
	// the document lifecycle; callers treat failures as non-fatal.
	Queue(ctx context.Context, req CreateNotificationRequest) error

	List(ctx context.Context, page, limit int, unreadOnly bool) (ListNotificationsResponse, error)
	MarkRead(ctx context.Context, req MarkReadRequest) error
}
