package notification

type CreateNotificationRequest struct {
	CompanyID string
	DriverID  string
	Type      NotificationType
	Severity  string
	Message   string
	Data      map[string]interface{}
}

type NotificationResponse struct {
	ID        string                 `json:"id"`
	DriverID  string                 `json:"driver_id"`
	Type      string                 `json:"type"`
	Severity  string                 `json:"severity"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt string                 `json:"created_at"`
}

type ListNotificationsResponse struct {
	TotalCount    int                    `json:"total_count"`
	UnreadCount   int                    `json:"unread_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	Notifications []NotificationResponse `json:"notifications"`
}

type MarkReadRequest struct {
	IDs []string `json:"ids"`
}
