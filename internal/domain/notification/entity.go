package notification

import "time"

type NotificationType string

const (
	TypeMissedClockIn  NotificationType = "missed_clock_in"
	TypeMissedClockOut NotificationType = "missed_clock_out"
	TypeDocumentIssued NotificationType = "document_issued"
)

// Notification is one alert row. Delivery past this row (and the SSE push)
// is the sink's responsibility, including any cross-tick deduplication.
type Notification struct {
	ID        string
	CompanyID string
	DriverID  string
	Type      NotificationType
	Severity  string
	Message   string
	Data      map[string]interface{}
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
