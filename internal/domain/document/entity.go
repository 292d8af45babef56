package document

import "time"

// Type distinguishes the two payroll documents the lifecycle emits.
type Type string

const (
	TypePurchaseOrder    Type = "purchase_order"
	TypePaymentStatement Type = "payment_statement"
)

// LineItem is one row on an emitted document. Amount is in currency minor
// units.
type LineItem struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// Document is the structured payload handed to the external renderer.
// Documents are never deleted: unconfirming a month leaves them in place as
// an audit trail, and re-emission marks the earlier rows superseded.
type Document struct {
	ID         string
	CompanyID  string
	DriverID   string
	Year       int
	Month      int
	Type       Type
	LineItems  []LineItem
	Total      int
	TotalHours *float64 // payment statements only
	Superseded bool
	CreatedAt  time.Time
}
