package document

// EmitRequest carries everything needed to emit one document for one driver.
// The roster lifecycle builds the line items; Total is computed from them.
type EmitRequest struct {
	CompanyID  string
	DriverID   string
	Year       int
	Month      int
	Type       Type
	LineItems  []LineItem
	TotalHours *float64
}

type DocumentResponse struct {
	ID         string     `json:"id"`
	DriverID   string     `json:"driver_id"`
	Year       int        `json:"year"`
	Month      int        `json:"month"`
	Type       string     `json:"type"`
	LineItems  []LineItem `json:"line_items"`
	Total      int        `json:"total"`
	TotalHours *float64   `json:"total_hours,omitempty"`
	Superseded bool       `json:"superseded"`
	CreatedAt  string     `json:"created_at"`
}
