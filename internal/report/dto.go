package report

// Request is a report request from the UI layer
type Request struct {
	ReportType     string  `json:"report_type"`
	PeriodFrom     *string `json:"period_from,omitempty"` // YYYY-MM-DD
	PeriodTo       *string `json:"period_to,omitempty"`   // YYYY-MM-DD
	CounterpartyID *string `json:"counterparty_id,omitempty"`
	Status         *string `json:"status,omitempty"`
}

// Envelope wraps any report view-model. ExportEnabled is false when the
// result set is empty; the UI greys out its export button on that flag.
type Envelope struct {
	ReportType    string      `json:"report_type"`
	Kind          string      `json:"kind"`
	GeneratedAt   string      `json:"generated_at"`
	ExportEnabled bool        `json:"export_enabled"`
	Data          interface{} `json:"data"`
}

// AgingItem is one overdue obligation inside an aging bucket
type AgingItem struct {
	ID               string `json:"id"`
	CounterpartyName string `json:"counterparty_name"`
	Description      string `json:"description"`
	DueDate          string `json:"due_date"`
	DaysOverdue      int    `json:"days_overdue"`
	Outstanding      int64  `json:"outstanding"`
}

// AgingBucket is a fixed day-range grouping of overdue obligations
type AgingBucket struct {
	Label        string      `json:"label"`
	DayRangeLow  int         `json:"day_range_low"`
	DayRangeHigh *int        `json:"day_range_high,omitempty"`
	Items        []AgingItem `json:"items"`
	TotalAmount  int64       `json:"total_amount"`
}

// AgingReport is the aging/collections view-model
type AgingReport struct {
	Buckets    []AgingBucket `json:"buckets"`
	GrandTotal int64         `json:"grand_total"`
}

// ForecastEntry is one month of projected cash movement
type ForecastEntry struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Total int64 `json:"total"`
}

// CategoryTotals aggregates one category's amounts
type CategoryTotals struct {
	CategoryID       string `json:"category_id"`
	CategoryName     string `json:"category_name"`
	OriginalTotal    int64  `json:"original_total"`
	SettledTotal     int64  `json:"settled_total"`
	OutstandingTotal int64  `json:"outstanding_total"`
}

// PortfolioItem is one row of the flat portfolio-position listing
type PortfolioItem struct {
	ID               string  `json:"id"`
	CounterpartyName string  `json:"counterparty_name"`
	Description      string  `json:"description"`
	DocumentNumber   *string `json:"document_number,omitempty"`
	DueDate          *string `json:"due_date,omitempty"`
	Status           string  `json:"status"`
	OriginalAmount   int64   `json:"original_amount"`
	Outstanding      int64   `json:"outstanding"`
}
