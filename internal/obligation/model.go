package obligation

import "time"

// Kind identifies which side of the ledger an obligation sits on
type Kind string

const (
	KindPayable    Kind = "PAYABLE"
	KindReceivable Kind = "RECEIVABLE"
)

// Kinds lists both obligation kinds in scan order
var Kinds = []Kind{KindPayable, KindReceivable}

// Status is the normalized lifecycle state of an obligation. The two
// collections use slightly different wording at the edges of the system
// ("Pago" vs "Recebido"); the store normalizes them to this vocabulary.
type Status string

const (
	StatusPending          Status = "PENDING"
	StatusPartiallySettled Status = "PARTIALLY_SETTLED"
	StatusOverdue          Status = "OVERDUE"
	StatusSettled          Status = "SETTLED"

	// StatusSplit marks a historical record that was replaced by successor
	// obligations. Split rows never appear in monitoring or reports.
	StatusSplit Status = "SPLIT"
)

// OpenStatuses are the states in which an obligation still carries a balance
var OpenStatuses = []Status{StatusPending, StatusPartiallySettled, StatusOverdue}

// IsOpen reports whether the obligation still carries an unpaid balance
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusPartiallySettled || s == StatusOverdue
}

// Obligation is a payable or receivable financial record. Records are
// created and mutated by the invoicing/billing flow; this service only
// reads them.
type Obligation struct {
	ID                string     `json:"id"`
	TenantID          string     `json:"tenant_id"`
	Kind              Kind       `json:"kind"`
	CounterpartyID    *string    `json:"counterparty_id,omitempty"`
	CounterpartyName  string     `json:"counterparty_name"`
	Description       string     `json:"description"`
	DocumentNumber    *string    `json:"document_number,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Status            Status     `json:"status"`
	OriginalAmount    int64      `json:"original_amount"`
	OutstandingAmount *int64     `json:"outstanding_amount,omitempty"`
	CategoryID        *string    `json:"category_id,omitempty"`
	CategoryName      *string    `json:"category_name,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// EffectiveOutstanding returns the amount still owed in minor units.
// A record without an explicit outstanding amount owes its original amount.
func (o *Obligation) EffectiveOutstanding() int64 {
	if o.OutstandingAmount != nil {
		return *o.OutstandingAmount
	}
	return o.OriginalAmount
}

// HasDueDate reports whether the record is well-formed enough to monitor.
// Records without a due date are skipped by the scan and by reports.
func (o *Obligation) HasDueDate() bool {
	return o.DueDate != nil
}
