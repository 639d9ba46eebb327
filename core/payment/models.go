package payment

import (
	"strings"
	"time"

	"github.com/bahati/malezi/core"
)

// Statuses; set by user action, never derived from DueDate.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusOverdue = "overdue"
)

type Payment struct {
	ID      string `json:"id"`
	ChildID string `json:"child_id"`
	// ChildName and ParentName are snapshotted from the child record at
	// write time and are not refreshed afterwards.
	ChildName     string    `json:"child_name"`
	ParentName    string    `json:"parent_name"`
	Amount        int64     `json:"amount"` // cents
	DueDate       string    `json:"due_date"`
	PaidDate      string    `json:"paid_date,omitempty"`
	Status        string    `json:"status"`
	InvoiceNumber string    `json:"invoice_number"`
	CreatedAt     time.Time `json:"created_at"` // UTC
	UpdatedAt     time.Time `json:"updated_at"` // UTC
}

// NewPayment contains information needed to create a new Payment.
type NewPayment struct {
	ChildID       string `json:"child_id" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,min=1"`
	DueDate       string `json:"due_date" validate:"required,dateonly"`
	PaidDate      string `json:"paid_date" validate:"omitempty,dateonly"`
	Status        string `json:"status" validate:"omitempty,oneof=paid pending overdue"`
	InvoiceNumber string `json:"invoice_number" validate:"required"`
}

func (np *NewPayment) Validate() error {
	np.InvoiceNumber = core.CleanString(np.InvoiceNumber)
	return core.Validate.Struct(np)
}

// UpdatePayment defines what information may be provided to modify an
// existing Payment. Empty fields are left unchanged.
type UpdatePayment struct {
	Amount        *int64 `json:"amount" validate:"omitempty,min=1"`
	DueDate       string `json:"due_date" validate:"omitempty,dateonly"`
	PaidDate      string `json:"paid_date" validate:"omitempty,dateonly"`
	Status        string `json:"status" validate:"omitempty,oneof=paid pending overdue"`
	InvoiceNumber string `json:"invoice_number"`
}

func (up *UpdatePayment) Validate() error {
	up.InvoiceNumber = core.CleanString(up.InvoiceNumber)
	return core.Validate.Struct(up)
}

type QueryFilter struct {
	Search  string `query:"search"`
	ChildID string `query:"child_id"`
	Status  string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.ChildID == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Match reports whether a payment satisfies the filter; Search is a
// case-insensitive substring of the child name, parent name or invoice
// number.
func (qf *QueryFilter) Match(p Payment) bool {
	if qf.ChildID != "" && p.ChildID != qf.ChildID {
		return false
	}
	if qf.Status != "" && p.Status != qf.Status {
		return false
	}
	if qf.Search != "" {
		s := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(p.ChildName), s) &&
			!strings.Contains(strings.ToLower(p.ParentName), s) &&
			!strings.Contains(strings.ToLower(p.InvoiceNumber), s) {
			return false
		}
	}
	return true
}
