package expense

import (
	"strings"
	"time"

	"github.com/bahati/malezi/core"
)

// Statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusPaid     = "paid"
)

type Expense struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Amount        int64     `json:"amount"` // cents
	Date          string    `json:"date"`   // YYYY-MM-DD
	Vendor        string    `json:"vendor"`
	ReceiptNumber string    `json:"receipt_number,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"` // UTC
	UpdatedAt     time.Time `json:"updated_at"` // UTC
}

// NewExpense contains information needed to record a new Expense.
type NewExpense struct {
	Description   string `json:"description" validate:"required"`
	Category      string `json:"category" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,min=1"`
	Date          string `json:"date" validate:"required,dateonly"`
	Vendor        string `json:"vendor"`
	ReceiptNumber string `json:"receipt_number"`
	Status        string `json:"status" validate:"omitempty,oneof=pending approved paid"`
}

func (ne *NewExpense) Validate() error {
	ne.Description = core.CleanString(ne.Description)
	ne.Vendor = core.CleanString(ne.Vendor)
	return core.Validate.Struct(ne)
}

// UpdateExpense defines what information may be provided to modify an
// existing Expense. Empty fields are left unchanged.
type UpdateExpense struct {
	Description   string `json:"description"`
	Category      string `json:"category"`
	Amount        *int64 `json:"amount" validate:"omitempty,min=1"`
	Date          string `json:"date" validate:"omitempty,dateonly"`
	Vendor        string `json:"vendor"`
	ReceiptNumber string `json:"receipt_number"`
	Status        string `json:"status" validate:"omitempty,oneof=pending approved paid"`
}

func (ue *UpdateExpense) Validate() error {
	ue.Description = core.CleanString(ue.Description)
	ue.Vendor = core.CleanString(ue.Vendor)
	return core.Validate.Struct(ue)
}

type QueryFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Category == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Category = core.CleanString(qf.Category)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Match reports whether an expense satisfies the filter; Search is a
// case-insensitive substring of the description, vendor or receipt number.
func (qf *QueryFilter) Match(e Expense) bool {
	if qf.Category != "" && e.Category != qf.Category {
		return false
	}
	if qf.Status != "" && e.Status != qf.Status {
		return false
	}
	if qf.Search != "" {
		s := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(e.Description), s) &&
			!strings.Contains(strings.ToLower(e.Vendor), s) &&
			!strings.Contains(strings.ToLower(e.ReceiptNumber), s) {
			return false
		}
	}
	return true
}
