package payment

import (
	"time"

	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/child"
)

var ErrNotFound = errors.New("payment not found")

type (
	// Repository has no delete: payments are never removed, only updated.
	Repository interface {
		CreatePayment(p Payment) (Payment, error)
		QueryAllPayments() ([]Payment, error)
		GetPaymentByID(id string) (Payment, error)
		FilterPayments(filter QueryFilter) ([]Payment, error)
		UpdatePayment(id string, up UpdatePayment) (Payment, error)
	}

	// ChildGetter resolves the child reference so display names can be
	// snapshotted at write time.
	ChildGetter interface {
		GetChildByID(id string) (child.Child, error)
	}

	Service struct {
		repo     Repository
		children ChildGetter
	}
)

func NewService(repo Repository, children ChildGetter) *Service {
	return &Service{repo: repo, children: children}
}

func (svc *Service) Create(np NewPayment) (Payment, error) {
	now := time.Now().UTC()
	status := np.Status
	if status == "" {
		status = StatusPending
	}
	p := Payment{
		ChildID:       np.ChildID,
		Amount:        np.Amount,
		DueDate:       np.DueDate,
		PaidDate:      np.PaidDate,
		Status:        status,
		InvoiceNumber: np.InvoiceNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	// snapshot display names; a dangling child reference leaves them empty
	if c, err := svc.children.GetChildByID(np.ChildID); err == nil {
		p.ChildName = c.Name
		p.ParentName = c.ParentName
	}
	return svc.repo.CreatePayment(p)
}

func (svc *Service) QueryAll() ([]Payment, error) {
	return svc.repo.QueryAllPayments()
}

func (svc *Service) GetByID(id string) (Payment, error) {
	return svc.repo.GetPaymentByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Payment, error) {
	return svc.repo.FilterPayments(filter)
}

func (svc *Service) Update(id string, up UpdatePayment) (Payment, error) {
	return svc.repo.UpdatePayment(id, up)
}

// MarkPaid is a convenience over Update; it sets nothing the caller could
// not set by hand, in particular it does no date validation against today.
func (svc *Service) MarkPaid(id, paidDate string) (Payment, error) {
	return svc.repo.UpdatePayment(id, UpdatePayment{Status: StatusPaid, PaidDate: paidDate})
}
