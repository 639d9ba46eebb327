package expense

import (
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("expense not found")

type (
	Repository interface {
		CreateExpense(e Expense) (Expense, error)
		QueryAllExpenses() ([]Expense, error)
		GetExpenseByID(id string) (Expense, error)
		FilterExpenses(filter QueryFilter) ([]Expense, error)
		UpdateExpense(id string, ue UpdateExpense) (Expense, error)
		DeleteExpense(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ne NewExpense) (Expense, error) {
	now := time.Now().UTC()
	status := ne.Status
	if status == "" {
		status = StatusPending
	}
	e := Expense{
		Description:   ne.Description,
		Category:      ne.Category,
		Amount:        ne.Amount,
		Date:          ne.Date,
		Vendor:        ne.Vendor,
		ReceiptNumber: ne.ReceiptNumber,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return svc.repo.CreateExpense(e)
}

func (svc *Service) QueryAll() ([]Expense, error) {
	return svc.repo.QueryAllExpenses()
}

func (svc *Service) GetByID(id string) (Expense, error) {
	return svc.repo.GetExpenseByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Expense, error) {
	return svc.repo.FilterExpenses(filter)
}

func (svc *Service) Update(id string, ue UpdateExpense) (Expense, error) {
	return svc.repo.UpdateExpense(id, ue)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteExpense(id)
}
