package inmemdb

import "github.com/bahati/malezi/core/expense"

type expenseRepository struct {
	tbl *table[expense.Expense]
}

func NewExpenseRepository(db *DB) expense.Repository {
	return &expenseRepository{tbl: db.expense}
}

func (repo *expenseRepository) CreateExpense(e expense.Expense) (expense.Expense, error) {
	repo.tbl.simulate()
	e.ID = newID()
	return repo.tbl.insert(e.ID, e), nil
}

func (repo *expenseRepository) QueryAllExpenses() ([]expense.Expense, error) {
	repo.tbl.simulate()
	return repo.tbl.list(), nil
}

func (repo *expenseRepository) GetExpenseByID(id string) (expense.Expense, error) {
	repo.tbl.simulate()
	if e, ok := repo.tbl.get(id); ok {
		return e, nil
	}
	return expense.Expense{}, expense.ErrNotFound
}

func (repo *expenseRepository) FilterExpenses(filter expense.QueryFilter) ([]expense.Expense, error) {
	repo.tbl.simulate()
	out := make([]expense.Expense, 0)
	for _, e := range repo.tbl.list() {
		if filter.Match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (repo *expenseRepository) UpdateExpense(id string, ue expense.UpdateExpense) (expense.Expense, error) {
	repo.tbl.simulate()
	e, ok := repo.tbl.mutate(id, func(e *expense.Expense) {
		// only save set fields
		e.Description = mergeString(e.Description, ue.Description)
		e.Category = mergeString(e.Category, ue.Category)
		if ue.Amount != nil {
			e.Amount = *ue.Amount
		}
		e.Date = mergeString(e.Date, ue.Date)
		e.Vendor = mergeString(e.Vendor, ue.Vendor)
		e.ReceiptNumber = mergeString(e.ReceiptNumber, ue.ReceiptNumber)
		e.Status = mergeString(e.Status, ue.Status)
		touch(&e.UpdatedAt)
	})
	if !ok {
		return expense.Expense{}, expense.ErrNotFound
	}
	return e, nil
}

func (repo *expenseRepository) DeleteExpense(id string) error {
	repo.tbl.simulate()
	if !repo.tbl.remove(id) {
		return expense.ErrNotFound
	}
	return nil
}
