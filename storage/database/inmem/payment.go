package inmemdb

import "github.com/bahati/malezi/core/payment"

type paymentRepository struct {
	tbl *table[payment.Payment]
}

func NewPaymentRepository(db *DB) payment.Repository {
	return &paymentRepository{tbl: db.payment}
}

func (repo *paymentRepository) CreatePayment(p payment.Payment) (payment.Payment, error) {
	repo.tbl.simulate()
	p.ID = newID()
	return repo.tbl.insert(p.ID, p), nil
}

func (repo *paymentRepository) QueryAllPayments() ([]payment.Payment, error) {
	repo.tbl.simulate()
	return repo.tbl.list(), nil
}

func (repo *paymentRepository) GetPaymentByID(id string) (payment.Payment, error) {
	repo.tbl.simulate()
	if p, ok := repo.tbl.get(id); ok {
		return p, nil
	}
	return payment.Payment{}, payment.ErrNotFound
}

func (repo *paymentRepository) FilterPayments(filter payment.QueryFilter) ([]payment.Payment, error) {
	repo.tbl.simulate()
	out := make([]payment.Payment, 0)
	for _, p := range repo.tbl.list() {
		if filter.Match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (repo *paymentRepository) UpdatePayment(id string, up payment.UpdatePayment) (payment.Payment, error) {
	repo.tbl.simulate()
	p, ok := repo.tbl.mutate(id, func(p *payment.Payment) {
		// only save set fields
		if up.Amount != nil {
			p.Amount = *up.Amount
		}
		p.DueDate = mergeString(p.DueDate, up.DueDate)
		p.PaidDate = mergeString(p.PaidDate, up.PaidDate)
		p.Status = mergeString(p.Status, up.Status)
		p.InvoiceNumber = mergeString(p.InvoiceNumber, up.InvoiceNumber)
		touch(&p.UpdatedAt)
	})
	if !ok {
		return payment.Payment{}, payment.ErrNotFound
	}
	return p, nil
}
