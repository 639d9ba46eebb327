package inmemdb

import "github.com/bahati/malezi/core/prereg"

type preregRepository struct {
	tbl *table[prereg.PreRegistration]
}

func NewPreRegistrationRepository(db *DB) prereg.Repository {
	return &preregRepository{tbl: db.prereg}
}

func (repo *preregRepository) CreatePreRegistration(pr prereg.PreRegistration) (prereg.PreRegistration, error) {
	repo.tbl.simulate()
	pr.ID = newID()
	return repo.tbl.insert(pr.ID, pr), nil
}

func (repo *preregRepository) QueryAllPreRegistrations() ([]prereg.PreRegistration, error) {
	repo.tbl.simulate()
	return repo.tbl.list(), nil
}

func (repo *preregRepository) GetPreRegistrationByID(id string) (prereg.PreRegistration, error) {
	repo.tbl.simulate()
	if pr, ok := repo.tbl.get(id); ok {
		return pr, nil
	}
	return prereg.PreRegistration{}, prereg.ErrNotFound
}

func (repo *preregRepository) FilterPreRegistrations(filter prereg.QueryFilter) ([]prereg.PreRegistration, error) {
	repo.tbl.simulate()
	out := make([]prereg.PreRegistration, 0)
	for _, pr := range repo.tbl.list() {
		if filter.Match(pr) {
			out = append(out, pr)
		}
	}
	return out, nil
}

func (repo *preregRepository) UpdatePreRegistration(id string, up prereg.UpdatePreRegistration) (prereg.PreRegistration, error) {
	repo.tbl.simulate()
	pr, ok := repo.tbl.mutate(id, func(pr *prereg.PreRegistration) {
		// only save set fields
		pr.PreferredStartDate = mergeString(pr.PreferredStartDate, up.PreferredStartDate)
		pr.Plan = mergeString(pr.Plan, up.Plan)
		pr.Status = mergeString(pr.Status, up.Status)
		touch(&pr.UpdatedAt)
	})
	if !ok {
		return prereg.PreRegistration{}, prereg.ErrNotFound
	}
	return pr, nil
}
