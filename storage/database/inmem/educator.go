package inmemdb

import "github.com/bahati/malezi/core/educator"

type educatorRepository struct {
	tbl *table[educator.Educator]
}

func NewEducatorRepository(db *DB) educator.Repository {
	return &educatorRepository{tbl: db.educator}
}

func (repo *educatorRepository) CreateEducator(e educator.Educator) (educator.Educator, error) {
	repo.tbl.simulate()
	e.ID = newID()
	return repo.tbl.insert(e.ID, e), nil
}

func (repo *educatorRepository) QueryAllEducators() ([]educator.Educator, error) {
	repo.tbl.simulate()
	return repo.tbl.list(), nil
}

func (repo *educatorRepository) GetEducatorByID(id string) (educator.Educator, error) {
	repo.tbl.simulate()
	if e, ok := repo.tbl.get(id); ok {
		return e, nil
	}
	return educator.Educator{}, educator.ErrNotFound
}

func (repo *educatorRepository) FilterEducators(filter educator.QueryFilter) ([]educator.Educator, error) {
	repo.tbl.simulate()
	out := make([]educator.Educator, 0)
	for _, e := range repo.tbl.list() {
		if filter.Match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (repo *educatorRepository) UpdateEducator(id string, ue educator.UpdateEducator) (educator.Educator, error) {
	repo.tbl.simulate()
	e, ok := repo.tbl.mutate(id, func(e *educator.Educator) {
		// only save set fields
		e.Name = mergeString(e.Name, ue.Name)
		e.Email = mergeString(e.Email, ue.Email)
		e.Phone = mergeString(e.Phone, ue.Phone)
		e.Role = mergeString(e.Role, ue.Role)
		if ue.Specialties != nil {
			e.Specialties = ue.Specialties
		}
		e.Experience = mergeString(e.Experience, ue.Experience)
		e.Status = mergeString(e.Status, ue.Status)
		touch(&e.UpdatedAt)
	})
	if !ok {
		return educator.Educator{}, educator.ErrNotFound
	}
	return e, nil
}

func (repo *educatorRepository) DeleteEducator(id string) error {
	repo.tbl.simulate()
	if !repo.tbl.remove(id) {
		return educator.ErrNotFound
	}
	return nil
}
