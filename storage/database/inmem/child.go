package inmemdb

import "github.com/bahati/malezi/core/child"

type childRepository struct {
	tbl *table[child.Child]
}

func NewChildRepository(db *DB) child.Repository {
	return &childRepository{tbl: db.child}
}

func (repo *childRepository) CreateChild(c child.Child) (child.Child, error) {
	repo.tbl.simulate()
	c.ID = newID()
	return repo.tbl.insert(c.ID, c), nil
}

func (repo *childRepository) QueryAllChildren() ([]child.Child, error) {
	repo.tbl.simulate()
	return repo.tbl.list(), nil
}

func (repo *childRepository) GetChildByID(id string) (child.Child, error) {
	repo.tbl.simulate()
	if c, ok := repo.tbl.get(id); ok {
		return c, nil
	}
	return child.Child{}, child.ErrNotFound
}

func (repo *childRepository) FilterChildren(filter child.QueryFilter) ([]child.Child, error) {
	repo.tbl.simulate()
	out := make([]child.Child, 0)
	for _, c := range repo.tbl.list() {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (repo *childRepository) UpdateChild(id string, uc child.UpdateChild, age *int) (child.Child, error) {
	repo.tbl.simulate()
	c, ok := repo.tbl.mutate(id, func(c *child.Child) {
		// only save set fields
		c.Name = mergeString(c.Name, uc.Name)
		c.BirthDate = mergeString(c.BirthDate, uc.BirthDate)
		c.Group = mergeString(c.Group, uc.Group)
		c.ParentID = mergeString(c.ParentID, uc.ParentID)
		c.ParentName = mergeString(c.ParentName, uc.ParentName)
		c.EnrollmentDate = mergeString(c.EnrollmentDate, uc.EnrollmentDate)
		c.MedicalNotes = mergeString(c.MedicalNotes, uc.MedicalNotes)
		c.Allergies = mergeString(c.Allergies, uc.Allergies)
		c.EmergencyName = mergeString(c.EmergencyName, uc.EmergencyName)
		c.EmergencyPhone = mergeString(c.EmergencyPhone, uc.EmergencyPhone)
		c.Status = mergeString(c.Status, uc.Status)
		if age != nil {
			c.Age = *age
		}
		touch(&c.UpdatedAt)
	})
	if !ok {
		return child.Child{}, child.ErrNotFound
	}
	return c, nil
}

func (repo *childRepository) DeleteChild(id string) error {
	repo.tbl.simulate()
	if !repo.tbl.remove(id) {
		return child.ErrNotFound
	}
	return nil
}
