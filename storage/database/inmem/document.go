package inmemdb

import "github.com/bahati/malezi/core/document"

type documentRepository struct {
	tbl *table[document.Document]
}

func NewDocumentRepository(db *DB) document.Repository {
	return &documentRepository{tbl: db.document}
}

func (repo *documentRepository) CreateDocument(d document.Document) (document.Document, error) {
	repo.tbl.simulate()
	d.ID = newID()
	return repo.tbl.insert(d.ID, d), nil
}

func (repo *documentRepository) QueryAllDocuments() ([]document.Document, error) {
	repo.tbl.simulate()
	return repo.tbl.list(), nil
}

func (repo *documentRepository) GetDocumentByID(id string) (document.Document, error) {
	repo.tbl.simulate()
	if d, ok := repo.tbl.get(id); ok {
		return d, nil
	}
	return document.Document{}, document.ErrNotFound
}

func (repo *documentRepository) FilterDocuments(filter document.QueryFilter) ([]document.Document, error) {
	repo.tbl.simulate()
	out := make([]document.Document, 0)
	for _, d := range repo.tbl.list() {
		if filter.Match(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (repo *documentRepository) UpdateDocument(id string, ud document.UpdateDocument) (document.Document, error) {
	repo.tbl.simulate()
	d, ok := repo.tbl.mutate(id, func(d *document.Document) {
		// only save set fields
		d.Filename = mergeString(d.Filename, ud.Filename)
		d.Category = mergeString(d.Category, ud.Category)
		d.Status = mergeString(d.Status, ud.Status)
		touch(&d.UpdatedAt)
	})
	if !ok {
		return document.Document{}, document.ErrNotFound
	}
	return d, nil
}

func (repo *documentRepository) DeleteDocument(id string) error {
	repo.tbl.simulate()
	if !repo.tbl.remove(id) {
		return document.ErrNotFound
	}
	return nil
}
