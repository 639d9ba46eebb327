package document

import (
	"time"

	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/child"
)

var ErrNotFound = errors.New("document not found")

type (
	Repository interface {
		CreateDocument(d Document) (Document, error)
		QueryAllDocuments() ([]Document, error)
		GetDocumentByID(id string) (Document, error)
		FilterDocuments(filter QueryFilter) ([]Document, error)
		UpdateDocument(id string, ud UpdateDocument) (Document, error)
		DeleteDocument(id string) error
	}

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

func (svc *Service) Create(nd NewDocument) (Document, error) {
	now := time.Now().UTC()
	status := nd.Status
	if status == "" {
		status = StatusPending
	}
	d := Document{
		ChildID:     nd.ChildID,
		Filename:    nd.Filename,
		ContentType: nd.ContentType,
		Size:        nd.Size,
		Category:    nd.Category,
		Status:      status,
		UploadDate:  nd.UploadDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c, err := svc.children.GetChildByID(nd.ChildID); err == nil {
		d.ChildName = c.Name
	}
	return svc.repo.CreateDocument(d)
}

func (svc *Service) QueryAll() ([]Document, error) {
	return svc.repo.QueryAllDocuments()
}

func (svc *Service) GetByID(id string) (Document, error) {
	return svc.repo.GetDocumentByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Document, error) {
	return svc.repo.FilterDocuments(filter)
}

func (svc *Service) Update(id string, ud UpdateDocument) (Document, error) {
	return svc.repo.UpdateDocument(id, ud)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteDocument(id)
}
