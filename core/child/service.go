package child

import (
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("child not found")

type (
	Repository interface {
		CreateChild(c Child) (Child, error)
		QueryAllChildren() ([]Child, error)
		GetChildByID(id string) (Child, error)
		FilterChildren(filter QueryFilter) ([]Child, error)
		UpdateChild(id string, uc UpdateChild, age *int) (Child, error)
		DeleteChild(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nc NewChild) (Child, error) {
	now := time.Now().UTC()
	status := nc.Status
	if status == "" {
		status = StatusActive
	}
	c := Child{
		Name:           nc.Name,
		BirthDate:      nc.BirthDate,
		Age:            Age(nc.BirthDate, now),
		Group:          nc.Group,
		ParentID:       nc.ParentID,
		ParentName:     nc.ParentName,
		EnrollmentDate: nc.EnrollmentDate,
		MedicalNotes:   nc.MedicalNotes,
		Allergies:      nc.Allergies,
		EmergencyName:  nc.EmergencyName,
		EmergencyPhone: nc.EmergencyPhone,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return svc.repo.CreateChild(c)
}

func (svc *Service) QueryAll() ([]Child, error) {
	return svc.repo.QueryAllChildren()
}

func (svc *Service) GetByID(id string) (Child, error) {
	return svc.repo.GetChildByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Child, error) {
	return svc.repo.FilterChildren(filter)
}

func (svc *Service) Update(id string, uc UpdateChild) (Child, error) {
	// age is re-derived only when the birth date changes
	var age *int
	if uc.BirthDate != "" {
		a := Age(uc.BirthDate, time.Now().UTC())
		age = &a
	}
	return svc.repo.UpdateChild(id, uc, age)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteChild(id)
}
