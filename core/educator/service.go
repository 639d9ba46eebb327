package educator

import (
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("educator not found")

type (
	Repository interface {
		CreateEducator(e Educator) (Educator, error)
		QueryAllEducators() ([]Educator, error)
		GetEducatorByID(id string) (Educator, error)
		FilterEducators(filter QueryFilter) ([]Educator, error)
		UpdateEducator(id string, ue UpdateEducator) (Educator, error)
		DeleteEducator(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ne NewEducator) (Educator, error) {
	now := time.Now().UTC()
	status := ne.Status
	if status == "" {
		status = StatusActive
	}
	e := Educator{
		Name:        ne.Name,
		Email:       ne.Email,
		Phone:       ne.Phone,
		Role:        ne.Role,
		Specialties: ne.Specialties,
		Experience:  ne.Experience,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateEducator(e)
}

func (svc *Service) QueryAll() ([]Educator, error) {
	return svc.repo.QueryAllEducators()
}

func (svc *Service) GetByID(id string) (Educator, error) {
	return svc.repo.GetEducatorByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Educator, error) {
	return svc.repo.FilterEducators(filter)
}

func (svc *Service) Update(id string, ue UpdateEducator) (Educator, error) {
	return svc.repo.UpdateEducator(id, ue)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteEducator(id)
}
