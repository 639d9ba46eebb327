package course

import (
	"time"

	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/educator"
)

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		CreateCourse(c Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
		FilterCourses(filter QueryFilter) ([]Course, error)
		UpdateCourse(id string, uc UpdateCourse, instructorName *string) (Course, error)
		DeleteCourse(id string) error
	}

	// InstructorGetter resolves an instructor reference so the display
	// name can be snapshotted at write time.
	InstructorGetter interface {
		GetEducatorByID(id string) (educator.Educator, error)
	}

	Service struct {
		repo        Repository
		instructors InstructorGetter
	}
)

func NewService(repo Repository, instructors InstructorGetter) *Service {
	return &Service{repo: repo, instructors: instructors}
}

// instructorName snapshots the educator's name; a dangling reference is
// not an error, the snapshot is simply left empty.
func (svc *Service) instructorName(id string) string {
	if id == "" {
		return ""
	}
	instr, err := svc.instructors.GetEducatorByID(id)
	if err != nil {
		return ""
	}
	return instr.Name
}

func (svc *Service) Create(nc NewCourse) (Course, error) {
	now := time.Now().UTC()
	c := Course{
		Name:           nc.Name,
		Description:    nc.Description,
		AgeGroup:       nc.AgeGroup,
		Duration:       nc.Duration,
		InstructorID:   nc.InstructorID,
		InstructorName: svc.instructorName(nc.InstructorID),
		Participants:   nc.Participants,
		Capacity:       nc.Capacity,
		Schedule:       nc.Schedule,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return svc.repo.CreateCourse(c)
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Course, error) {
	return svc.repo.FilterCourses(filter)
}

func (svc *Service) Update(id string, uc UpdateCourse) (Course, error) {
	// the name snapshot is refreshed only when the reference itself changes
	var instrName *string
	if uc.InstructorID != "" {
		name := svc.instructorName(uc.InstructorID)
		instrName = &name
	}
	return svc.repo.UpdateCourse(id, uc, instrName)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteCourse(id)
}
