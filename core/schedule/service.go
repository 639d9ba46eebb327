package schedule

import (
	"time"

	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/course"
	"github.com/bahati/malezi/core/educator"
)

var ErrNotFound = errors.New("schedule event not found")

type (
	Repository interface {
		CreateEvent(e Event) (Event, error)
		QueryAllEvents() ([]Event, error)
		GetEventByID(id string) (Event, error)
		FilterEvents(filter QueryFilter) ([]Event, error)
		UpdateEvent(id string, ue UpdateEvent) (Event, error)
		DeleteEvent(id string) error
	}

	CourseGetter interface {
		GetCourseByID(id string) (course.Course, error)
	}

	EducatorGetter interface {
		GetEducatorByID(id string) (educator.Educator, error)
	}

	Service struct {
		repo      Repository
		courses   CourseGetter
		educators EducatorGetter
	}
)

func NewService(repo Repository, courses CourseGetter, educators EducatorGetter) *Service {
	return &Service{repo: repo, courses: courses, educators: educators}
}

func (svc *Service) Create(ne NewEvent) (Event, error) {
	now := time.Now().UTC()
	status := ne.Status
	if status == "" {
		status = StatusScheduled
	}
	e := Event{
		CourseID:     ne.CourseID,
		EducatorID:   ne.EducatorID,
		Date:         ne.Date,
		StartTime:    ne.StartTime,
		EndTime:      ne.EndTime,
		Group:        ne.Group,
		Participants: ne.Participants,
		Capacity:     ne.Capacity,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// snapshot display names; dangling references leave them empty
	if ne.CourseID != "" {
		if c, err := svc.courses.GetCourseByID(ne.CourseID); err == nil {
			e.CourseName = c.Name
		}
	}
	if ne.EducatorID != "" {
		if ed, err := svc.educators.GetEducatorByID(ne.EducatorID); err == nil {
			e.EducatorName = ed.Name
		}
	}
	return svc.repo.CreateEvent(e)
}

func (svc *Service) QueryAll() ([]Event, error) {
	return svc.repo.QueryAllEvents()
}

func (svc *Service) GetByID(id string) (Event, error) {
	return svc.repo.GetEventByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Event, error) {
	return svc.repo.FilterEvents(filter)
}

func (svc *Service) Update(id string, ue UpdateEvent) (Event, error) {
	return svc.repo.UpdateEvent(id, ue)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteEvent(id)
}
