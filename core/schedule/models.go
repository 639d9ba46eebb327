package schedule

import (
	"strings"
	"time"

	"github.com/bahati/malezi/core"
)

// Statuses
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Event struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	// CourseName and EducatorName are snapshotted at write time and not
	// refreshed afterwards.
	CourseName   string    `json:"course_name"`
	EducatorID   string    `json:"educator_id"`
	EducatorName string    `json:"educator_name"`
	Date         string    `json:"date"`       // YYYY-MM-DD
	StartTime    string    `json:"start_time"` // HH:MM
	EndTime      string    `json:"end_time"`   // HH:MM
	Group        string    `json:"group"`
	Participants int       `json:"participants"`
	Capacity     int       `json:"capacity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
}

// NewEvent contains information needed to create a new schedule Event.
type NewEvent struct {
	CourseID     string `json:"course_id"`
	EducatorID   string `json:"educator_id"`
	Date         string `json:"date" validate:"required,dateonly"`
	StartTime    string `json:"start_time" validate:"required,timehhmm"`
	EndTime      string `json:"end_time" validate:"required,timehhmm"`
	Group        string `json:"group"`
	Participants int    `json:"participants" validate:"omitempty,min=0"`
	Capacity     int    `json:"capacity" validate:"omitempty,min=0"`
	Status       string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

func (ne *NewEvent) Validate() error {
	ne.Group = core.CleanString(ne.Group)
	return core.Validate.Struct(ne)
}

// UpdateEvent defines what information may be provided to modify an
// existing Event. Empty fields are left unchanged.
type UpdateEvent struct {
	Date         string `json:"date" validate:"omitempty,dateonly"`
	StartTime    string `json:"start_time" validate:"omitempty,timehhmm"`
	EndTime      string `json:"end_time" validate:"omitempty,timehhmm"`
	Group        string `json:"group"`
	Participants *int   `json:"participants" validate:"omitempty,min=0"`
	Capacity     *int   `json:"capacity" validate:"omitempty,min=0"`
	Status       string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

func (ue *UpdateEvent) Validate() error {
	ue.Group = core.CleanString(ue.Group)
	return core.Validate.Struct(ue)
}

type QueryFilter struct {
	Search string `query:"search"`
	Date   string `query:"date"`
	Group  string `query:"group"`
	Status string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Date == "" && qf.Group == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Group = core.CleanString(qf.Group)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Match reports whether an event satisfies the filter; Search is a
// case-insensitive substring of the course, educator or group names.
func (qf *QueryFilter) Match(e Event) bool {
	if qf.Date != "" && e.Date != qf.Date {
		return false
	}
	if qf.Group != "" && e.Group != qf.Group {
		return false
	}
	if qf.Status != "" && e.Status != qf.Status {
		return false
	}
	if qf.Search != "" {
		s := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(e.CourseName), s) &&
			!strings.Contains(strings.ToLower(e.EducatorName), s) &&
			!strings.Contains(strings.ToLower(e.Group), s) {
			return false
		}
	}
	return true
}
