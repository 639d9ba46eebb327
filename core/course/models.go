package course

import (
	"strings"
	"time"

	"github.com/bahati/malezi/core"
)

type Course struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	AgeGroup     string    `json:"age_group"` // label, e.g. "3-4 years"
	Duration     string    `json:"duration"`  // label, e.g. "45 min"
	InstructorID string    `json:"instructor_id"`
	// InstructorName is snapshotted from the educator at write time and is
	// not refreshed if the educator is later renamed.
	InstructorName string    `json:"instructor_name"`
	Participants   int       `json:"participants"` // not reconciled against schedule events
	Capacity       int       `json:"capacity"`
	Schedule       string    `json:"schedule"`   // free text, e.g. "Mon/Wed 10:00"
	CreatedAt      time.Time `json:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	AgeGroup     string `json:"age_group"`
	Duration     string `json:"duration"`
	InstructorID string `json:"instructor_id"`
	Participants int    `json:"participants" validate:"omitempty,min=0"`
	Capacity     int    `json:"capacity" validate:"omitempty,min=0"`
	Schedule     string `json:"schedule"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	return core.Validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an
// existing Course. Empty fields are left unchanged.
type UpdateCourse struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	AgeGroup     string `json:"age_group"`
	Duration     string `json:"duration"`
	InstructorID string `json:"instructor_id"`
	Participants *int   `json:"participants" validate:"omitempty,min=0"`
	Capacity     *int   `json:"capacity" validate:"omitempty,min=0"`
	Schedule     string `json:"schedule"`
}

func (uc *UpdateCourse) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	return core.Validate.Struct(uc)
}

type QueryFilter struct {
	Search   string `query:"search"`
	AgeGroup string `query:"age_group"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.AgeGroup == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.AgeGroup = core.CleanString(qf.AgeGroup)
}

// Match reports whether a course satisfies the filter; Search is a
// case-insensitive substring of the name, description or instructor name.
func (qf *QueryFilter) Match(c Course) bool {
	if qf.AgeGroup != "" && c.AgeGroup != qf.AgeGroup {
		return false
	}
	if qf.Search != "" {
		s := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(c.Name), s) &&
			!strings.Contains(strings.ToLower(c.Description), s) &&
			!strings.Contains(strings.ToLower(c.InstructorName), s) {
			return false
		}
	}
	return true
}
