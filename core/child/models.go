package child

import (
	"strings"
	"time"

	"github.com/bahati/malezi/core"
)

// Statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Child struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BirthDate      string    `json:"birth_date"` // YYYY-MM-DD
	Age            int       `json:"age"`        // derived from BirthDate at write time
	Group          string    `json:"group"`
	ParentID       string    `json:"parent_id"`
	ParentName     string    `json:"parent_name"`
	EnrollmentDate string    `json:"enrollment_date"` // YYYY-MM-DD
	MedicalNotes   string    `json:"medical_notes"`
	Allergies      string    `json:"allergies"`
	EmergencyName  string    `json:"emergency_name"`
	EmergencyPhone string    `json:"emergency_phone"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at"` // UTC
}

// Age computes the child's age in full years at `now` from the birth date.
// It is re-derived whenever the birth date is written, not on read.
func Age(birthDate string, now time.Time) int {
	bd, err := time.Parse(core.DateFormat, birthDate)
	if err != nil {
		return 0
	}
	age := now.Year() - bd.Year()
	if now.YearDay() < bd.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// NewChild contains information needed to enroll a new Child.
type NewChild struct {
	Name           string `json:"name" validate:"required"`
	BirthDate      string `json:"birth_date" validate:"required,dateonly"`
	Group          string `json:"group"`
	ParentID       string `json:"parent_id"`
	ParentName     string `json:"parent_name" validate:"required"`
	EnrollmentDate string `json:"enrollment_date" validate:"omitempty,dateonly"`
	MedicalNotes   string `json:"medical_notes"`
	Allergies      string `json:"allergies"`
	EmergencyName  string `json:"emergency_name"`
	EmergencyPhone string `json:"emergency_phone"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (nc *NewChild) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.ParentName = core.CleanString(nc.ParentName)
	nc.Group = core.CleanString(nc.Group)
	return core.Validate.Struct(nc)
}

// UpdateChild defines what information may be provided to modify an
// existing Child. Empty fields are left unchanged.
type UpdateChild struct {
	Name           string `json:"name"`
	BirthDate      string `json:"birth_date" validate:"omitempty,dateonly"`
	Group          string `json:"group"`
	ParentID       string `json:"parent_id"`
	ParentName     string `json:"parent_name"`
	EnrollmentDate string `json:"enrollment_date" validate:"omitempty,dateonly"`
	MedicalNotes   string `json:"medical_notes"`
	Allergies      string `json:"allergies"`
	EmergencyName  string `json:"emergency_name"`
	EmergencyPhone string `json:"emergency_phone"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (uc *UpdateChild) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	uc.ParentName = core.CleanString(uc.ParentName)
	uc.Group = core.CleanString(uc.Group)
	return core.Validate.Struct(uc)
}

type QueryFilter struct {
	Search string `query:"search"`
	Group  string `query:"group"`
	Status string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Group == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Group = core.CleanString(qf.Group)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Match reports whether a child satisfies the filter; all set fields must
// match and Search is a case-insensitive substring of the name, group or
// parent name.
func (qf *QueryFilter) Match(c Child) bool {
	if qf.Group != "" && c.Group != qf.Group {
		return false
	}
	if qf.Status != "" && c.Status != qf.Status {
		return false
	}
	if qf.Search != "" {
		s := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(c.Name), s) &&
			!strings.Contains(strings.ToLower(c.Group), s) &&
			!strings.Contains(strings.ToLower(c.ParentName), s) {
			return false
		}
	}
	return true
}
