package educator

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

type Educator struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"` // job title, free text
	Specialties []string  `json:"specialties"`
	Experience  string    `json:"experience"` // bucket label, e.g. "5-10 years"
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

// NewEducator contains information needed to create a new Educator.
type NewEducator struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Phone       string   `json:"phone"`
	Role        string   `json:"role"`
	Specialties []string `json:"specialties"`
	Experience  string   `json:"experience"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (ne *NewEducator) Validate() error {
	ne.Name = core.CleanString(ne.Name)
	ne.Email = core.CleanString(ne.Email, true /* lower */)
	return core.Validate.Struct(ne)
}

// UpdateEducator defines what information may be provided to modify an
// existing Educator. Empty fields are left unchanged.
type UpdateEducator struct {
	Name        string   `json:"name"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Phone       string   `json:"phone"`
	Role        string   `json:"role"`
	Specialties []string `json:"specialties"`
	Experience  string   `json:"experience"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (ue *UpdateEducator) Validate() error {
	ue.Name = core.CleanString(ue.Name)
	ue.Email = core.CleanString(ue.Email, true /* lower */)
	return core.Validate.Struct(ue)
}

type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Match reports whether an educator satisfies the filter; Search is a
// case-insensitive substring of the name, role or any specialty.
func (qf *QueryFilter) Match(e Educator) bool {
	if qf.Status != "" && e.Status != qf.Status {
		return false
	}
	if qf.Search != "" {
		s := strings.ToLower(qf.Search)
		if strings.Contains(strings.ToLower(e.Name), s) || strings.Contains(strings.ToLower(e.Role), s) {
			return true
		}
		for _, sp := range e.Specialties {
			if strings.Contains(strings.ToLower(sp), s) {
				return true
			}
		}
		return false
	}
	return true
}
