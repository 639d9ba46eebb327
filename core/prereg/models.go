package prereg

import (
	"strings"
	"time"

	"github.com/bahati/malezi/core"
)

// Statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Plans
const (
	PlanFullTime = "fulltime"
	PlanPartTime = "parttime"
	PlanHalfDay  = "halfday"
)

type PreRegistration struct {
	ID                 string    `json:"id"`
	ChildName          string    `json:"child_name"`
	ChildBirthDate     string    `json:"child_birth_date"`
	ParentName         string    `json:"parent_name"`
	ParentEmail        string    `json:"parent_email"`
	ParentPhone        string    `json:"parent_phone"`
	PreferredStartDate string    `json:"preferred_start_date"`
	Plan               string    `json:"plan"`
	Status             string    `json:"status"`
	SubmittedAt        time.Time `json:"submitted_at"` // UTC
	UpdatedAt          time.Time `json:"updated_at"`   // UTC
}

// NewPreRegistration is submitted by prospective parents, unauthenticated.
type NewPreRegistration struct {
	ChildName          string `json:"child_name" validate:"required"`
	ChildBirthDate     string `json:"child_birth_date" validate:"required,dateonly"`
	ParentName         string `json:"parent_name" validate:"required"`
	ParentEmail        string `json:"parent_email" validate:"required,email"`
	ParentPhone        string `json:"parent_phone"`
	PreferredStartDate string `json:"preferred_start_date" validate:"omitempty,dateonly"`
	Plan               string `json:"plan" validate:"required,oneof=fulltime parttime halfday"`
}

func (np *NewPreRegistration) Validate() error {
	np.ChildName = core.CleanString(np.ChildName)
	np.ParentName = core.CleanString(np.ParentName)
	np.ParentEmail = core.CleanString(np.ParentEmail, true /* lower */)
	return core.Validate.Struct(np)
}

// UpdatePreRegistration is the staff review action; in practice only the
// status moves. Empty fields are left unchanged.
type UpdatePreRegistration struct {
	PreferredStartDate string `json:"preferred_start_date" validate:"omitempty,dateonly"`
	Plan               string `json:"plan" validate:"omitempty,oneof=fulltime parttime halfday"`
	Status             string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

func (up *UpdatePreRegistration) Validate() error {
	return core.Validate.Struct(up)
}

type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
	Plan   string `query:"plan"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Status == "" && qf.Plan == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	qf.Plan = core.CleanString(qf.Plan, true /* lower */)
}

// Match reports whether a pre-registration satisfies the filter; Search is
// a case-insensitive substring of the child or parent identity fields.
func (qf *QueryFilter) Match(pr PreRegistration) bool {
	if qf.Status != "" && pr.Status != qf.Status {
		return false
	}
	if qf.Plan != "" && pr.Plan != qf.Plan {
		return false
	}
	if qf.Search != "" {
		s := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(pr.ChildName), s) &&
			!strings.Contains(strings.ToLower(pr.ParentName), s) &&
			!strings.Contains(strings.ToLower(pr.ParentEmail), s) {
			return false
		}
	}
	return true
}
