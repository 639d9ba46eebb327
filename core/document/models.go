package document

import (
	"strings"
	"time"

	"github.com/bahati/malezi/core"
)

// Categories
const (
	CategoryMedical        = "medical"
	CategoryAdministrative = "administrative"
	CategoryPhoto          = "photo"
	CategoryOther          = "other"
)

// Statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Document holds file metadata only; no blob is stored.
type Document struct {
	ID      string `json:"id"`
	ChildID string `json:"child_id"`
	// ChildName is snapshotted at write time and not refreshed.
	ChildName   string    `json:"child_name"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"` // bytes
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	UploadDate  string    `json:"upload_date"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

// NewDocument contains the metadata recorded for an uploaded file.
type NewDocument struct {
	ChildID     string `json:"child_id" validate:"required"`
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size" validate:"omitempty,min=0"`
	Category    string `json:"category" validate:"required,oneof=medical administrative photo other"`
	Status      string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	UploadDate  string `json:"upload_date" validate:"omitempty,dateonly"`
}

func (nd *NewDocument) Validate() error {
	nd.Filename = core.CleanString(nd.Filename)
	return core.Validate.Struct(nd)
}

// UpdateDocument defines what information may be provided to modify an
// existing Document. Empty fields are left unchanged.
type UpdateDocument struct {
	Filename string `json:"filename"`
	Category string `json:"category" validate:"omitempty,oneof=medical administrative photo other"`
	Status   string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

func (ud *UpdateDocument) Validate() error {
	ud.Filename = core.CleanString(ud.Filename)
	return core.Validate.Struct(ud)
}

type QueryFilter struct {
	Search   string `query:"search"`
	ChildID  string `query:"child_id"`
	Category string `query:"category"`
	Status   string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.ChildID == "" && qf.Category == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Category = core.CleanString(qf.Category, true /* lower */)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Match reports whether a document satisfies the filter; Search is a
// case-insensitive substring of the filename or child name.
func (qf *QueryFilter) Match(d Document) bool {
	if qf.ChildID != "" && d.ChildID != qf.ChildID {
		return false
	}
	if qf.Category != "" && d.Category != qf.Category {
		return false
	}
	if qf.Status != "" && d.Status != qf.Status {
		return false
	}
	if qf.Search != "" {
		s := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(d.Filename), s) &&
			!strings.Contains(strings.ToLower(d.ChildName), s) {
			return false
		}
	}
	return true
}
