// Package domain contains the core data types for the Tutor Catalog API.
// It depends only on uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tutor is a person who owns courses.
// DeletedAt is internal: a non-nil value hides the row from every query,
// and it is never serialised to clients.
type Tutor struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	PicURL    string     `json:"pic_url"`
	Profile   string     `json:"profile"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// CreateTutor carries every writable tutor field. It is used for creation
// and for full-replace updates.
type CreateTutor struct {
	Name    string
	PicURL  string
	Profile string
}

// TutorPatch carries a subset of tutor fields. A nil field keeps its
// current value.
type TutorPatch struct {
	Name    *string
	PicURL  *string
	Profile *string
}

// Merge returns the full-replace payload produced by applying p on top of current.
func (p TutorPatch) Merge(current Tutor) CreateTutor {
	merged := CreateTutor{
		Name:    current.Name,
		PicURL:  current.PicURL,
		Profile: current.Profile,
	}
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.PicURL != nil {
		merged.PicURL = *p.PicURL
	}
	if p.Profile != nil {
		merged.Profile = *p.Profile
	}
	return merged
}
