package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is a course offered by a tutor.
// Every lookup is scoped by (TutorID, ID); a course id alone never resolves a row.
type Course struct {
	ID          uuid.UUID  `json:"id"`
	TutorID     uuid.UUID  `json:"tutor_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Format      *string    `json:"format"`
	Structure   *string    `json:"structure"`
	Duration    *string    `json:"duration"`
	Price       *int32     `json:"price"`
	Language    *string    `json:"language"`
	Level       *string    `json:"level"`
	PostedTime  time.Time  `json:"posted_time"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// CourseFields are the mutable descriptive fields of a course.
// An update replaces all of them together: a nil optional field clears the
// stored value.
type CourseFields struct {
	Name        string
	Description *string
	Format      *string
	Structure   *string
	Duration    *string
	Price       *int32
	Language    *string
	Level       *string
}

// CreateCourse is the payload for a new course owned by TutorID.
type CreateCourse struct {
	TutorID uuid.UUID
	CourseFields
}
