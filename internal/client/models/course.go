package models

import "time"

// Course is a course as returned by the backend.
type Course struct {
	ID          int       `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Term        string    `json:"term"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseCreate is the course-creation payload (professors only).
type CourseCreate struct {
	Code        string `json:"code" validate:"required,min=2,max=20"`
	Name        string `json:"name" validate:"required,min=3,max=255"`
	Description string `json:"description,omitempty"`
	Term        string `json:"term" validate:"required,min=3,max=50"`
}

// CourseUpdate is the partial course-update payload.
type CourseUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description,omitempty"`
	Term        *string `json:"term,omitempty" validate:"omitempty,min=3,max=50"`
}

// CourseList is the paginated course listing envelope.
type CourseList struct {
	Courses []Course `json:"courses"`
	Total   int      `json:"total"`
}
