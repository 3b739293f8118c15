package models

import "time"

// Assignment is an assignment as returned by the backend.
type Assignment struct {
	ID                   int        `json:"id"`
	CourseID             int        `json:"course_id"`
	CourseName           string     `json:"course_name,omitempty"`
	CourseCode           string     `json:"course_code,omitempty"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	AssignmentType       string     `json:"assignment_type"`
	DueDate              time.Time  `json:"due_date"`
	PointsPossible       int        `json:"points_possible"`
	AllowResubmissions   bool       `json:"allow_resubmissions"`
	ResubmissionDeadline *time.Time `json:"resubmission_deadline,omitempty"`
	ReferenceSolution    string     `json:"reference_solution,omitempty"`
	CreatedBy            int        `json:"created_by"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// AssignmentCreate is the assignment-creation payload. It is sent as a
// multipart form because an optional reference-solution file may ride along.
type AssignmentCreate struct {
	CourseID             int        `json:"course_id" validate:"required,gt=0"`
	Title                string     `json:"title" validate:"required"`
	Description          string     `json:"description,omitempty"`
	AssignmentType       string     `json:"assignment_type" validate:"required"`
	DueDate              time.Time  `json:"due_date" validate:"required"`
	PointsPossible       int        `json:"points_possible" validate:"gte=0"`
	AllowResubmissions   bool       `json:"allow_resubmissions"`
	ResubmissionDeadline *time.Time `json:"resubmission_deadline,omitempty"`
	ReferenceSolution    string     `json:"reference_solution,omitempty"`
}

// AssignmentUpdate is the partial assignment-update payload, also sent as a
// multipart form.
type AssignmentUpdate struct {
	Title                *string    `json:"title,omitempty"`
	Description          *string    `json:"description,omitempty"`
	AssignmentType       *string    `json:"assignment_type,omitempty"`
	DueDate              *time.Time `json:"due_date,omitempty"`
	PointsPossible       *int       `json:"points_possible,omitempty" validate:"omitempty,gte=0"`
	AllowResubmissions   *bool      `json:"allow_resubmissions,omitempty"`
	ResubmissionDeadline *time.Time `json:"resubmission_deadline,omitempty"`
	ReferenceSolution    *string    `json:"reference_solution,omitempty"`
}

// AssignmentList is the paginated assignment listing envelope.
type AssignmentList struct {
	Assignments []Assignment `json:"assignments"`
	Total       int          `json:"total"`
}
