// Package models defines the payload types exchanged with the GRADiEnt API
// and the client-side validation rules applied to user-entered data before
// it is sent.
package models

import "time"

// Role is the platform role assigned to a user account.
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
	RoleAdmin     Role = "admin"
)

// User is the profile returned by the backend for an authenticated account.
type User struct {
	ID          int        `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Role        Role       `json:"role"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// FullName returns a display name for prompts and listings.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserCreate is the registration payload. ConfirmPassword must match
// Password; the backend enforces the same rule.
type UserCreate struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	Role            Role   `json:"role" validate:"required,oneof=student professor admin"`
	PhoneNumber     string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Password        string `json:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// UserUpdate is the partial profile-update payload. Nil fields are omitted
// so the backend leaves them untouched.
type UserUpdate struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
}

// CourseSelection is the body of POST /users/me/courses. Students may pick
// between one and three courses at a time.
type CourseSelection struct {
	CourseIDs []int `json:"course_ids" validate:"required,min=1,max=3"`
}
