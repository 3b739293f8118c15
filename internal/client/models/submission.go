package models

import "time"

// SubmissionStatus is the grading state of a submission.
type SubmissionStatus string

const (
	StatusSubmitted   SubmissionStatus = "submitted"
	StatusGraded      SubmissionStatus = "graded"
	StatusAccepted    SubmissionStatus = "accepted"
	StatusResubmitted SubmissionStatus = "resubmitted"
)

// GradingFeedback is the AI-generated (or professor-reviewed) evaluation
// attached to a graded submission.
type GradingFeedback struct {
	OverallAssessment      string   `json:"overall_assessment"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
	Score                  float64  `json:"score"`
	SimilarityScore        *float64 `json:"similarity_score,omitempty"`
	ProfessorReview        bool     `json:"professor_review,omitempty"`
}

// Submission is a student submission as returned by the backend.
type Submission struct {
	ID              int              `json:"id"`
	AssignmentID    int              `json:"assignment_id"`
	AssignmentTitle string           `json:"assignment_title,omitempty"`
	UserID          int              `json:"user_id"`
	StudentName     string           `json:"student_name,omitempty"`
	StudentEmail    string           `json:"student_email,omitempty"`
	SubmissionTime  time.Time        `json:"submission_time"`
	IsLate          bool             `json:"is_late"`
	FileName        string           `json:"file_name,omitempty"`
	FilePath        string           `json:"file_path,omitempty"`
	FileType        string           `json:"file_type,omitempty"`
	SubmissionText  string           `json:"submission_text,omitempty"`
	AttemptNumber   int              `json:"attempt_number"`
	Status          SubmissionStatus `json:"status"`
	Feedback        *GradingFeedback `json:"feedback,omitempty"`
}

// SubmissionList is the submission listing envelope.
type SubmissionList struct {
	Submissions []Submission `json:"submissions"`
	Total       int          `json:"total"`
}

// GradeRequest asks the backend to run AI grading on a submission.
// Strictness is one of "Low", "Medium", "High".
type GradeRequest struct {
	Strictness string `json:"strictness" validate:"required,oneof=Low Medium High"`
}
