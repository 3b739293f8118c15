package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
	"github.com/gradient-edu/gradient-cli/internal/client/models"
)

// SubmissionService wraps the submission and grading-workflow endpoints.
type SubmissionService struct {
	client *api.Client
}

func NewSubmissionService(c *api.Client) *SubmissionService {
	return &SubmissionService{client: c}
}

// List returns submissions, optionally filtered by assignment and/or user.
func (s *SubmissionService) List(ctx context.Context, assignmentID, userID int) (*models.SubmissionList, error) {
	q := url.Values{}
	if assignmentID > 0 {
		q.Set("assignment_id", strconv.Itoa(assignmentID))
	}
	if userID > 0 {
		q.Set("user_id", strconv.Itoa(userID))
	}

	var list models.SubmissionList
	if err := s.client.GetJSON(ctx, "/submissions", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *SubmissionService) Get(ctx context.Context, submissionID int) (*models.Submission, error) {
	var sub models.Submission
	if err := s.client.GetJSON(ctx, fmt.Sprintf("/submissions/%d", submissionID), nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Create submits work for an assignment. Either text, a file, or both must
// be provided; the backend rejects empty submissions.
func (s *SubmissionService) Create(ctx context.Context, assignmentID int, text string, file *api.Upload) (*models.Submission, error) {
	fields := map[string]string{"assignment_id": strconv.Itoa(assignmentID)}
	if text != "" {
		fields["submission_text"] = text
	}

	var sub models.Submission
	if err := s.client.PostMultipart(ctx, "/submissions", fields, uploads(file), &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Grade triggers AI grading for a submission (professors only). Strictness
// is one of "Low", "Medium", "High".
func (s *SubmissionService) Grade(ctx context.Context, submissionID int, strictness string) (*models.Submission, error) {
	req := models.GradeRequest{Strictness: strictness}
	if err := models.Validate(&req); err != nil {
		return nil, err
	}

	var sub models.Submission
	if err := s.client.PostJSON(ctx, fmt.Sprintf("/submissions/%d/grade", submissionID), req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Accept finalizes a submission's grade (professors only).
func (s *SubmissionService) Accept(ctx context.Context, submissionID int) (*models.Submission, error) {
	var sub models.Submission
	if err := s.client.PostJSON(ctx, fmt.Sprintf("/submissions/%d/accept", submissionID), nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
