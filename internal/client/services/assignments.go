package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
	"github.com/gradient-edu/gradient-cli/internal/client/models"
)

// AssignmentService wraps the assignment endpoints. Creation and update go
// through multipart forms because an optional reference-solution file can
// accompany the payload.
type AssignmentService struct {
	client *api.Client
}

func NewAssignmentService(c *api.Client) *AssignmentService {
	return &AssignmentService{client: c}
}

// List returns assignments, scoped to one course when courseID > 0.
func (s *AssignmentService) List(ctx context.Context, courseID int, p ListParams) (*models.AssignmentList, error) {
	q := url.Values{}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	path := "/assignments"
	if courseID > 0 {
		path = fmt.Sprintf("/courses/%d/assignments", courseID)
	}

	var list models.AssignmentList
	if err := s.client.GetJSON(ctx, path, q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *AssignmentService) Get(ctx context.Context, assignmentID int) (*models.Assignment, error) {
	var a models.Assignment
	if err := s.client.GetJSON(ctx, fmt.Sprintf("/assignments/%d", assignmentID), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create submits a new assignment. referenceFile may be nil.
func (s *AssignmentService) Create(ctx context.Context, payload models.AssignmentCreate, referenceFile *api.Upload) (*models.Assignment, error) {
	if err := models.Validate(&payload); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"course_id":           strconv.Itoa(payload.CourseID),
		"title":               payload.Title,
		"assignment_type":     payload.AssignmentType,
		"due_date":            payload.DueDate.Format(time.RFC3339),
		"points_possible":     strconv.Itoa(payload.PointsPossible),
		"allow_resubmissions": strconv.FormatBool(payload.AllowResubmissions),
	}
	if payload.Description != "" {
		fields["description"] = payload.Description
	}
	if payload.ResubmissionDeadline != nil {
		fields["resubmission_deadline"] = payload.ResubmissionDeadline.Format(time.RFC3339)
	}
	if payload.ReferenceSolution != "" {
		fields["reference_solution"] = payload.ReferenceSolution
	}

	var a models.Assignment
	if err := s.client.PostMultipart(ctx, "/assignments", fields, uploads(referenceFile), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update applies a partial assignment update. referenceFile may be nil.
func (s *AssignmentService) Update(ctx context.Context, assignmentID int, payload models.AssignmentUpdate, referenceFile *api.Upload) (*models.Assignment, error) {
	if err := models.Validate(&payload); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if payload.Title != nil {
		fields["title"] = *payload.Title
	}
	if payload.Description != nil {
		fields["description"] = *payload.Description
	}
	if payload.AssignmentType != nil {
		fields["assignment_type"] = *payload.AssignmentType
	}
	if payload.DueDate != nil {
		fields["due_date"] = payload.DueDate.Format(time.RFC3339)
	}
	if payload.PointsPossible != nil {
		fields["points_possible"] = strconv.Itoa(*payload.PointsPossible)
	}
	if payload.AllowResubmissions != nil {
		fields["allow_resubmissions"] = strconv.FormatBool(*payload.AllowResubmissions)
	}
	if payload.ResubmissionDeadline != nil {
		fields["resubmission_deadline"] = payload.ResubmissionDeadline.Format(time.RFC3339)
	}
	if payload.ReferenceSolution != nil {
		fields["reference_solution"] = *payload.ReferenceSolution
	}

	var a models.Assignment
	if err := s.client.PutMultipart(ctx, fmt.Sprintf("/assignments/%d", assignmentID), fields, uploads(referenceFile), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AssignmentService) Delete(ctx context.Context, assignmentID int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/assignments/%d", assignmentID), nil)
}

func uploads(f *api.Upload) []api.Upload {
	if f == nil {
		return nil
	}
	return []api.Upload{*f}
}
