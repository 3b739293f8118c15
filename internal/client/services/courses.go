package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
	"github.com/gradient-edu/gradient-cli/internal/client/models"
)

// CourseService wraps the course catalog and enrollment endpoints.
type CourseService struct {
	client *api.Client
}

func NewCourseService(c *api.Client) *CourseService {
	return &CourseService{client: c}
}

// ListParams narrows a course listing. Zero values mean "backend default".
type ListParams struct {
	Skip  int
	Limit int
	Term  string
}

func (s *CourseService) List(ctx context.Context, p ListParams) (*models.CourseList, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(p.Skip))
	limit := p.Limit
	if limit <= 0 {
		limit = 100
	}
	q.Set("limit", strconv.Itoa(limit))
	if p.Term != "" {
		q.Set("term", p.Term)
	}

	var list models.CourseList
	if err := s.client.GetJSON(ctx, "/courses", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *CourseService) Get(ctx context.Context, courseID int) (*models.Course, error) {
	var course models.Course
	if err := s.client.GetJSON(ctx, fmt.Sprintf("/courses/%d", courseID), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) Create(ctx context.Context, payload models.CourseCreate) (*models.Course, error) {
	if err := models.Validate(&payload); err != nil {
		return nil, err
	}

	var course models.Course
	if err := s.client.PostJSON(ctx, "/courses", payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) Update(ctx context.Context, courseID int, payload models.CourseUpdate) (*models.Course, error) {
	if err := models.Validate(&payload); err != nil {
		return nil, err
	}

	var course models.Course
	if err := s.client.PutJSON(ctx, fmt.Sprintf("/courses/%d", courseID), payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// MyCourses lists the courses the current user is enrolled in or teaches.
func (s *CourseService) MyCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := s.client.GetJSON(ctx, "/users/me/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Select enrolls the current student in the given courses (1 to 3 at a time).
func (s *CourseService) Select(ctx context.Context, courseIDs []int) ([]models.Course, error) {
	sel := models.CourseSelection{CourseIDs: courseIDs}
	if err := models.Validate(&sel); err != nil {
		return nil, err
	}

	var courses []models.Course
	if err := s.client.PostJSON(ctx, "/users/me/courses", sel, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Seed asks the backend to populate its demo course catalog.
func (s *CourseService) Seed(ctx context.Context) error {
	return s.client.PostJSON(ctx, "/courses/seed", nil, nil)
}
