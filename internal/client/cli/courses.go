package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gradient-edu/gradient-cli/internal/client/models"
	"github.com/gradient-edu/gradient-cli/internal/client/services"
)

// ListCourses prints the catalog, optionally filtered by term.
func (a *App) ListCourses(ctx context.Context) error {
	term, err := getSimpleText(a.reader, "Filter by term (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	list, err := a.courses.List(ctx, services.ListParams{Term: term})
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	if list.Total == 0 {
		fmt.Println("No courses found.")
		return nil
	}
	for _, c := range list.Courses {
		fmt.Printf("%4d  %-10s %-40s %s\n", c.ID, c.Code, c.Name, c.Term)
	}
	fmt.Printf("%d course(s)\n", list.Total)
	return nil
}

// ShowCourse prints one course with its description.
func (a *App) ShowCourse(ctx context.Context, courseID int) error {
	c, err := a.courses.Get(ctx, courseID)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	fmt.Printf("%s - %s (%s)\n", c.Code, c.Name, c.Term)
	if c.Description != "" {
		fmt.Println(c.Description)
	}
	return nil
}

// MyCourses prints the courses the current user is enrolled in or teaches.
func (a *App) MyCourses(ctx context.Context) error {
	courses, err := a.courses.MyCourses(ctx)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	if len(courses) == 0 {
		fmt.Println("No enrolled courses.")
		return nil
	}
	for _, c := range courses {
		fmt.Printf("%4d  %-10s %s\n", c.ID, c.Code, c.Name)
	}
	return nil
}

// Enroll asks for up to three course IDs and enrolls the student.
func (a *App) Enroll(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Course IDs to enroll in (comma-separated, max 3)", os.Stdout)
	if err != nil {
		return err
	}

	var ids []int
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, convErr := strconv.Atoi(part)
		if convErr != nil {
			fmt.Println("Not a course ID:", part)
			return nil
		}
		ids = append(ids, id)
	}

	courses, err := a.courses.Select(ctx, ids)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	fmt.Printf("Enrolled in %d course(s).\n", len(courses))
	return nil
}

// NewCourse collects course fields and creates the course (professors only).
func (a *App) NewCourse(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Course code", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Course name", os.Stdout)
	if err != nil {
		return err
	}
	term, err := getSimpleText(a.reader, "Term (e.g. Fall 2026)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description:", os.Stdout)
	if err != nil {
		return err
	}

	c, err := a.courses.Create(ctx, models.CourseCreate{
		Code:        code,
		Name:        name,
		Term:        term,
		Description: description,
	})
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	fmt.Printf("Created course %d (%s).\n", c.ID, c.Code)
	return nil
}
