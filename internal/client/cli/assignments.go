package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
	"github.com/gradient-edu/gradient-cli/internal/client/models"
	"github.com/gradient-edu/gradient-cli/internal/client/services"
)

// ListAssignments prints assignments, scoped to a course when courseID > 0.
func (a *App) ListAssignments(ctx context.Context, courseID int) error {
	list, err := a.assignments.List(ctx, courseID, services.ListParams{})
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	if len(list.Assignments) == 0 {
		fmt.Println("No assignments.")
		return nil
	}
	for _, item := range list.Assignments {
		fmt.Printf("%4d  %-40s due %s  %d pts\n",
			item.ID, item.Title, item.DueDate.Local().Format("2006-01-02 15:04"), item.PointsPossible)
	}
	return nil
}

// ShowAssignment prints one assignment in full.
func (a *App) ShowAssignment(ctx context.Context, assignmentID int) error {
	item, err := a.assignments.Get(ctx, assignmentID)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	fmt.Printf("%s (%s)\n", item.Title, item.AssignmentType)
	if item.CourseCode != "" {
		fmt.Printf("Course: %s - %s\n", item.CourseCode, item.CourseName)
	}
	fmt.Printf("Due: %s   Points: %d\n", item.DueDate.Local().Format("2006-01-02 15:04"), item.PointsPossible)
	if item.AllowResubmissions {
		fmt.Println("Resubmissions allowed.")
	}
	if item.Description != "" {
		fmt.Println(item.Description)
	}
	return nil
}

// NewAssignment collects assignment fields and creates it (professors only).
// An optional reference-solution file rides along in the same request.
func (a *App) NewAssignment(ctx context.Context) error {
	courseID, err := GetInt(a.reader, "Course ID", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	assignmentType, err := getSimpleText(a.reader, "Type (homework/exam/project)", os.Stdout)
	if err != nil {
		return err
	}
	dueRaw, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	due, err := time.ParseInLocation("2006-01-02 15:04", dueRaw, time.Local)
	if err != nil {
		fmt.Println("Unrecognized date:", dueRaw)
		return nil
	}
	points, err := GetInt(a.reader, "Points possible", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description:", os.Stdout)
	if err != nil {
		return err
	}

	file, err := a.promptUpload("Reference solution file path (empty for none)", "reference_solution_file")
	if err != nil {
		return err
	}

	created, err := a.assignments.Create(ctx, models.AssignmentCreate{
		CourseID:       courseID,
		Title:          title,
		AssignmentType: assignmentType,
		DueDate:        due,
		PointsPossible: points,
		Description:    description,
	}, file)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	fmt.Printf("Created assignment %d.\n", created.ID)
	return nil
}

// DeleteAssignment removes an assignment (professors only).
func (a *App) DeleteAssignment(ctx context.Context, assignmentID int) error {
	if err := a.assignments.Delete(ctx, assignmentID); err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// promptUpload asks for a file path and loads it into an Upload. An empty
// answer returns nil without error.
func (a *App) promptUpload(prompt, field string) (*api.Upload, error) {
	path, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("Cannot read file:", err)
		return nil, err
	}
	return &api.Upload{Field: field, Name: filepath.Base(path), Content: content}, nil
}
