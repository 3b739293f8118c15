package cli

import (
	"context"
	"fmt"
	"os"
)

// ListSubmissions prints submissions for an assignment (or all visible ones
// when assignmentID is 0).
func (a *App) ListSubmissions(ctx context.Context, assignmentID int) error {
	list, err := a.submissions.List(ctx, assignmentID, 0)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	if len(list.Submissions) == 0 {
		fmt.Println("No submissions.")
		return nil
	}
	for _, s := range list.Submissions {
		late := ""
		if s.IsLate {
			late = " (late)"
		}
		fmt.Printf("%4d  assignment %d  attempt %d  %s%s\n", s.ID, s.AssignmentID, s.AttemptNumber, s.Status, late)
	}
	fmt.Printf("%d submission(s)\n", list.Total)
	return nil
}

// ShowSubmission prints one submission with its grading feedback, if any.
func (a *App) ShowSubmission(ctx context.Context, submissionID int) error {
	s, err := a.submissions.Get(ctx, submissionID)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	fmt.Printf("Submission %d - %s (attempt %d)\n", s.ID, s.Status, s.AttemptNumber)
	if s.AssignmentTitle != "" {
		fmt.Println("Assignment:", s.AssignmentTitle)
	}
	if s.StudentName != "" {
		fmt.Printf("Student: %s <%s>\n", s.StudentName, s.StudentEmail)
	}
	fmt.Println("Submitted:", s.SubmissionTime.Local().Format("2006-01-02 15:04"))
	if s.FileName != "" {
		fmt.Println("File:", s.FileName)
	}
	if s.SubmissionText != "" {
		fmt.Println("---")
		fmt.Println(s.SubmissionText)
	}
	if s.Feedback != nil {
		fmt.Println("--- feedback ---")
		fmt.Printf("Score: %.1f\n", s.Feedback.Score)
		fmt.Println(s.Feedback.OverallAssessment)
		for _, sug := range s.Feedback.ImprovementSuggestions {
			fmt.Println(" -", sug)
		}
	}
	return nil
}

// Submit collects submission text and/or a file and submits it for an
// assignment.
func (a *App) Submit(ctx context.Context) error {
	assignmentID, err := GetInt(a.reader, "Assignment ID", os.Stdout)
	if err != nil {
		return err
	}
	text, err := GetMultiline(a.reader, "Submission text (empty to attach a file only):", os.Stdout)
	if err != nil {
		return err
	}
	file, err := a.promptUpload("File to attach (empty for none)", "file")
	if err != nil {
		return err
	}

	if text == "" && file == nil {
		fmt.Println("Nothing to submit.")
		return nil
	}

	s, err := a.submissions.Create(ctx, assignmentID, text, file)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	fmt.Printf("Submitted (id %d, attempt %d).\n", s.ID, s.AttemptNumber)
	if s.IsLate {
		fmt.Println("Note: this submission is late.")
	}
	return nil
}

// GradeSubmission triggers AI grading for a submission (professors only).
func (a *App) GradeSubmission(ctx context.Context, submissionID int) error {
	strictness, err := getSimpleText(a.reader, "Strictness (Low/Medium/High) [Medium]", os.Stdout)
	if err != nil {
		return err
	}
	if strictness == "" {
		strictness = "Medium"
	}

	s, err := a.submissions.Grade(ctx, submissionID, strictness)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	if s.Feedback != nil {
		fmt.Printf("Graded: %.1f\n%s\n", s.Feedback.Score, s.Feedback.OverallAssessment)
	} else {
		fmt.Println("Grading requested.")
	}
	return nil
}

// AcceptSubmission finalizes a submission's grade (professors only).
func (a *App) AcceptSubmission(ctx context.Context, submissionID int) error {
	s, err := a.submissions.Accept(ctx, submissionID)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}
	fmt.Printf("Submission %d accepted.\n", s.ID)
	return nil
}
