package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	ListCourses(ctx context.Context) error
	ShowCourse(ctx context.Context, courseID int) error
	MyCourses(ctx context.Context) error
	Enroll(ctx context.Context) error
	NewCourse(ctx context.Context) error
	ListAssignments(ctx context.Context, courseID int) error
	ShowAssignment(ctx context.Context, assignmentID int) error
	NewAssignment(ctx context.Context) error
	DeleteAssignment(ctx context.Context, assignmentID int) error
	Submit(ctx context.Context) error
	ListSubmissions(ctx context.Context, assignmentID int) error
	ShowSubmission(ctx context.Context, submissionID int) error
	GradeSubmission(ctx context.Context, submissionID int) error
	AcceptSubmission(ctx context.Context, submissionID int) error
	Chat(ctx context.Context) error
	Search(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, chat, exit"
	helpLoggedIn  = "Available commands: whoami, profile, courses, course <id>, mycourses, enroll, newcourse, " +
		"assignments [courseID], assignment <id>, newassignment, delassignment <id>, " +
		"submit, submissions [assignmentID], submission <id>, grade <id>, accept <id>, " +
		"search, chat, logout, exit"
)

// runREPL starts a read–eval–print loop for the GRADiEnt CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gradient %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.UpdateProfile(ctx)

		case "courses":
			_ = a.ListCourses(ctx)

		case "course":
			if id, ok := intArg(args); ok {
				_ = a.ShowCourse(ctx, id)
			} else {
				printlnFn("Usage: course <id>")
			}

		case "mycourses":
			_ = a.MyCourses(ctx)

		case "enroll":
			_ = a.Enroll(ctx)

		case "newcourse":
			_ = a.NewCourse(ctx)

		case "assignments":
			id, _ := intArg(args) // optional course scope
			_ = a.ListAssignments(ctx, id)

		case "assignment":
			if id, ok := intArg(args); ok {
				_ = a.ShowAssignment(ctx, id)
			} else {
				printlnFn("Usage: assignment <id>")
			}

		case "newassignment":
			_ = a.NewAssignment(ctx)

		case "delassignment":
			if id, ok := intArg(args); ok {
				_ = a.DeleteAssignment(ctx, id)
			} else {
				printlnFn("Usage: delassignment <id>")
			}

		case "submit":
			_ = a.Submit(ctx)

		case "submissions":
			id, _ := intArg(args) // optional assignment scope
			_ = a.ListSubmissions(ctx, id)

		case "submission":
			if id, ok := intArg(args); ok {
				_ = a.ShowSubmission(ctx, id)
			} else {
				printlnFn("Usage: submission <id>")
			}

		case "grade":
			if id, ok := intArg(args); ok {
				_ = a.GradeSubmission(ctx, id)
			} else {
				printlnFn("Usage: grade <id>")
			}

		case "accept":
			if id, ok := intArg(args); ok {
				_ = a.AcceptSubmission(ctx, id)
			} else {
				printlnFn("Usage: accept <id>")
			}

		case "chat":
			_ = a.Chat(ctx)

		case "search":
			_ = a.Search(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func intArg(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return n, true
}
