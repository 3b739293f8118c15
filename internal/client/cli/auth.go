package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gradient-edu/gradient-cli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. Failure details come
// from the session's published error.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	if !a.session.Login(ctx, email, password) {
		fmt.Println("Login failed:", a.session.LastError())
		return nil
	}

	user := a.session.CurrentUser()
	fmt.Printf("Welcome, %s (%s)!\n", user.FullName(), user.Role)
	return nil
}

// Register collects a registration form and creates an account. The new
// user still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (student/professor)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number (optional)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	payload := models.UserCreate{
		Email:           email,
		FirstName:       firstName,
		LastName:        lastName,
		Role:            models.Role(role),
		PhoneNumber:     phone,
		Password:        password,
		ConfirmPassword: confirm,
	}

	if !a.session.Register(ctx, payload) {
		fmt.Println("Registration failed:", a.session.LastError())
		return nil
	}

	fmt.Println("Account created. You can now log in.")
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the current profile and the token's expiry when available.
func (a *App) Whoami(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("%s <%s>\nRole: %s\n", user.FullName(), user.Email, user.Role)
	if user.PhoneNumber != "" {
		fmt.Println("Phone:", user.PhoneNumber)
	}
	if exp, ok := a.session.TokenExpiry(ctx); ok {
		fmt.Println("Session valid until:", exp.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}
