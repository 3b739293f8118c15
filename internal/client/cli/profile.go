package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gradient-edu/gradient-cli/internal/client/models"
)

// UpdateProfile prompts for new profile values. Empty answers leave the
// corresponding field unchanged on the server.
func (a *App) UpdateProfile(ctx context.Context) error {
	current := a.session.CurrentUser()
	if current == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	firstName, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s]", current.FirstName), os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s]", current.LastName), os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone number [%s]", current.PhoneNumber), os.Stdout)
	if err != nil {
		return err
	}

	payload := models.UserUpdate{}
	if firstName != "" {
		payload.FirstName = &firstName
	}
	if lastName != "" {
		payload.LastName = &lastName
	}
	if phone != "" {
		payload.PhoneNumber = &phone
	}

	if !a.session.UpdateProfile(ctx, payload) {
		fmt.Println("Update failed:", a.session.LastError())
		return nil
	}

	fmt.Println("Profile updated.")
	return nil
}
