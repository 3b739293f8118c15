package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gradient-edu/gradient-cli/internal/client/models"
)

// Search runs a basic keyword search across courses, assignments and users.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}
	if query == "" {
		return nil
	}
	entity, err := getSimpleText(a.reader, "Limit to (course/assignment/user, empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.search.Basic(ctx, query, models.SearchEntityType(entity), 1, 20)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	if len(res.Results) == 0 {
		fmt.Println("Nothing found.")
		return nil
	}
	for _, r := range res.Results {
		fmt.Printf("%-10s %4d  %s\n", r.Type, r.ID, r.Title)
	}
	fmt.Printf("%d result(s)\n", res.Total)
	return nil
}
