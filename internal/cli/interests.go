package cli

import (
	"context"
	"fmt"
)

// getLines is a test seam for GetLines.
var getLines = GetLines

func (a *App) Interests(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	list, err := a.interestService.GetInterests(ctx, user)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No interests set")
		return nil
	}
	for _, s := range list {
		fmt.Fprintln(a.out, "-", s)
	}
	return nil
}

// SetInterests replaces the interest set with values entered one per line.
func (a *App) SetInterests(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	list, err := getLines(a.reader, "Enter interests, one per line", a.out)
	if err != nil {
		return err
	}

	if err := a.interestService.SetInterests(ctx, user, list); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Interests saved")
	return nil
}
