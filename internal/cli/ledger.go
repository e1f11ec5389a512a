package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/timex"
	"github.com/shopspring/decimal"
)

const (
	usageAddIncome     = "addincome <amount> <YYYY-MM-DD>"
	usageUpdateIncome  = "updateincome <id> <amount> <YYYY-MM-DD>"
	usageDeleteIncome  = "deleteincome <id>"
	usageAddExpense    = "addexpense <amount> <YYYY-MM-DD> <category>"
	usageUpdateExpense = "updateexpense <id> <amount> <YYYY-MM-DD> <category>"
	usageDeleteExpense = "deleteexpense <id>"
)

func (a *App) AddIncome(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage(usageAddIncome)
	}
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	amount, date, err := parseAmountDate(args[0], args[1])
	if err != nil {
		return err
	}

	id, err := a.ledgerService.AddIncome(ctx, user, amount, date)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Income %d added\n", id)
	return nil
}

func (a *App) UpdateIncome(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return usage(usageUpdateIncome)
	}
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	amount, date, err := parseAmountDate(args[1], args[2])
	if err != nil {
		return err
	}

	if err := a.ledgerService.UpdateIncome(ctx, user, id, amount, date); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Income %d updated\n", id)
	return nil
}

func (a *App) DeleteIncome(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage(usageDeleteIncome)
	}
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := a.ledgerService.DeleteIncome(ctx, user, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Income %d deleted\n", id)
	return nil
}

func (a *App) ListIncome(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	list, err := a.ledgerService.ListIncome(ctx, user)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAMOUNT\tDATE")
	for _, r := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID, a.amount(r.Amount), timex.FormatDate(r.Date))
	}
	return tw.Flush()
}

func (a *App) AddExpense(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return usage(usageAddExpense)
	}
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	amount, date, err := parseAmountDate(args[0], args[1])
	if err != nil {
		return err
	}

	id, err := a.ledgerService.AddExpense(ctx, user, amount, strings.Join(args[2:], " "), date)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Expense %d added\n", id)
	return nil
}

func (a *App) UpdateExpense(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return usage(usageUpdateExpense)
	}
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	amount, date, err := parseAmountDate(args[1], args[2])
	if err != nil {
		return err
	}

	if err := a.ledgerService.UpdateExpense(ctx, user, id, amount, strings.Join(args[3:], " "), date); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Expense %d updated\n", id)
	return nil
}

func (a *App) DeleteExpense(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage(usageDeleteExpense)
	}
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := a.ledgerService.DeleteExpense(ctx, user, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Expense %d deleted\n", id)
	return nil
}

func (a *App) ListExpenses(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	list, err := a.ledgerService.ListExpenses(ctx, user)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAMOUNT\tCATEGORY\tDATE")
	for _, r := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, a.amount(r.Amount), r.Category, timex.FormatDate(r.Date))
	}
	return tw.Flush()
}

func (a *App) ListSavings(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	list, err := a.ledgerService.ListSavings(ctx, user)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSAVINGS\tDATE")
	for _, s := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.ID, a.amount(s.Amount), timex.FormatDate(s.Date))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	current, err := a.ledgerService.CurrentSavings(ctx, user)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, "No savings recorded yet")
	case err != nil:
		return err
	default:
		fmt.Fprintf(a.out, "Current savings: %s (as of %s)\n", a.amount(current.Amount), timex.FormatDate(current.Date))
	}
	return nil
}

func usage(u string) error {
	return common.Invalid("usage: " + u)
}

func parseID(s string) (models.RecordID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, common.Invalid(fmt.Sprintf("id %q is not a number", s))
	}
	return models.RecordID(id), nil
}

func parseAmountDate(amount, date string) (decimal.Decimal, time.Time, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, time.Time{}, common.Invalid(fmt.Sprintf("amount %q is not a number", amount))
	}
	t, err := timex.ParseDate(date)
	if err != nil {
		return decimal.Zero, time.Time{}, common.Invalid(fmt.Sprintf("date %q is not YYYY-MM-DD", date))
	}
	return d, t, nil
}
