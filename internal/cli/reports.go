package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/ledgerkeeper/internal/timex"
)

func (a *App) Insights(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	ins, err := a.reportService.Insights(ctx, user)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Total income:   %s\n", a.amount(ins.TotalIncome))
	fmt.Fprintf(a.out, "Total expenses: %s\n", a.amount(ins.TotalExpenses))
	fmt.Fprintf(a.out, "Balance:        %s\n", a.amount(ins.Balance))
	if ins.ExpenditurePercent != nil {
		fmt.Fprintf(a.out, "Spent:          %s%% of income\n", ins.ExpenditurePercent.StringFixed(2))
	} else {
		fmt.Fprintln(a.out, "Spent:          n/a (no income recorded)")
	}
	return nil
}

func (a *App) Categories(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	list, err := a.reportService.ExpensesByCategory(ctx, user)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tTOTAL")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\n", c.Category, a.amount(c.Total))
	}
	return tw.Flush()
}

func (a *App) Monthly(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	list, err := a.reportService.MonthlyIncome(ctx, user)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MONTH\tINCOME")
	for _, m := range list {
		fmt.Fprintf(tw, "%s\t%s\n", m.Month, a.amount(m.Total))
	}
	return tw.Flush()
}

func (a *App) Daily(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	list, err := a.reportService.DailyExpenses(ctx, user)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tEXPENSES")
	for _, d := range list {
		fmt.Fprintf(tw, "%s\t%s\n", timex.FormatDate(d.Date), a.amount(d.Total))
	}
	return tw.Flush()
}
