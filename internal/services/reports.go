package services

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/repomanager"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Reports derives read-only summaries from a tenant's ledger.
type Reports struct {
	repomanager repomanager.RepositoryManager
	tenants     TenantStore
}

func NewReports(m repomanager.RepositoryManager, tenants TenantStore) *Reports {
	return &Reports{repomanager: m, tenants: tenants}
}

func (r *Reports) Insights(ctx context.Context, tenant string) (models.Insights, error) {
	var ins models.Insights
	err := r.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if ins.TotalIncome, err = r.repomanager.Income(tx).Total(ctx); err != nil {
			return classify("sum income", err)
		}
		if ins.TotalExpenses, err = r.repomanager.Expenses(tx).Total(ctx); err != nil {
			return classify("sum expenses", err)
		}
		return nil
	})
	if err != nil {
		return models.Insights{}, err
	}

	ins.Balance = ins.TotalIncome.Sub(ins.TotalExpenses)
	if !ins.TotalIncome.IsZero() {
		pct := ins.TotalExpenses.Div(ins.TotalIncome).Mul(hundred).Round(2)
		ins.ExpenditurePercent = &pct
	}
	return ins, nil
}

// ExpensesByCategory sums expenses per category, largest total first and
// ties broken by category name.
func (r *Reports) ExpensesByCategory(ctx context.Context, tenant string) ([]models.CategoryTotal, error) {
	list, err := r.expenses(ctx, tenant)
	if err != nil {
		return nil, err
	}

	sums := map[string]decimal.Decimal{}
	for _, e := range list {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}

	out := make([]models.CategoryTotal, 0, len(sums))
	for c, t := range sums {
		out = append(out, models.CategoryTotal{Category: c, Total: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

// MonthlyIncome sums income per calendar month in ascending order.
func (r *Reports) MonthlyIncome(ctx context.Context, tenant string) ([]models.MonthlyTotal, error) {
	var list []models.IncomeRecord
	err := r.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		list, err = r.repomanager.Income(tx).List(ctx)
		return classify("list income", err)
	})
	if err != nil {
		return nil, err
	}

	sums := map[string]decimal.Decimal{}
	for _, i := range list {
		m := i.Date.Format("2006-01")
		sums[m] = sums[m].Add(i.Amount)
	}

	out := make([]models.MonthlyTotal, 0, len(sums))
	for m, t := range sums {
		out = append(out, models.MonthlyTotal{Month: m, Total: t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// DailyExpenses sums expenses per date in ascending order.
func (r *Reports) DailyExpenses(ctx context.Context, tenant string) ([]models.DailyTotal, error) {
	list, err := r.expenses(ctx, tenant)
	if err != nil {
		return nil, err
	}

	idx := map[int64]int{}
	var out []models.DailyTotal
	for _, e := range list {
		key := e.Date.Unix()
		if n, ok := idx[key]; ok {
			out[n].Total = out[n].Total.Add(e.Amount)
			continue
		}
		idx[key] = len(out)
		out = append(out, models.DailyTotal{Date: e.Date, Total: e.Amount})
	}
	if out == nil {
		out = []models.DailyTotal{}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *Reports) expenses(ctx context.Context, tenant string) ([]models.ExpenseRecord, error) {
	var list []models.ExpenseRecord
	err := r.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		list, err = r.repomanager.Expenses(tx).List(ctx)
		return classify("list expenses", err)
	})
	return list, err
}
