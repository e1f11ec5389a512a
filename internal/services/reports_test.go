package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReports(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	newTenant(t, f, "alice")

	for _, in := range []struct{ amount, date string }{
		{"1000", "2024-01-05"},
		{"500", "2024-01-20"},
		{"1200", "2024-02-01"},
	} {
		_, err := f.ledger.AddIncome(ctx, "alice", dec(in.amount), day(in.date))
		require.NoError(t, err)
	}

	for _, e := range []struct{ amount, category, date string }{
		{"100", "rent", "2024-01-06"},
		{"40", "food", "2024-01-06"},
		{"60", "food", "2024-01-02"},
		{"100", "fun", "2024-02-03"},
		{"25.5", "transport", "2024-02-03"},
	} {
		_, err := f.ledger.AddExpense(ctx, "alice", dec(e.amount), e.category, day(e.date))
		require.NoError(t, err)
	}
}

func TestReports_Insights(t *testing.T) {
	f := newFixture(t)
	seedReports(t, f)

	ins, err := f.reports.Insights(context.Background(), "alice")
	require.NoError(t, err)
	assertDec(t, "2700", ins.TotalIncome)
	assertDec(t, "325.5", ins.TotalExpenses)
	assertDec(t, "2374.5", ins.Balance)
	require.NotNil(t, ins.ExpenditurePercent)
	assertDec(t, "12.06", *ins.ExpenditurePercent)
}

func TestReports_InsightsWithoutIncome(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	newTenant(t, f, "alice")

	_, err := f.ledger.AddExpense(ctx, "alice", dec("10"), "food", day("2024-01-01"))
	require.NoError(t, err)

	ins, err := f.reports.Insights(ctx, "alice")
	require.NoError(t, err)
	assertDec(t, "-10", ins.Balance)
	assert.Nil(t, ins.ExpenditurePercent)
}

func TestReports_ExpensesByCategory(t *testing.T) {
	f := newFixture(t)
	seedReports(t, f)

	got, err := f.reports.ExpensesByCategory(context.Background(), "alice")
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for _, c := range got {
		names = append(names, c.Category)
	}
	assert.Equal(t, []string{"food", "fun", "rent", "transport"}, names)
	assertDec(t, "100", got[0].Total)
	assertDec(t, "25.5", got[3].Total)
}

func TestReports_MonthlyIncome(t *testing.T) {
	f := newFixture(t)
	seedReports(t, f)

	got, err := f.reports.MonthlyIncome(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01", got[0].Month)
	assertDec(t, "1500", got[0].Total)
	assert.Equal(t, "2024-02", got[1].Month)
	assertDec(t, "1200", got[1].Total)
}

func TestReports_DailyExpenses(t *testing.T) {
	f := newFixture(t)
	seedReports(t, f)

	got, err := f.reports.DailyExpenses(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, day("2024-01-02"), got[0].Date)
	assertDec(t, "60", got[0].Total)
	assert.Equal(t, day("2024-01-06"), got[1].Date)
	assertDec(t, "140", got[1].Total)
	assert.Equal(t, day("2024-02-03"), got[2].Date)
	assertDec(t, "125.5", got[2].Total)
}

func TestReports_EmptyLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	newTenant(t, f, "alice")

	cats, err := f.reports.ExpensesByCategory(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, cats)

	daily, err := f.reports.DailyExpenses(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, daily)

	_, err = f.reports.MonthlyIncome(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
