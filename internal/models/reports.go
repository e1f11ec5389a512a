package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insights summarizes a tenant's ledger. ExpenditurePercent is nil when
// there is no income to relate expenses to.
type Insights struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	Balance            decimal.Decimal
	ExpenditurePercent *decimal.Decimal
}

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthlyTotal aggregates amounts by calendar month, Month formatted YYYY-MM.
type MonthlyTotal struct {
	Month string
	Total decimal.Decimal
}

type DailyTotal struct {
	Date  time.Time
	Total decimal.Decimal
}
