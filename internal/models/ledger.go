package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordID identifies a row inside one tenant's store. IDs increase
// monotonically and are never reused after deletion.
type RecordID int64

type IncomeRecord struct {
	ID     RecordID
	Amount decimal.Decimal
	Date   time.Time
}

type ExpenseRecord struct {
	ID       RecordID
	Amount   decimal.Decimal
	Category string
	Date     time.Time
}

// SavingsSnapshot is an append-only record of total income minus total
// expenses at the moment it was taken. Amount may be negative.
type SavingsSnapshot struct {
	ID     RecordID
	Amount decimal.Decimal
	Date   time.Time
}
