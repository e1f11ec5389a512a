package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/app"
	"github.com/dmitrijs2005/ledgerkeeper/internal/config"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/shopspring/decimal"
)

type AuthService interface {
	Register(ctx context.Context, userName string, password []byte) error
	Login(ctx context.Context, userName string, password []byte) (string, error)
	Resolve(token string) (string, error)
}

type LedgerService interface {
	AddIncome(ctx context.Context, tenant string, amount decimal.Decimal, date time.Time) (models.RecordID, error)
	UpdateIncome(ctx context.Context, tenant string, id models.RecordID, amount decimal.Decimal, date time.Time) error
	DeleteIncome(ctx context.Context, tenant string, id models.RecordID) error
	ListIncome(ctx context.Context, tenant string) ([]models.IncomeRecord, error)

	AddExpense(ctx context.Context, tenant string, amount decimal.Decimal, category string, date time.Time) (models.RecordID, error)
	UpdateExpense(ctx context.Context, tenant string, id models.RecordID, amount decimal.Decimal, category string, date time.Time) error
	DeleteExpense(ctx context.Context, tenant string, id models.RecordID) error
	ListExpenses(ctx context.Context, tenant string) ([]models.ExpenseRecord, error)

	ListSavings(ctx context.Context, tenant string) ([]models.SavingsSnapshot, error)
	CurrentSavings(ctx context.Context, tenant string) (models.SavingsSnapshot, error)
}

type ReportService interface {
	Insights(ctx context.Context, tenant string) (models.Insights, error)
	ExpensesByCategory(ctx context.Context, tenant string) ([]models.CategoryTotal, error)
	MonthlyIncome(ctx context.Context, tenant string) ([]models.MonthlyTotal, error)
	DailyExpenses(ctx context.Context, tenant string) ([]models.DailyTotal, error)
}

type InterestService interface {
	SetInterests(ctx context.Context, userName string, interests []string) error
	GetInterests(ctx context.Context, userName string) ([]string, error)
}

// App holds the services and the session of one interactive user. Ledger
// calls use the username resolved from token; userName only feeds the prompt.
type App struct {
	authService     AuthService
	ledgerService   LedgerService
	reportService   ReportService
	interestService InterestService

	token    string
	userName string
	currency string

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(core *app.App, c *config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		authService:     core.Credentials,
		ledgerService:   core.Ledger,
		reportService:   core.Reports,
		interestService: core.Interests,
		currency:        c.Currency,
		reader:          bufio.NewReader(in),
		out:             out,
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the ledger CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
