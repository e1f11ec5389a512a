package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error

	AddIncome(ctx context.Context, args []string) error
	UpdateIncome(ctx context.Context, args []string) error
	DeleteIncome(ctx context.Context, args []string) error
	ListIncome(ctx context.Context, args []string) error

	AddExpense(ctx context.Context, args []string) error
	UpdateExpense(ctx context.Context, args []string) error
	DeleteExpense(ctx context.Context, args []string) error
	ListExpenses(ctx context.Context, args []string) error

	ListSavings(ctx context.Context, args []string) error

	Insights(ctx context.Context, args []string) error
	Categories(ctx context.Context, args []string) error
	Monthly(ctx context.Context, args []string) error
	Daily(ctx context.Context, args []string) error

	Interests(ctx context.Context, args []string) error
	SetInterests(ctx context.Context, args []string) error
}

var errNotLoggedIn = errors.New("not logged in")

const (
	helpAnonymous = "Available commands: register [user], login [user], exit"
	helpSession   = `Available commands:
  income | addincome <amount> <date> | updateincome <id> <amount> <date> | deleteincome <id>
  expenses | addexpense <amount> <date> <category> | updateexpense <id> <amount> <date> <category> | deleteexpense <id>
  savings | insights | categories | monthly | daily
  interests | setinterests
  logout | exit
Dates are YYYY-MM-DD.`
)

// runREPL reads a line from reader, parses the first token as the command
// and dispatches the remaining tokens to the matching handler on a. Handler
// errors are reported and the loop continues. The loop exits on EOF or when
// the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ledger%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var handler func(context.Context, []string) error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSession)
			} else {
				printlnFn(helpAnonymous)
			}
			continue

		case "register":
			handler = a.Register
		case "login":
			handler = a.Login
		case "logout":
			handler = a.Logout

		case "income":
			handler = a.ListIncome
		case "addincome":
			handler = a.AddIncome
		case "updateincome":
			handler = a.UpdateIncome
		case "deleteincome":
			handler = a.DeleteIncome

		case "expenses":
			handler = a.ListExpenses
		case "addexpense":
			handler = a.AddExpense
		case "updateexpense":
			handler = a.UpdateExpense
		case "deleteexpense":
			handler = a.DeleteExpense

		case "savings":
			handler = a.ListSavings
		case "insights":
			handler = a.Insights
		case "categories":
			handler = a.Categories
		case "monthly":
			handler = a.Monthly
		case "daily":
			handler = a.Daily

		case "interests":
			handler = a.Interests
		case "setinterests":
			handler = a.SetInterests

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err := handler(ctx, args); err != nil {
			printlnFn("Error:", describe(err))
		}
	}
}

// describe turns a core error into a message for the terminal.
func describe(err error) string {
	switch {
	case errors.Is(err, errNotLoggedIn):
		return "please log in first"
	case errors.Is(err, common.ErrorDuplicateUsername):
		return "username is already taken"
	case errors.Is(err, common.ErrorInvalidPassword):
		return "password must be between 1 and 72 bytes"
	case errors.Is(err, common.ErrorInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, common.ErrTokenExpired):
		return "session expired, please log in again"
	case errors.Is(err, common.ErrInvalidToken):
		return "session is not valid, please log in again"
	case errors.Is(err, common.ErrorNotFound):
		return "record not found"
	case errors.Is(err, common.ErrorStorage):
		return "storage failure, try again later"
	default:
		return err.Error()
	}
}
