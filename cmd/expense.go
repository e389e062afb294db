package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	description string
	vendor      string
	amount      string
	date        string
	at          string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record a new expense in the ledger" }
func (*expenseCmd) Usage() string {
	return `lgr expense -d <description> -v <vendor> -a <amount> [-on <date>] [-at <time>]

  Appends an expense to the ledger. The amount sign is forced negative, so
  "-a 4.50" and "-a -4.50" record the same expense.

Usage Examples:
$ lgr expense -d "Coffee" -v "Cafe" -a 4.50
`
}

func (p *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.description, "d", "", "Description of the expense.")
	f.StringVar(&p.vendor, "v", "", "Vendor the expense was paid to.")
	f.StringVar(&p.amount, "a", "", "Amount, e.g. 4.50.")
	f.StringVar(&p.date, "on", "", "Date of the expense. Defaults to today.")
	f.StringVar(&p.at, "at", "", "Time of the expense (HH:MM:SS). Defaults to now.")
}

func (p *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := newTransaction(ledger.NewExpense, p.description, p.vendor, p.amount, p.date, p.at)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendTransaction(tx)
}

// newTransaction builds a transaction from raw command line inputs, using
// the given constructor to force the amount sign.
func newTransaction(build func(ledger.Date, ledger.Clock, string, string, ledger.Money) ledger.Transaction, description, vendor, amount, date, at string) (ledger.Transaction, subcommands.ExitStatus) {
	if amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -a flag is required.")
		return ledger.Transaction{}, subcommands.ExitUsageError
	}
	m, err := ledger.ParseMoney(amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return ledger.Transaction{}, subcommands.ExitUsageError
	}

	on := ledger.Today()
	if date != "" {
		on, err = ledger.ParseDate(date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return ledger.Transaction{}, subcommands.ExitUsageError
		}
	}

	when := ledger.Now()
	if at != "" {
		when, err = ledger.ParseClock(at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			return ledger.Transaction{}, subcommands.ExitUsageError
		}
	}

	return build(on, when, description, vendor, m), subcommands.ExitSuccess
}

// appendTransaction persists a single transaction to the configured ledger file.
func appendTransaction(tx ledger.Transaction) subcommands.ExitStatus {
	store := OpenStore()
	if err := store.Append(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended transaction to %s\n", store.Path())
	return subcommands.ExitSuccess
}
