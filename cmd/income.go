package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
)

type incomeCmd struct {
	description string
	vendor      string
	amount      string
	date        string
	at          string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record a new income in the ledger" }
func (*incomeCmd) Usage() string {
	return `lgr income -d <description> -v <payer> -a <amount> [-on <date>] [-at <time>]

  Appends an income to the ledger. The amount sign is forced positive.

Usage Examples:
$ lgr income -d "Salary" -v "Acme Corp" -a 2500
`
}

func (p *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.description, "d", "", "Description of the income.")
	f.StringVar(&p.vendor, "v", "", "Payer the income was received from.")
	f.StringVar(&p.amount, "a", "", "Amount, e.g. 2500 or 123.45.")
	f.StringVar(&p.date, "on", "", "Date of the income. Defaults to today.")
	f.StringVar(&p.at, "at", "", "Time of the income (HH:MM:SS). Defaults to now.")
}

func (p *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := newTransaction(ledger.NewIncome, p.description, p.vendor, p.amount, p.date, p.at)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendTransaction(tx)
}
