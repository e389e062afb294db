package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	kind  string
	start string
	date  string
	head  int
	tail  int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions in the ledger" }
func (*listCmd) Usage() string {
	return `lgr list [-k <kind>] [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger in file order, with options for
  filtering by kind and date range, and limiting the output.

Usage Examples:
$ lgr list -k expense
$ lgr list -s 2024-01-01 -d 2024-03-31 -tail 10
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "k", "all", "Kind of transactions to list (all, expense, income).")
	f.StringVar(&p.start, "s", "", "The start date for a custom range.")
	f.StringVar(&p.date, "d", "", "The end date for the range.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	kind, err := ledger.ParseKind(p.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	l, err := ReadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filters := []ledger.Predicate{ledger.ByKind(kind)}
	if p.start != "" || p.date != "" {
		start := ledger.Date{}
		if p.start != "" {
			if start, err = ledger.ParseDate(p.start); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		end := ledger.Today()
		if p.date != "" {
			if end, err = ledger.ParseDate(p.date); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		if start.IsZero() {
			// Only an end bound was given, keep everything up to it.
			start = ledger.NewDate(1, 1, 1)
		}
		filters = append(filters, ledger.ByRange(ledger.NewRange(start, end)))
	}

	transactions := l.Select(filters...)

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))

	return subcommands.ExitSuccess
}
