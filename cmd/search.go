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

type searchCmd struct {
	start       string
	end         string
	description string
	vendor      string
	amount      string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search transactions by any combination of criteria" }
func (*searchCmd) Usage() string {
	return `lgr search [-s <start_date>] [-e <end_date>] [-desc <text>] [-vendor <text>] [-amount <amount>]

  Searches the ledger with independently optional criteria, combined with a
  logical AND. Text criteria match case-insensitive substrings. The amount
  criterion matches within a small tolerance. A criterion that does not
  parse is ignored with a warning rather than failing the search.

Usage Examples:
$ lgr search -vendor caf
$ lgr search -s 2024-01-01 -e 2024-06-30 -amount -4.50
`
}

func (p *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "Earliest date, inclusive.")
	f.StringVar(&p.end, "e", "", "Latest date, inclusive.")
	f.StringVar(&p.description, "desc", "", "Description contains this text.")
	f.StringVar(&p.vendor, "vendor", "", "Vendor contains this text.")
	f.StringVar(&p.amount, "amount", "", "Amount equals this value.")
}

func (p *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := ReadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	results, diags := l.Search(ledger.Criteria{
		Start:       p.start,
		End:         p.end,
		Description: p.description,
		Vendor:      p.vendor,
		Amount:      p.amount,
	})
	printDiagnostics(diags)

	printMarkdown(renderer.Transactions(results))

	return subcommands.ExitSuccess
}
