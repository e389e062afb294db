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

type reportCmd struct {
	period string
	prev   bool
	date   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a calendar-relative report of transactions" }
func (*reportCmd) Usage() string {
	return `lgr report [-p <period>] [-prev] [-d <end_date>]

  Lists the transactions of a calendar-relative window anchored to today (or
  to -d). By default the window runs from the start of the period to the
  anchor date (e.g. month-to-date); with -prev it covers the whole previous
  period, using that period's actual length (a previous February ends on the
  28th or 29th).

Usage Examples:
# Month-to-date
$ lgr report
# Previous month
$ lgr report -prev
# Year-to-date, previous year
$ lgr report -p year
$ lgr report -p year -prev
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "month", "Period of the report window (day, week, month, quarter, year).")
	f.BoolVar(&p.prev, "prev", false, "Report on the whole previous period instead of period-to-date.")
	f.StringVar(&p.date, "d", "", "Anchor date of the window. Defaults to today.")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := ledger.ParsePeriod(p.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	anchor := ledger.Today()
	if p.date != "" {
		if anchor, err = ledger.ParseDate(p.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	var window ledger.Range
	var title string
	if p.prev {
		window = period.Previous(anchor)
		title = "Previous " + period.Name()
	} else {
		window = period.ToDate(anchor)
		title = period.ToDateName()
	}

	l, err := ReadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	transactions := l.Select(ledger.ByRange(window))
	printMarkdown(renderer.Report(title, window, transactions))

	return subcommands.ExitSuccess
}
