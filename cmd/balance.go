package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display total income, total expenses, and net balance" }
func (*balanceCmd) Usage() string {
	return `lgr balance

  Computes the aggregate totals over the whole ledger.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (p *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := ReadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Balance(l.Balance()))

	return subcommands.ExitSuccess
}
