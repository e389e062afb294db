// Package cmd implements the CLI application to manage a personal finance
// ledger.
package cmd

import (
	"flag"
	"log"
	"os"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&expenseCmd{}, "transactions")
	c.Register(&incomeCmd{}, "transactions")

	c.Register(&listCmd{}, "reports")
	c.Register(&balanceCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&searchCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", defaultLedgerFile(), "Path to the ledger file containing transactions (pipe-delimited format)")

// defaultLedgerFile resolves the ledger file from a local .env file or the
// environment, falling back to the conventional name.
func defaultLedgerFile() string {
	godotenv.Load() // a missing .env file is fine
	if path := os.Getenv("LEDGER_FILE"); path != "" {
		return path
	}
	return "transactions.csv"
}

// OpenStore returns the store for the configured ledger file.
func OpenStore() *ledger.Store {
	return ledger.NewStore(*ledgerFile)
}

// ReadLedger loads the whole ledger, printing any skipped-line diagnostics
// to stderr so a corrupted row never hides the rest of the file.
func ReadLedger() (*ledger.Ledger, error) {
	l, err := OpenStore().Read()
	if err != nil {
		return nil, err
	}
	printDiagnostics(l.Diagnostics())
	return l, nil
}

func printDiagnostics(diags []string) {
	for _, d := range diags {
		log.Println("warning,", d)
	}
}
