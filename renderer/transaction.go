// Package renderer renders ledger results to markdown strings, suitable for
// terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ledger"
)

// Transactions renders a list of transactions as a markdown table, in the
// order given.
func Transactions(txs []ledger.Transaction) string {
	if len(txs) == 0 {
		return "No transactions found.\n"
	}

	var b strings.Builder
	fmt.Fprintln(&b, "| Date | Time | Description | Vendor | Amount |")
	fmt.Fprintln(&b, "|---|---|---|---|--:|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Time, tx.Description, tx.Vendor, tx.Amount.Display())
	}
	return b.String()
}

// Report renders a titled, date-ranged list of transactions.
func Report(title string, r ledger.Range, txs []ledger.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "From %s to %s.\n\n", r.From, r.To)
	b.WriteString(Transactions(txs))
	return b.String()
}
