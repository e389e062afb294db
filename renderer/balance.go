package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ledger"
)

// Balance renders the aggregate totals of the ledger as a markdown table.
func Balance(b ledger.Balance) string {
	var s strings.Builder
	fmt.Fprintln(&s, "# Balance")
	fmt.Fprintln(&s)
	fmt.Fprintln(&s, "| | Amount |")
	fmt.Fprintln(&s, "|---|--:|")
	fmt.Fprintf(&s, "| Total Income | %s |\n", b.Income.Display())
	fmt.Fprintf(&s, "| Total Expenses | %s |\n", b.Expenses.Display())
	fmt.Fprintf(&s, "| Net Balance | %s |\n", b.Net.Display())
	return s.String()
}
