package ledger

import "fmt"

// Criteria holds the raw, independently optional filters of a custom search.
// A blank field imposes no constraint; all supplied fields are combined with
// a logical AND.
type Criteria struct {
	Start       string // earliest date, inclusive
	End         string // latest date, inclusive
	Description string // case-insensitive substring
	Vendor      string // case-insensitive substring
	Amount      string // exact amount, within tolerance
}

// Compile turns the non-blank criteria into predicates. A criterion that
// does not parse (bad date, non-numeric amount) is dropped with a diagnostic
// instead of failing the whole search, as if it had not been supplied.
func (c Criteria) Compile() (filters []Predicate, diags []string) {
	if c.Start != "" {
		if start, err := ParseDate(c.Start); err != nil {
			diags = append(diags, fmt.Sprintf("bad start date, ignoring: %v", err))
		} else {
			filters = append(filters, func(tx Transaction) bool { return !tx.Date.Before(start) })
		}
	}
	if c.End != "" {
		if end, err := ParseDate(c.End); err != nil {
			diags = append(diags, fmt.Sprintf("bad end date, ignoring: %v", err))
		} else {
			filters = append(filters, func(tx Transaction) bool { return !tx.Date.After(end) })
		}
	}
	if c.Description != "" {
		filters = append(filters, ByDescription(c.Description))
	}
	if c.Vendor != "" {
		filters = append(filters, ByVendor(c.Vendor))
	}
	if c.Amount != "" {
		if amount, err := ParseMoney(c.Amount); err != nil {
			diags = append(diags, fmt.Sprintf("bad amount filter, ignoring: %v", err))
		} else {
			filters = append(filters, ByAmount(amount))
		}
	}
	return filters, diags
}

// Search returns the transactions matching all the parseable criteria, in
// file order, along with the diagnostics for the criteria that were dropped.
func (l *Ledger) Search(c Criteria) ([]Transaction, []string) {
	filters, diags := c.Compile()
	return l.Select(filters...), diags
}
