package ledger

import (
	"iter"
	"strings"
)

// Ledger represents the full history of transactions read from the store.
//
// Transactions stay in file order: filters never reorder them, so results
// always come back in the order the records were appended.
type Ledger struct {
	transactions []Transaction
	diags        []string // non-fatal notes collected while decoding
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append appends transactions to this ledger, preserving insertion order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Diagnostics returns the human-readable notes about lines that were skipped
// while decoding the ledger. They are informative only, never fatal.
func (l *Ledger) Diagnostics() []string { return l.diags }

// Predicate selects transactions. Predicates are pure: they never mutate the
// transaction and never touch storage.
type Predicate func(Transaction) bool

// Transactions returns an iterator over the transactions matching all the
// given predicates, in file order.
func (l *Ledger) Transactions(filters ...Predicate) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
	next:
		for _, tx := range l.transactions {
			for _, keep := range filters {
				if !keep(tx) {
					continue next
				}
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Select returns the transactions matching all the given predicates as a new
// slice, in file order.
func (l *Ledger) Select(filters ...Predicate) []Transaction {
	out := make([]Transaction, 0)
	for tx := range l.Transactions(filters...) {
		out = append(out, tx)
	}
	return out
}

// ByKind returns a predicate that filters transactions by the sign of their
// amount. All passes everything through, including zero amounts, which
// belong to neither the Expense nor the Income subset.
func ByKind(k Kind) Predicate {
	return func(tx Transaction) bool {
		switch k {
		case Expense:
			return tx.Amount.IsNegative()
		case Income:
			return tx.Amount.IsPositive()
		default:
			return true
		}
	}
}

// ByRange returns a predicate that keeps transactions dated within r,
// boundaries included.
func ByRange(r Range) Predicate {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}

// ByVendor returns a predicate that matches the vendor field by
// case-insensitive substring.
func ByVendor(substr string) Predicate {
	substr = strings.ToLower(substr)
	return func(tx Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Vendor), substr)
	}
}

// ByDescription returns a predicate that matches the description field by
// case-insensitive substring.
func ByDescription(substr string) Predicate {
	substr = strings.ToLower(substr)
	return func(tx Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Description), substr)
	}
}

// ByAmount returns a predicate that matches the amount within the fixed
// tolerance, to absorb 2-decimal rounding.
func ByAmount(amount Money) Predicate {
	return func(tx Transaction) bool { return tx.Amount.EqualApprox(amount) }
}
