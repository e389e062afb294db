package ledger

import (
	"fmt"
	"strings"
)

// Kind selects a subset of transactions by the sign of their amount.
type Kind int

const (
	// All keeps every transaction, including zero amounts.
	All Kind = iota
	// Expense keeps transactions with a strictly negative amount.
	Expense
	// Income keeps transactions with a strictly positive amount.
	Income
)

func (k Kind) String() string {
	switch k {
	case All:
		return "all"
	case Expense:
		return "expense"
	case Income:
		return "income"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return All, nil
	case "expense", "expenses":
		return Expense, nil
	case "income", "incomes":
		return Income, nil
	default:
		return All, fmt.Errorf("unknown kind: %q", s)
	}
}

// Transaction is one signed monetary event: a single immutable record of the
// ledger. A negative amount is an expense, a positive one an income.
type Transaction struct {
	Date        Date   // calendar date of the event
	Time        Clock  // local time of day, second precision
	Description string // free text, the delimiter is sanitized to a space on write
	Vendor      string // vendor or payer, same sanitization
	Amount      Money  // signed, two decimals on the wire
}

// NewTransaction returns a transaction with the amount rounded to the two
// decimal places of the ledger file.
func NewTransaction(on Date, at Clock, description, vendor string, amount Money) Transaction {
	return Transaction{
		Date:        on,
		Time:        at,
		Description: description,
		Vendor:      vendor,
		Amount:      amount.round(),
	}
}

// NewExpense returns a transaction whose amount sign is forced negative.
func NewExpense(on Date, at Clock, description, vendor string, amount Money) Transaction {
	return NewTransaction(on, at, description, vendor, amount.Abs().Neg())
}

// NewIncome returns a transaction whose amount sign is forced positive.
func NewIncome(on Date, at Clock, description, vendor string, amount Money) Transaction {
	return NewTransaction(on, at, description, vendor, amount.Abs())
}

// When returns the date on which the transaction occurred.
func (t Transaction) When() Date { return t.Date }

// Kind returns the subset the transaction belongs to, based on the sign of
// its amount. A zero amount belongs to neither Expense nor Income.
func (t Transaction) Kind() Kind {
	switch {
	case t.Amount.IsNegative():
		return Expense
	case t.Amount.IsPositive():
		return Income
	default:
		return All
	}
}

// Equal reports whether two transactions carry the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Time == o.Time &&
		t.Description == o.Description &&
		t.Vendor == o.Vendor &&
		t.Amount.Equal(o.Amount)
}
