package cmd

import (
	"testing"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
)

func TestNewTransactionForcesSign(t *testing.T) {
	tx, status := newTransaction(ledger.NewExpense, "Coffee", "Cafe", "4.50", "2024-03-15", "09:00:00")
	if status != subcommands.ExitSuccess {
		t.Fatalf("newTransaction() status = %v", status)
	}
	if !tx.Amount.IsNegative() {
		t.Errorf("expense amount = %s, want negative", tx.Amount)
	}
	if tx.Date != ledger.NewDate(2024, 3, 15) {
		t.Errorf("date = %v, want 2024-03-15", tx.Date)
	}

	// An income is forced positive even from a negative input.
	tx, status = newTransaction(ledger.NewIncome, "Salary", "Acme", "-2500", "", "")
	if status != subcommands.ExitSuccess {
		t.Fatalf("newTransaction() status = %v", status)
	}
	if !tx.Amount.IsPositive() {
		t.Errorf("income amount = %s, want positive", tx.Amount)
	}
}

func TestNewTransactionBadInputs(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		date   string
		at     string
	}{
		{"missing amount", "", "", ""},
		{"bad amount", "a lot", "", ""},
		{"bad date", "4.50", "someday", ""},
		{"bad time", "4.50", "", "noon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, status := newTransaction(ledger.NewExpense, "d", "v", tt.amount, tt.date, tt.at); status != subcommands.ExitUsageError {
				t.Errorf("newTransaction() status = %v, want ExitUsageError", status)
			}
		})
	}
}
