package ledger

// Balance holds the aggregate totals of a set of transactions.
//
// Expenses is the sum of the absolute values of the negative amounts, so
// both totals are positive and Net = Income - Expenses. Zero amounts
// contribute to neither total. Accumulation is exact; callers round for
// display only.
type Balance struct {
	Income   Money
	Expenses Money
	Net      Money
}

// Balance computes the aggregate totals over the whole ledger.
func (l *Ledger) Balance() Balance {
	var income, expenses Money
	for tx := range l.Transactions() {
		switch {
		case tx.Amount.IsPositive():
			income = income.Add(tx.Amount)
		case tx.Amount.IsNegative():
			expenses = expenses.Add(tx.Amount.Abs())
		}
	}
	return Balance{Income: income, Expenses: expenses, Net: income.Sub(expenses)}
}
