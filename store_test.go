package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "transactions.csv"))
}

func TestEnsureExists(t *testing.T) {
	s := testStore(t)

	if err := s.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists() error = %v", err)
	}
	content, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("could not read created file: %v", err)
	}
	if got, want := string(content), Header+"\n"; got != want {
		t.Errorf("created file = %q, want %q", got, want)
	}

	// Idempotent: a second call never truncates the file.
	if err := s.Append(NewExpense(NewDate(2024, time.March, 15), NewClock(9, 0, 0), "Coffee", "Cafe", M(4.50))); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := s.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists() error = %v", err)
	}
	after, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("could not read file: %v", err)
	}
	if len(after) <= len(Header)+1 {
		t.Errorf("EnsureExists() truncated an existing file: %q", after)
	}
}

func TestReadCreatesMissingFile(t *testing.T) {
	s := testStore(t)

	l, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Read() of a fresh store = %d transactions, want 0", l.Len())
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("Read() did not create the ledger file: %v", err)
	}
}

// TestAppendThenRead covers the basic lifecycle: an appended expense comes
// back on read, shows up in the expense subset, and not in the income one.
func TestAppendThenRead(t *testing.T) {
	s := testStore(t)

	tx := NewExpense(NewDate(2024, time.March, 15), NewClock(9, 0, 0), "Coffee", "Cafe", M(4.50))
	if err := s.Append(tx); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	l, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Read() = %d transactions, want 1", l.Len())
	}
	got := l.Select()[0]
	if !got.Equal(tx) {
		t.Errorf("Read() = %+v, want %+v", got, tx)
	}
	if got.Amount.String() != "-4.50" {
		t.Errorf("amount = %s, want -4.50", got.Amount)
	}

	if expenses := l.Select(ByKind(Expense)); len(expenses) != 1 {
		t.Errorf("ByKind(Expense) kept %d transactions, want 1", len(expenses))
	}
	if incomes := l.Select(ByKind(Income)); len(incomes) != 0 {
		t.Errorf("ByKind(Income) kept %d transactions, want 0", len(incomes))
	}
}

func TestAppendPreservesExistingContent(t *testing.T) {
	s := testStore(t)

	first := NewExpense(NewDate(2024, time.March, 15), NewClock(9, 0, 0), "Coffee", "Cafe", M(4.50))
	second := NewIncome(NewDate(2024, time.March, 16), NewClock(10, 0, 0), "Refund", "Store", M(12))
	if err := s.Append(first); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := s.Append(second); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	content, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("could not read file: %v", err)
	}
	want := Header + "\n" +
		"2024-03-15|09:00:00|Coffee|Cafe|-4.50\n" +
		"2024-03-16|10:00:00|Refund|Store|12.00\n"
	if string(content) != want {
		t.Errorf("file content = %q, want %q", content, want)
	}
}

func TestReadSkipsMalformedRows(t *testing.T) {
	s := testStore(t)

	raw := Header + "\n" +
		"2024-03-15|09:00:00|Coffee|Cafe|-4.50\n" +
		"corrupted row\n" +
		"2024-03-16|10:00:00|Refund|Store|12.00\n"
	if err := os.WriteFile(s.Path(), []byte(raw), 0644); err != nil {
		t.Fatalf("could not seed file: %v", err)
	}

	l, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("Read() = %d transactions, want 2", l.Len())
	}
	if len(l.Diagnostics()) != 1 {
		t.Errorf("Read() diagnostics = %v, want 1", l.Diagnostics())
	}
	// The malformed row never reaches filters or the balance.
	if b := l.Balance(); b.Net.String() != "7.50" {
		t.Errorf("Net = %s, want 7.50", b.Net)
	}
}

// External edits between runs are picked up because every Read re-parses
// the file from disk.
func TestReadPicksUpExternalEdits(t *testing.T) {
	s := testStore(t)

	if err := s.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists() error = %v", err)
	}
	l, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if l.Len() != 0 {
		t.Fatalf("Read() = %d transactions, want 0", l.Len())
	}

	f, err := os.OpenFile(s.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("could not open file: %v", err)
	}
	if _, err := f.WriteString("2024-03-15|09:00:00|Manual|Editor|-1.00\n"); err != nil {
		t.Fatalf("could not write: %v", err)
	}
	f.Close()

	l, err = s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("Read() after external edit = %d transactions, want 1", l.Len())
	}
}
