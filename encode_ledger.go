package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Separator is the field delimiter of the ledger file.
const Separator = "|"

// Header is the single optional header line of the ledger file.
const Header = "date|time|description|vendor|amount"

// sanitize replaces any embedded delimiter with a space. The line format has
// no quoting or escaping.
func sanitize(field string) string {
	return strings.ReplaceAll(field, Separator, " ")
}

// EncodeTransaction appends a single transaction line to w in the ledger
// format: date|time|description|vendor|amount.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	_, err := fmt.Fprintf(w, "%s|%s|%s|%s|%s\n",
		tx.Date, tx.Time, sanitize(tx.Description), sanitize(tx.Vendor), tx.Amount)
	return err
}

// EncodeLedger writes the header line followed by every transaction in order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTransaction decodes a single non-blank, non-header line.
func DecodeTransaction(line string) (Transaction, error) {
	// Split must preserve trailing empty fields, which strings.Split does.
	parts := strings.Split(line, Separator)
	if len(parts) < 5 {
		return Transaction{}, fmt.Errorf("want 5 fields separated by %q, got %d", Separator, len(parts))
	}
	on, err := parseFileDate(parts[0])
	if err != nil {
		return Transaction{}, err
	}
	at, err := ParseClock(parts[1])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseMoney(parts[4])
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		Date:        on,
		Time:        at,
		Description: strings.TrimSpace(parts[2]),
		Vendor:      strings.TrimSpace(parts[3]),
		Amount:      amount,
	}, nil
}

// isHeader reports whether the first non-blank line of a file is a header.
// Only a line whose lowercase form starts with the literal token "date" is
// treated as one; anything else is decoded as data. A data line whose
// description starts with "date" cannot trip this, since lines start with
// the date field, but a first line like "Date|Time|..." from a hand-edited
// file is skipped.
func isHeader(line string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "date")
}

// DecodeLedger reads every line of r in order and decodes them into a
// Ledger. The first non-blank line is skipped if it looks like a header,
// blank lines are skipped silently, and malformed lines are skipped with a
// diagnostic. Only read failures on r itself are returned as an error; a
// stream of garbage decodes to an empty ledger plus diagnostics.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	scanner := bufio.NewScanner(r)

	first := true
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if first {
			first = false
			if isHeader(line) {
				continue
			}
		}
		tx, err := DecodeTransaction(line)
		if err != nil {
			l.diags = append(l.diags, fmt.Sprintf("skipping invalid row %d %q: %v", lineno, line, err))
			continue
		}
		l.transactions = append(l.transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return l, nil
}
