package ledger

import (
	"fmt"
	"os"
)

// Store owns the persisted ledger file. It is constructed with an explicit
// path and holds no other state: every Read re-parses the file from disk, so
// external edits are picked up on the next read.
//
// The file is append-only. No record is ever rewritten or removed, and a
// single-user, single-process assumption means no locking is attempted.
type Store struct {
	path string
}

// NewStore returns a store for the ledger file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the path of the persisted file.
func (s *Store) Path() string { return s.path }

// EnsureExists creates the ledger file with exactly the header line when it
// is absent. It is idempotent and never truncates an existing file.
func (s *Store) EnsureExists() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("could not create ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, Header); err != nil {
		return fmt.Errorf("could not write header to %q: %w", s.path, err)
	}
	return nil
}

// Read loads the whole ledger from disk, in file order. Parse-level problems
// surface as diagnostics on the returned ledger, never as an error: an empty
// or fully invalid file reads as an empty ledger. Only file-system failures
// are returned as errors.
func (s *Store) Read() (*Ledger, error) {
	if err := s.EnsureExists(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	return DecodeLedger(f)
}

// Append encodes the transaction and appends its single line to the end of
// the file, leaving existing content untouched.
func (s *Store) Append(tx Transaction) error {
	if err := s.EnsureExists(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	if err := EncodeTransaction(f, tx); err != nil {
		return fmt.Errorf("could not write to ledger file %q: %w", s.path, err)
	}
	return nil
}
