// Package ledger provides the storage and query engine for a personal
// finance ledger. It is designed to be local-first and auditable: the whole
// history lives in a single human-readable, pipe-delimited text file that is
// only ever appended to.
//
// The core functionalities include:
//   - Record Codec: encoding and decoding transactions to and from the
//     delimited line format, tolerating headers, blank lines, and malformed
//     rows (skip-and-report, never abort).
//   - Store: owning the persisted file, creating it with a header on first
//     use, reading the full transaction history, and appending new records.
//   - Query Engine: pure predicate-based filtering by kind (income/expense),
//     inclusive date range, vendor or description substring, and exact
//     amount, plus calendar-relative windows (month-to-date, previous month,
//     year-to-date, previous year) built on the Period engine.
//   - Aggregation: computing total income, total expenses, and net balance
//     with exact decimal arithmetic.
//
// This package serves as the foundational logic for the `lgr` command-line
// tool, which is a thin shell over these operations.
package ledger
