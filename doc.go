// Package tradelog turns a stream of raw brokerage executions into a
// running, auditable position ledger. It is designed to be local-first and
// auditable: every lot ever opened stays in the ledger forever.
//
// The core functionalities include:
//   - Consolidation: merging same-day, same-instrument, same-direction fills
//     into a single weighted-average trade before matching.
//   - FIFO Matching: offsetting each consolidated trade against the oldest
//     open opposite-direction lots, recording partial and full exits, and
//     opening new lots for any unmatched remainder.
//   - Reporting: read-only open-position and per-instrument balance views
//     derived from the ledger.
//   - Data Persistence: encoding and decoding the ledger to and from a
//     human-readable, version-controllable JSONL file, plus CSV import of
//     broker executions and CSV export of the ledger in spreadsheet layout.
//
// This package serves as the foundational logic for the `tlf` command-line
// tool. The engine is deliberately single-threaded: FIFO correctness depends
// on strict sequential processing of chronologically ordered trades.
package tradelog
