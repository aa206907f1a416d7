package tradelog

import "errors"

// Error categories of the engine. Both are non-recoverable locally: the
// engine never repairs its input or its prior state, it surfaces the error
// and lets the caller decide whether to abort or restore a backup.
var (
	// ErrInvalidInput marks malformed input: non-positive quantity or price,
	// unparseable date or time, or an unsorted trade sequence.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInconsistentLedger marks corrupted prior state: a row whose exit
	// quantity exceeds its entry quantity.
	ErrInconsistentLedger = errors.New("inconsistent ledger")
)
