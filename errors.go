package savemoney

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an operation on a transaction id that is not in the
// ledger. Deletes treat it as a no-op; updates surface it.
var ErrNotFound = errors.New("transaction not found")

// ValidationError reports a rejected field value on add or update. The
// ledger is left untouched when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FormatError reports a malformed snapshot or restore payload. Callers
// recover by falling back to the seed ledger or rejecting the import.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad snapshot format: %s: %v", e.Reason, e.Err)
	}
	return "bad snapshot format: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }
