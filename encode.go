package savemoney

import (
	"encoding/json"
	"fmt"
	"io"
)

// The snapshot is a single JSON array of transaction objects, written one
// record per line. The same format serves the persisted snapshot, the
// backup export and the restore import.

// EncodeSnapshot writes the ledger as a JSON array, preserving insertion
// order.
func EncodeSnapshot(w io.Writer, l *Ledger) error {
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	first := true
	for _, tx := range l.Transactions() {
		data, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("failed to marshal transaction %d: %w", tx.ID, err)
		}
		if !first {
			if _, err := io.WriteString(w, ",\n"); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
		}
		first = false
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\n]\n"); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a serialized sequence of transactions. A payload
// that does not parse, or whose top-level value is not a sequence, yields
// a FormatError. Element fields beyond the record shape are not
// re-validated here: restore deliberately keeps the lenient legacy
// behavior, and Add/Update remain the validation gate for new data.
func DecodeSnapshot(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Reason: "not valid JSON", Err: err}
	}
	if _, ok := raw.([]any); !ok {
		return nil, &FormatError{Reason: "top-level value is not a sequence"}
	}

	var txs []Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, &FormatError{Reason: "sequence elements are not transaction records", Err: err}
	}
	return txs, nil
}
