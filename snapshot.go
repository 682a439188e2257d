package savemoney

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// snapshotFile is the well-known name of the persisted ledger, relative
// to the application data directory.
const snapshotFile = "savemoney/transactions.json"

// Store reads and writes the ledger snapshot at a fixed path.
type Store struct {
	Path string
}

// NewStore returns a store for an explicit snapshot path.
func NewStore(path string) *Store { return &Store{Path: path} }

// DefaultStore resolves the snapshot location under the XDG data home.
func DefaultStore() (*Store, error) {
	path, err := xdg.DataFile(snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("could not resolve data path: %w", err)
	}
	return &Store{Path: path}, nil
}

// Load reads the snapshot and returns the ledger, with this store
// attached for auto-save. A missing or unparseable snapshot falls back to
// the built-in seed ledger: startup never fails on bad storage.
func (s *Store) Load() *Ledger {
	var ledger *Ledger

	f, err := os.Open(s.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ledger = NewSeededLedger()
	case err != nil:
		log.Printf("warning: could not open snapshot %q, starting from seed data: %v", s.Path, err)
		ledger = NewSeededLedger()
	default:
		defer f.Close()
		txs, err := DecodeSnapshot(f)
		if err != nil {
			// A corrupt snapshot is treated the same as no snapshot.
			log.Printf("warning: corrupt snapshot %q, starting from seed data: %v", s.Path, err)
			ledger = NewSeededLedger()
		} else {
			ledger = NewLedger()
			ledger.transactions = txs
		}
	}

	ledger.AutoSave(s)
	return ledger
}

// Save writes the ledger snapshot, creating the parent directory if
// needed. It implements Snapshotter.
func (s *Store) Save(l *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("could not create snapshot directory: %w", err)
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("could not open snapshot %q for writing: %w", s.Path, err)
	}
	defer f.Close()
	return EncodeSnapshot(f, l)
}

// BackupFileName names a backup export taken on the given date.
func BackupFileName(on Date) string {
	return fmt.Sprintf("backup_%s.json", on)
}

// Export writes the ledger in the backup format, which is the snapshot
// format itself, so export and restore round-trip byte for byte.
func Export(w io.Writer, l *Ledger) error {
	return EncodeSnapshot(w, l)
}

// Restore replaces the whole ledger with the sequence read from r. On a
// FormatError the ledger is left unchanged.
func Restore(r io.Reader, l *Ledger) error {
	txs, err := DecodeSnapshot(r)
	if err != nil {
		return err
	}
	l.ReplaceAll(txs)
	return nil
}
