package coffee

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ErrLocked is returned by LockLedger when another process holds the lock.
var ErrLocked = errors.New("ledger is locked by another process")

// isJSONL tells the file format from the file extension. Anything that is not
// .jsonl is read and written as CSV.
func isJSONL(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".jsonl")
}

// OpenLedger loads the ledger stored in a file.
//
// A missing or empty file is an empty ledger. A file that cannot be decoded
// is an error: it is never silently replaced by an empty ledger.
func OpenLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("ledger file %q does not exist, starting with an empty ledger", path)
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := decodeFile(f, path)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return l, nil
}

func decodeFile(r io.Reader, path string) (*Ledger, error) {
	if isJSONL(path) {
		return DecodeLedger(r)
	}
	t, err := DecodeCSV(r)
	if err != nil {
		return nil, err
	}
	return LoadLedger(t)
}

// SaveLedger saves a ledger to a file, in the format given by its extension.
//
// The ledger is written to a temporary file first and renamed over path, so
// that a failure never leaves a truncated ledger behind.
func SaveLedger(path string, l *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	_ = tmp.Chmod(0644)

	if isJSONL(path) {
		err = EncodeLedger(tmp, l)
	} else {
		err = EncodeCSV(tmp, Serialize(l))
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing ledger file %q: %w", path, err)
	}
	return nil
}

// LockLedger takes the exclusive lock of a ledger file for one
// load-mutate-store cycle, and returns the function that releases it.
//
// The lock is a "<path>.lock" file created exclusively. It returns ErrLocked
// if the lock file already exists.
func LockLedger(path string) (unlock func(), err error) {
	lockPath := path + ".lock"
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%w: remove %q if no other coffee command is running", ErrLocked, lockPath)
	}
	if err != nil {
		return nil, fmt.Errorf("could not lock ledger %q: %w", path, err)
	}
	fmt.Fprintf(f, "%d\n", os.Getpid())
	f.Close()

	return func() {
		if err := os.Remove(lockPath); err != nil {
			log.Printf("could not release lock %q: %v", lockPath, err)
		}
	}, nil
}
