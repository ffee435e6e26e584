// Package keystore manages a directory of password-encrypted wallet key files.
//
// A Store loads every key file of its directory into memory at construction and
// keeps disk and memory in step: each mutating operation decrypts, transforms,
// re-encrypts, atomically rewrites the backing file and only then updates the
// in-memory wallet list.
//
// A Store is not safe for concurrent use; callers must serialize access.
package keystore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/AlexZinkM/keystore/internal/model"

	"github.com/rs/zerolog/log"
)

// Store owns a key directory and the wallets loaded from it
type Store struct {
	dir     string
	engine  Engine
	wallets []*Wallet
	now     func() time.Time
}

// Load creates dir if absent and loads every parsable, non-hidden key file in it.
// Files that fail to parse are skipped so one corrupt file never hides the others.
func Load(dir string, engine Engine) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create keystore directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore directory: %w", err)
	}

	s := &Store{
		dir:    dir,
		engine: engine,
		now:    time.Now,
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Str("file", name).Err(err).Msg("Skipping unreadable key file")
			continue
		}

		record, err := engine.UnmarshalRecord(data)
		if err != nil {
			log.Warn().Str("file", name).Err(err).Msg("Skipping malformed key file")
			continue
		}

		s.wallets = append(s.wallets, newWallet(path, record))
	}

	log.Debug().Str("dir", dir).Int("wallets", len(s.wallets)).Msg("Keystore loaded")
	return s, nil
}

// Dir returns the key directory
func (s *Store) Dir() string {
	return s.dir
}

// Wallets returns a snapshot of the loaded wallets in load/creation order
func (s *Store) Wallets() []*Wallet {
	return slices.Clone(s.wallets)
}

// Wallet looks up a wallet by ID (its key file name)
func (s *Store) Wallet(id string) (*Wallet, error) {
	for _, w := range s.wallets {
		if w.ID() == id {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrWalletNotFound, id)
}

// FindByAddress returns the first wallet holding an account with address
func (s *Store) FindByAddress(address string) (*Wallet, Account, error) {
	for _, w := range s.wallets {
		if a, ok := w.Account(address); ok {
			return w, a, nil
		}
	}
	return nil, Account{}, fmt.Errorf("%w: no account %s", model.ErrWalletNotFound, address)
}

// WalletOf resolves an account's back-reference. It fails once the wallet was deleted.
func (s *Store) WalletOf(a Account) (*Wallet, error) {
	for _, w := range s.wallets {
		if w.path == a.walletPath {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrWalletNotFound, a.WalletID())
}

// index finds w in the store by path.
// A miss means the caller passed a wallet this store never handed out.
func (s *Store) index(w *Wallet) (int, error) {
	if w == nil {
		return -1, fmt.Errorf("%w: nil wallet", model.ErrWalletNotFound)
	}
	for i, candidate := range s.wallets {
		if candidate.path == w.path {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", model.ErrWalletNotFound, w.ID())
}

// newFilePath allocates a storage location for identifier
func (s *Store) newFilePath(identifier string) string {
	return filepath.Join(s.dir, GenerateFileName(identifier, s.now(), time.UTC))
}

// writeRecord serializes record and atomically writes it to path.
// With create set, an existing file is never replaced.
func (s *Store) writeRecord(path string, record *model.KeyRecord, create bool) error {
	data, err := s.engine.MarshalRecord(record)
	if err != nil {
		return err
	}

	if create {
		if _, err := os.Lstat(path); err == nil {
			return &FileExistsError{Path: path}
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat key file: %w", err)
		}
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

// writeFileAtomic writes data to a hidden temp file next to path, syncs it and renames it
// over path. Temp files are hidden, so Load never sees a half-written key file.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0600); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return err
	}

	// Persist the rename itself; not every platform can sync a directory
	if d, derr := os.Open(dir); derr == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
