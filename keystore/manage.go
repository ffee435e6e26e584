package keystore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/AlexZinkM/keystore/internal/model"

	"github.com/rs/zerolog/log"
)

// UpdatePassword re-encrypts the wallet under newPassword and rewrites its file.
// Accounts are left untouched. w must have been returned by this store.
func (s *Store) UpdatePassword(w *Wallet, password, newPassword []byte) error {
	i, err := s.index(w)
	if err != nil {
		return err
	}
	owned := s.wallets[i]

	var next *model.KeyRecord
	err = s.withSecret(owned.key, password, func(secret []byte) error {
		var err error
		next, err = s.rewrap(owned.key, secret, newPassword)
		return err
	})
	if err != nil {
		return err
	}
	next.ID = owned.key.ID

	if err := s.writeRecord(owned.path, next, false); err != nil {
		return err
	}
	owned.key = next

	log.Info().Str("wallet", owned.ID()).Msg("Wallet password updated")
	return nil
}

// Delete verifies password, removes the key file and then drops the wallet from the store.
// If the file cannot be removed the wallet stays loaded. w must have been returned by this store.
func (s *Store) Delete(w *Wallet, password []byte) error {
	i, err := s.index(w)
	if err != nil {
		return err
	}
	owned := s.wallets[i]

	// Verification only: the secret itself is not used
	if err := s.withSecret(owned.key, password, func([]byte) error { return nil }); err != nil {
		return err
	}

	if err := os.Remove(owned.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete key file: %w", err)
	}
	s.wallets = slices.Delete(s.wallets, i, i+1)

	log.Info().Str("wallet", owned.ID()).Msg("Wallet deleted")
	return nil
}
