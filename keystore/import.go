package keystore

import (
	"fmt"

	"github.com/AlexZinkM/keystore/internal/model"
)

// ImportJSON imports a single-key record exported by another keystore.
// The record is decrypted with password and stored under newPassword.
// An empty chain keeps the record's own chain. HD records are rejected with ErrInvalidKey.
func (s *Store) ImportJSON(data, password, newPassword []byte, chain model.Chain) (*Wallet, error) {
	record, err := s.engine.UnmarshalRecord(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key record: %w", err)
	}
	if chain == "" {
		chain = record.ResolvedChain()
	}

	var w *Wallet
	err = s.withSecret(record, password, func(secret []byte) error {
		key, err := s.engine.ParsePrivateKey(secret, chain)
		if err != nil {
			return fmt.Errorf("failed to parse private key: %w", err)
		}
		defer clear(key)

		w, err = s.ImportPrivateKey(key, newPassword, chain)
		return err
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ImportPrivateKey stores a raw private key for chain.
// The key file is named after the key's address.
func (s *Store) ImportPrivateKey(key, password []byte, chain model.Chain) (*Wallet, error) {
	record, err := s.engine.EncryptPrivateKey(key, password, chain)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt private key: %w", err)
	}

	return s.addWallet(record, password, nil)
}

// ImportMnemonic stores an HD wallet from an existing phrase and derives the account at path.
// The phrase is validated before anything is built, so a malformed one writes nothing.
func (s *Store) ImportMnemonic(mnemonic, passphrase string, password []byte, path model.DerivationPath) (*Wallet, error) {
	if !s.engine.ValidateMnemonic(mnemonic) {
		return nil, model.ErrInvalidMnemonic
	}

	record, err := s.engine.EncryptMnemonic(mnemonic, passphrase, password)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt mnemonic: %w", err)
	}

	return s.addWallet(record, password, []model.DerivationPath{path})
}
