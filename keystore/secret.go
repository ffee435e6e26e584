package keystore

import (
	"fmt"

	"github.com/AlexZinkM/keystore/internal/common"
	"github.com/AlexZinkM/keystore/internal/model"
)

// withSecret decrypts record and hands the secret to fn.
// The secret is cleared on every exit path, including errors and panics in fn.
func (s *Store) withSecret(record *model.KeyRecord, password []byte, fn func(secret []byte) error) error {
	secret, err := s.engine.Decrypt(record, password)
	if err != nil {
		return err
	}
	defer clear(secret)

	return fn(secret)
}

// rewrap re-encrypts an already decrypted secret as a same-kind record under newPassword.
// Active accounts are carried over; the record gets a fresh ID.
func (s *Store) rewrap(record *model.KeyRecord, secret, newPassword []byte) (*model.KeyRecord, error) {
	var next *model.KeyRecord

	switch record.Type {
	case model.KindPrivateKey:
		chain := record.ResolvedChain()
		key, err := s.engine.ParsePrivateKey(secret, chain)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		defer clear(key)

		next, err = s.engine.EncryptPrivateKey(key, newPassword, chain)
		if err != nil {
			return nil, err
		}

	case model.KindMnemonic:
		mnemonic, err := mnemonicFromSecret(secret)
		if err != nil {
			return nil, err
		}

		next, err = s.engine.EncryptMnemonic(mnemonic, record.Passphrase, newPassword)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: unknown record type %q", model.ErrCorrupt, record.Type)
	}

	next.ActiveAccounts = append([]model.ActiveAccount{}, record.ActiveAccounts...)
	return next, nil
}

// mnemonicFromSecret decodes decrypted mnemonic bytes, dropping one trailing NUL pad
func mnemonicFromSecret(secret []byte) (string, error) {
	if !common.IsASCII(secret) {
		return "", fmt.Errorf("%w: decrypted secret is not ASCII", model.ErrInvalidMnemonic)
	}
	return common.TrimNullPadding(string(secret)), nil
}
