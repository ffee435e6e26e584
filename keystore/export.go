package keystore

import (
	"fmt"

	"github.com/AlexZinkM/keystore/internal/model"
)

// ExportJSON re-encrypts the wallet's secret under newPassword and returns the new
// record serialized. The wallet itself is not modified.
func (s *Store) ExportJSON(w *Wallet, password, newPassword []byte) ([]byte, error) {
	var data []byte
	err := s.withSecret(w.key, password, func(secret []byte) error {
		record, err := s.rewrap(w.key, secret, newPassword)
		if err != nil {
			return err
		}

		data, err = s.engine.MarshalRecord(record)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ExportPrivateKey returns the decrypted secret verbatim.
// The caller owns the returned slice and must clear it.
func (s *Store) ExportPrivateKey(w *Wallet, password []byte) ([]byte, error) {
	return s.engine.Decrypt(w.key, password)
}

// ExportMnemonic returns the phrase of an HD wallet
func (s *Store) ExportMnemonic(w *Wallet, password []byte) (string, error) {
	if w.key.Type != model.KindMnemonic {
		return "", fmt.Errorf("%w: not an HD wallet", model.ErrInvalidMnemonic)
	}

	var mnemonic string
	err := s.withSecret(w.key, password, func(secret []byte) error {
		var err error
		mnemonic, err = mnemonicFromSecret(secret)
		return err
	})
	if err != nil {
		return "", err
	}
	return mnemonic, nil
}

// ExportAccountPrivateKey returns the private key behind one account of w.
// For HD wallets the key is derived at the account's path.
// The caller owns the returned slice and must clear it.
func (s *Store) ExportAccountPrivateKey(w *Wallet, a Account, password []byte) ([]byte, error) {
	if a.walletPath != w.path {
		return nil, fmt.Errorf("%w: account %s does not belong to %s", model.ErrWalletNotFound, a.Address, w.ID())
	}

	if w.key.Type == model.KindPrivateKey {
		return s.ExportPrivateKey(w, password)
	}

	path, err := model.ParseDerivationPath(a.DerivationPath)
	if err != nil {
		return nil, err
	}
	return s.engine.DerivePrivateKey(w.key, password, path)
}
