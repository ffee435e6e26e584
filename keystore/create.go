package keystore

import (
	"fmt"

	"github.com/AlexZinkM/keystore/internal/common"
	"github.com/AlexZinkM/keystore/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CreateWallet generates a new HD wallet and derives an account for every path.
// The key file is written once, after derivation, so it always lists the derived accounts.
// password must be []byte for security (caller should zero it after use)
func (s *Store) CreateWallet(password []byte, paths []model.DerivationPath) (*Wallet, error) {
	mnemonic, err := s.engine.GenerateMnemonic()
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	record, err := s.engine.EncryptMnemonic(mnemonic, "", password)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt mnemonic: %w", err)
	}

	return s.addWallet(record, password, paths)
}

// CreateSingleKeyWallet generates a fresh private key for chain and stores it
func (s *Store) CreateSingleKeyWallet(password []byte, chain model.Chain) (*Wallet, error) {
	key, err := s.engine.GeneratePrivateKey(chain)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	defer clear(key)

	return s.ImportPrivateKey(key, password, chain)
}

// AddAccounts derives accounts at paths for an HD wallet, persists them and returns
// only the new accounts. Paths are not deduplicated against existing accounts.
func (s *Store) AddAccounts(w *Wallet, paths []model.DerivationPath, password []byte) ([]Account, error) {
	i, err := s.index(w)
	if err != nil {
		return nil, err
	}
	owned := s.wallets[i]

	if owned.key.Type != model.KindMnemonic {
		return nil, fmt.Errorf("%w: accounts can only be added to HD wallets", model.ErrKindMismatch)
	}

	derived, err := s.engine.DeriveAccounts(owned.key, password, paths)
	if err != nil {
		return nil, err
	}
	if len(derived) == 0 {
		return []Account{}, nil
	}

	added, err := s.commitAccounts(owned, derived, false)
	if err != nil {
		return nil, err
	}

	log.Info().Str("wallet", owned.ID()).Int("accounts", len(added)).Msg("Accounts added")
	return added, nil
}

// addWallet derives the initial accounts of a new record, writes it under a fresh name
// and registers the wallet. Single-key wallets are named after their address, HD wallets
// after a random identifier.
func (s *Store) addWallet(record *model.KeyRecord, password []byte, paths []model.DerivationPath) (*Wallet, error) {
	derived, err := s.engine.DeriveAccounts(record, password, paths)
	if err != nil {
		return nil, err
	}

	identifier := uuid.NewString()
	if record.Type == model.KindPrivateKey {
		if len(derived) != 1 {
			return nil, fmt.Errorf("%w: expected one account, derived %d", model.ErrInvalidKey, len(derived))
		}
		identifier = common.AddressIdentifier(derived[0].Address)
	}

	w := &Wallet{path: s.newFilePath(identifier), key: record}
	if _, err := s.commitAccounts(w, derived, true); err != nil {
		return nil, err
	}
	s.wallets = append(s.wallets, w)

	log.Info().Str("wallet", w.ID()).Str("type", string(record.Type)).Msg("Wallet stored")
	return w, nil
}

// commitAccounts is the single place that appends derived accounts to both the key
// record and the wallet. The updated record is written first; memory changes only
// after the write succeeded, so the two lists never drift apart.
func (s *Store) commitAccounts(w *Wallet, derived []model.ActiveAccount, create bool) ([]Account, error) {
	next := w.key.Clone()
	next.ActiveAccounts = append(next.ActiveAccounts, derived...)

	if err := s.writeRecord(w.path, next, create); err != nil {
		return nil, err
	}

	added := make([]Account, 0, len(derived))
	for _, descriptor := range derived {
		added = append(added, newAccount(descriptor, w.path))
	}

	w.key = next
	w.accounts = append(w.accounts, added...)
	return added, nil
}
