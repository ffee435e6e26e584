package keystore

import (
	"path/filepath"
	"strings"

	"github.com/AlexZinkM/keystore/internal/model"
)

// Wallet groups one key record, the file backing it and its realized accounts.
// Two wallets are the same wallet iff they share a path.
type Wallet struct {
	path     string
	key      *model.KeyRecord
	accounts []Account
}

// Account is one derived public identity of a wallet
type Account struct {
	Address        string
	PublicKey      string
	Chain          model.Chain
	DerivationPath string // empty for single-key wallets

	// walletPath refers back to the owning wallet; resolve it with Store.WalletOf
	walletPath string
}

func newWallet(path string, record *model.KeyRecord) *Wallet {
	w := &Wallet{path: path, key: record}
	for _, descriptor := range record.ActiveAccounts {
		w.accounts = append(w.accounts, newAccount(descriptor, path))
	}
	return w
}

func newAccount(descriptor model.ActiveAccount, walletPath string) Account {
	return Account{
		Address:        descriptor.Address,
		PublicKey:      descriptor.PublicKey,
		Chain:          descriptor.Chain,
		DerivationPath: descriptor.DerivationPath,
		walletPath:     walletPath,
	}
}

// ID returns the key file name, unique within a store
func (w *Wallet) ID() string {
	return filepath.Base(w.path)
}

// Path returns the key file location
func (w *Wallet) Path() string {
	return w.path
}

// Kind reports whether the wallet holds a private key or a mnemonic
func (w *Wallet) Kind() model.Kind {
	return w.key.Type
}

// Chain returns the chain of a single-key wallet, or "" for HD wallets
func (w *Wallet) Chain() model.Chain {
	if w.key.Type != model.KindPrivateKey {
		return ""
	}
	return w.key.ResolvedChain()
}

// Accounts returns the realized accounts in derivation order
func (w *Wallet) Accounts() []Account {
	return append([]Account(nil), w.accounts...)
}

// Account looks up an account by address
func (w *Wallet) Account(address string) (Account, bool) {
	for _, a := range w.accounts {
		if sameAddress(a.Address, address) {
			return a, true
		}
	}
	return Account{}, false
}

// Record returns a copy of the wallet's key record
func (w *Wallet) Record() *model.KeyRecord {
	return w.key.Clone()
}

// WalletID returns the ID of the wallet the account belongs to
func (a Account) WalletID() string {
	return filepath.Base(a.walletPath)
}

// sameAddress compares hex addresses case-insensitively and everything else exactly
func sameAddress(a, b string) bool {
	if strings.HasPrefix(a, "0x") && strings.HasPrefix(b, "0x") {
		return strings.EqualFold(a, b)
	}
	return a == b
}
