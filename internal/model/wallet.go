package model

import "encoding/json"

// KeyRecordVersion is the current on-disk key file version
const KeyRecordVersion = 1

// Kind discriminates what secret a key record holds
type Kind string

const (
	// KindPrivateKey is a single-key wallet: the secret is one private key
	KindPrivateKey Kind = "private-key"
	// KindMnemonic is an HD wallet: the secret is a mnemonic seed phrase
	KindMnemonic Kind = "mnemonic"
)

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	return k == KindPrivateKey || k == KindMnemonic
}

// KeyRecord represents the key file structure.
// Crypto is owned by the encryption engine and passed through untouched.
type KeyRecord struct {
	Version        int             `json:"version"`
	ID             string          `json:"id"`
	Type           Kind            `json:"type"`
	Crypto         json.RawMessage `json:"crypto"`
	Chain          Chain           `json:"chain,omitempty"`      // private-key only
	Passphrase     string          `json:"passphrase,omitempty"` // mnemonic only
	ActiveAccounts []ActiveAccount `json:"activeAccounts"`
}

// ActiveAccount is the persisted descriptor of one realized account
type ActiveAccount struct {
	Chain          Chain  `json:"chain"`
	Address        string `json:"address"`
	PublicKey      string `json:"publicKey"`
	DerivationPath string `json:"derivationPath,omitempty"`
}

// ResolvedChain returns the record's chain, falling back to DefaultChain when none was recorded.
func (r *KeyRecord) ResolvedChain() Chain {
	if r.Chain == "" {
		return DefaultChain
	}
	return r.Chain
}

// Clone returns a deep copy of the record
func (r *KeyRecord) Clone() *KeyRecord {
	c := *r
	c.Crypto = append(json.RawMessage(nil), r.Crypto...)
	c.ActiveAccounts = append([]ActiveAccount(nil), r.ActiveAccounts...)
	return &c
}
