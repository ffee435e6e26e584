// Package crypto is the key-derivation and encryption engine behind the keystore:
// scrypt + AES-256-GCM key records, BIP39 mnemonics, BIP32/SLIP-10 derivation
// and per-chain key parsing.
package crypto

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// MnemonicEntropyBits is the entropy size for generated 12-word mnemonics
const MnemonicEntropyBits = 128

// Engine encrypts key records and derives accounts from them
type Engine struct {
	scryptN int
	scryptR int
	scryptP int
}

// Option configures an Engine
type Option func(*Engine)

// WithScryptParams overrides the scrypt cost parameters used for new records
func WithScryptParams(n, r, p int) Option {
	return func(e *Engine) {
		e.scryptN = n
		e.scryptR = r
		e.scryptP = p
	}
}

// WithLightScrypt selects cheap scrypt parameters. Never use for real funds.
func WithLightScrypt() Option {
	return WithScryptParams(lightScryptN, scryptR, lightScryptP)
}

// NewEngine creates an engine with the standard scrypt parameters
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		scryptN: scryptN,
		scryptR: scryptR,
		scryptP: scryptP,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateMnemonic creates a new BIP-39 mnemonic
func (e *Engine) GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", errors.Wrap(err, "generate entropy")
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "generate mnemonic")
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func (e *Engine) ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}
