package model

import "errors"

var (
	// ErrInvalidKey: decrypted bytes are not a private key where one was expected
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidMnemonic: bytes are not a valid mnemonic, or the wallet is not an HD wallet
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrWrongPassword: decryption failed authentication
	ErrWrongPassword = errors.New("invalid password")

	// ErrCorrupt: key record or its crypto parameters cannot be decoded
	ErrCorrupt = errors.New("corrupt key record")

	// ErrWalletNotFound: the store does not own the given wallet.
	// Callers must only pass wallets previously returned by the same store.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrKindMismatch: operation not supported by this wallet kind
	ErrKindMismatch = errors.New("wallet kind mismatch")

	// ErrUnsupportedChain: chain name or coin type has no key scheme
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrInvalidDerivationPath: path is not of the form m/44'/60'/0'/0/0
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
)

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
