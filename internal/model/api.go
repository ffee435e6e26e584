package model

import "encoding/json"

// GenerateRequest represents request for POST /wallets/generate.
// Kind "mnemonic" (default) creates an HD wallet with accounts at Paths;
// kind "private-key" creates a single-key wallet for Chain.
type GenerateRequest struct {
	Password string   `json:"password" binding:"required"`
	Kind     Kind     `json:"kind,omitempty"`
	Chain    Chain    `json:"chain,omitempty"`
	Paths    []string `json:"paths,omitempty"`
}

// AddAccountsRequest represents request for POST /wallets/accounts
type AddAccountsRequest struct {
	WalletID string   `json:"walletId" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Paths    []string `json:"paths" binding:"required"`
}

// ImportKeyRequest represents request for POST /wallets/import/key
type ImportKeyRequest struct {
	PrivateKey string `json:"privateKey" binding:"required"` // hex
	Password   string `json:"password" binding:"required"`
	Chain      Chain  `json:"chain,omitempty"`
}

// ImportJSONRequest represents request for POST /wallets/import/json
type ImportJSONRequest struct {
	Payload     json.RawMessage `json:"payload" binding:"required" swaggertype:"object"`
	Password    string          `json:"password" binding:"required"`
	NewPassword string          `json:"newPassword" binding:"required"`
	Chain       Chain           `json:"chain,omitempty"`
}

// ImportMnemonicRequest represents request for POST /wallets/import/mnemonic
type ImportMnemonicRequest struct {
	Mnemonic   string `json:"mnemonic" binding:"required"`
	Passphrase string `json:"passphrase,omitempty"`
	Password   string `json:"password" binding:"required"`
	Path       string `json:"path,omitempty"`
}

// ExportRequest represents request for POST /wallets/export
type ExportRequest struct {
	WalletID    string `json:"walletId" binding:"required"`
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdatePasswordRequest represents request for POST /wallets/password
type UpdatePasswordRequest struct {
	WalletID    string `json:"walletId" binding:"required"`
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// DeleteRequest represents request for POST /wallets/delete
type DeleteRequest struct {
	WalletID string `json:"walletId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AccountResponse is one account of a wallet
type AccountResponse struct {
	Address        string `json:"address"`
	PublicKey      string `json:"publicKey"`
	Chain          Chain  `json:"chain"`
	DerivationPath string `json:"derivationPath,omitempty"`
}

// WalletResponse describes a stored wallet without secret material
type WalletResponse struct {
	ID       string            `json:"id"`
	Kind     Kind              `json:"kind"`
	Chain    Chain             `json:"chain,omitempty"`
	Accounts []AccountResponse `json:"accounts"`
}

// WalletsResponse represents response for GET /wallets
type WalletsResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// AccountsResponse represents response for POST /wallets/accounts
type AccountsResponse struct {
	WalletID string            `json:"walletId"`
	Accounts []AccountResponse `json:"accounts"`
}

// SuccessResponse represents response for operations without payload
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
