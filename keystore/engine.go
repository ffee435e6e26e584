package keystore

import "github.com/AlexZinkM/keystore/internal/model"

// Engine is the key-derivation and encryption collaborator the store relies on.
// Secrets returned by Decrypt, GeneratePrivateKey, ParsePrivateKey and
// DerivePrivateKey are owned by the caller, who must clear them.
type Engine interface {
	GenerateMnemonic() (string, error)
	ValidateMnemonic(mnemonic string) bool
	GeneratePrivateKey(chain model.Chain) ([]byte, error)
	ParsePrivateKey(key []byte, chain model.Chain) ([]byte, error)

	EncryptPrivateKey(key, password []byte, chain model.Chain) (*model.KeyRecord, error)
	EncryptMnemonic(mnemonic, passphrase string, password []byte) (*model.KeyRecord, error)
	Decrypt(record *model.KeyRecord, password []byte) ([]byte, error)

	DeriveAccounts(record *model.KeyRecord, password []byte, paths []model.DerivationPath) ([]model.ActiveAccount, error)
	DerivePrivateKey(record *model.KeyRecord, password []byte, path model.DerivationPath) ([]byte, error)

	MarshalRecord(record *model.KeyRecord) ([]byte, error)
	UnmarshalRecord(data []byte) (*model.KeyRecord, error)
}
