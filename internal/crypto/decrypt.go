package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/AlexZinkM/keystore/internal/model"

	"golang.org/x/crypto/scrypt"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decrypt opens the secret held by record.
// The returned slice belongs to the caller, who must clear it after use.
func (e *Engine) Decrypt(record *model.KeyRecord, password []byte) ([]byte, error) {
	if record == nil || len(record.Crypto) == 0 {
		return nil, fmt.Errorf("%w: missing crypto params", model.ErrCorrupt)
	}

	var params cryptoParams
	if err := json.Unmarshal(record.Crypto, &params); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal crypto params: %w", model.ErrCorrupt, err)
	}
	if params.Cipher != cipherAES256GCM || params.KDF != kdfScrypt {
		return nil, fmt.Errorf("%w: unsupported cipher %q / kdf %q", model.ErrCorrupt, params.Cipher, params.KDF)
	}
	if params.KDFParams.KeyLen != scryptKeyLen {
		return nil, fmt.Errorf("%w: unsupported key length %d", model.ErrCorrupt, params.KDFParams.KeyLen)
	}

	// Decode salt and nonce
	salt, err := base64.StdEncoding.DecodeString(params.KDFParams.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode salt: %w", model.ErrCorrupt, err)
	}

	nonce, err := base64.StdEncoding.DecodeString(params.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode nonce: %w", model.ErrCorrupt, err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(params.CipherText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode ciphertext: %w", model.ErrCorrupt, err)
	}

	// Derive key from password
	key, err := scrypt.Key(password, salt, params.KDFParams.N, params.KDFParams.R, params.KDFParams.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to derive key: %w", model.ErrCorrupt, err)
	}
	defer clear(key)

	// Create AES cipher
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	// Create GCM
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	if len(nonce) != aesGCM.NonceSize() {
		return nil, fmt.Errorf("%w: nonce must be %d bytes", model.ErrCorrupt, aesGCM.NonceSize())
	}

	// Decrypt
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, model.ErrWrongPassword
	}

	return plaintext, nil
}

// UnmarshalRecord parses key file bytes into a key record and checks its shape
func (e *Engine) UnmarshalRecord(data []byte) (*model.KeyRecord, error) {
	// Skip UTF-8 BOM if present
	data = bytes.TrimPrefix(data, utf8BOM)

	var record model.KeyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal key record: %w", model.ErrCorrupt, err)
	}

	if record.Version != model.KeyRecordVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", model.ErrCorrupt, record.Version)
	}
	if !record.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", model.ErrCorrupt, record.Type)
	}
	if len(record.Crypto) == 0 || bytes.Equal(record.Crypto, []byte("null")) {
		return nil, fmt.Errorf("%w: missing crypto params", model.ErrCorrupt)
	}
	if record.Type == model.KindPrivateKey && record.Chain != "" && !record.Chain.Supported() {
		return nil, fmt.Errorf("%w: %w %q", model.ErrCorrupt, model.ErrUnsupportedChain, record.Chain)
	}
	for i, account := range record.ActiveAccounts {
		if account.Address == "" || !account.Chain.Supported() {
			return nil, fmt.Errorf("%w: malformed active account %d", model.ErrCorrupt, i)
		}
	}

	if record.ActiveAccounts == nil {
		record.ActiveAccounts = []model.ActiveAccount{}
	}
	return &record, nil
}
