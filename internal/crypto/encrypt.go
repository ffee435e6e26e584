package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/AlexZinkM/keystore/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for key files
	// Security is prioritized over performance
	//
	// N=2^18 (~256MB RAM, 0.5-2s) works on phones and desktops alike while
	// keeping brute-force attacks extremely expensive.
	scryptN      = 1 << 18
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12

	// light parameters for development and tests only
	lightScryptN = 1 << 12
	lightScryptP = 6

	cipherAES256GCM = "aes-256-gcm"
	kdfScrypt       = "scrypt"
)

// cryptoParams is the engine-owned "crypto" object of a key record
type cryptoParams struct {
	Cipher     string       `json:"cipher"`
	CipherText string       `json:"cipherText"`
	Nonce      string       `json:"nonce"`
	KDF        string       `json:"kdf"`
	KDFParams  scryptParams `json:"kdfParams"`
}

type scryptParams struct {
	N      int    `json:"n"`
	R      int    `json:"r"`
	P      int    `json:"p"`
	KeyLen int    `json:"dkLen"`
	Salt   string `json:"salt"`
}

// EncryptPrivateKey wraps a private key for chain into a new single-key record.
// password must be []byte for security (caller should zero it after use)
func (e *Engine) EncryptPrivateKey(key, password []byte, chain model.Chain) (*model.KeyRecord, error) {
	normalized, err := e.ParsePrivateKey(key, chain)
	if err != nil {
		return nil, err
	}
	defer clear(normalized)

	blob, err := e.seal(normalized, password)
	if err != nil {
		return nil, err
	}

	return &model.KeyRecord{
		Version:        model.KeyRecordVersion,
		ID:             uuid.NewString(),
		Type:           model.KindPrivateKey,
		Crypto:         blob,
		Chain:          chain,
		ActiveAccounts: []model.ActiveAccount{},
	}, nil
}

// EncryptMnemonic wraps a mnemonic and its passphrase into a new HD record
func (e *Engine) EncryptMnemonic(mnemonic, passphrase string, password []byte) (*model.KeyRecord, error) {
	// Collapse whitespace so the stored phrase seeds identically to the validated one
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !e.ValidateMnemonic(mnemonic) {
		return nil, model.ErrInvalidMnemonic
	}

	secret := []byte(mnemonic)
	defer clear(secret)

	blob, err := e.seal(secret, password)
	if err != nil {
		return nil, err
	}

	return &model.KeyRecord{
		Version:        model.KeyRecordVersion,
		ID:             uuid.NewString(),
		Type:           model.KindMnemonic,
		Crypto:         blob,
		Passphrase:     passphrase,
		ActiveAccounts: []model.ActiveAccount{},
	}, nil
}

// seal encrypts secret under password and returns the serialized crypto params
func (e *Engine) seal(secret, password []byte) (json.RawMessage, error) {
	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Derive key from password
	key, err := scrypt.Key(password, salt, e.scryptN, e.scryptR, e.scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
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

	// Encrypt
	ciphertext := aesGCM.Seal(nil, nonce, secret, nil)

	params := cryptoParams{
		Cipher:     cipherAES256GCM,
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		KDF:        kdfScrypt,
		KDFParams: scryptParams{
			N:      e.scryptN,
			R:      e.scryptR,
			P:      e.scryptP,
			KeyLen: scryptKeyLen,
			Salt:   base64.StdEncoding.EncodeToString(salt),
		},
	}

	blob, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal crypto params: %w", err)
	}
	return blob, nil
}

// MarshalRecord serializes a key record into the on-disk JSON form
func (e *Engine) MarshalRecord(record *model.KeyRecord) ([]byte, error) {
	out := *record
	if out.ActiveAccounts == nil {
		out.ActiveAccounts = []model.ActiveAccount{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key record: %w", err)
	}
	return data, nil
}
