package crypto

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/AlexZinkM/keystore/internal/common"
	"github.com/AlexZinkM/keystore/internal/model"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// slip10Ed25519Key is the HMAC key of the SLIP-10 ed25519 master node
var slip10Ed25519Key = []byte("ed25519 seed")

// DeriveAccounts realizes the accounts of record.
// A private-key record always yields its single implicit account and ignores paths;
// a mnemonic record yields one account per path, in order.
func (e *Engine) DeriveAccounts(record *model.KeyRecord, password []byte, paths []model.DerivationPath) ([]model.ActiveAccount, error) {
	secret, err := e.Decrypt(record, password)
	if err != nil {
		return nil, err
	}
	defer clear(secret)

	switch record.Type {
	case model.KindPrivateKey:
		account, err := accountFromPrivateKey(secret, record.ResolvedChain(), "")
		if err != nil {
			return nil, err
		}
		return []model.ActiveAccount{account}, nil

	case model.KindMnemonic:
		seed, err := seedFromMnemonic(secret, record.Passphrase)
		if err != nil {
			return nil, err
		}
		defer clear(seed)

		accounts := make([]model.ActiveAccount, 0, len(paths))
		for _, path := range paths {
			key, chain, err := deriveKey(seed, path)
			if err != nil {
				return nil, err
			}
			account, err := accountFromPrivateKey(key, chain, path.String())
			clear(key)
			if err != nil {
				return nil, err
			}
			accounts = append(accounts, account)
		}
		return accounts, nil

	default:
		return nil, errors.Wrapf(model.ErrCorrupt, "unknown record type %q", record.Type)
	}
}

// DerivePrivateKey returns the private key at path of an HD record.
// The caller must clear the returned slice.
func (e *Engine) DerivePrivateKey(record *model.KeyRecord, password []byte, path model.DerivationPath) ([]byte, error) {
	if record.Type != model.KindMnemonic {
		return nil, errors.Wrap(model.ErrKindMismatch, "private key derivation requires an HD wallet")
	}

	secret, err := e.Decrypt(record, password)
	if err != nil {
		return nil, err
	}
	defer clear(secret)

	seed, err := seedFromMnemonic(secret, record.Passphrase)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	key, _, err := deriveKey(seed, path)
	return key, err
}

// seedFromMnemonic turns decrypted mnemonic bytes into a BIP-39 seed
func seedFromMnemonic(secret []byte, passphrase string) ([]byte, error) {
	if !common.IsASCII(secret) {
		return nil, errors.Wrap(model.ErrInvalidMnemonic, "mnemonic is not ASCII")
	}

	seed, err := bip39.NewSeedWithErrorChecking(common.TrimNullPadding(string(secret)), passphrase)
	if err != nil {
		return nil, errors.Wrap(model.ErrInvalidMnemonic, err.Error())
	}
	return seed, nil
}

// deriveKey derives the normalized private key at path; the chain comes from the coin type
func deriveKey(seed []byte, path model.DerivationPath) ([]byte, model.Chain, error) {
	chain, err := path.Chain()
	if err != nil {
		return nil, "", err
	}

	switch chain.Curve() {
	case model.CurveSecp256k1:
		key, err := deriveSecp256k1(seed, path)
		return key, chain, err
	case model.CurveEd25519:
		key, err := deriveEd25519(seed, path)
		return key, chain, err
	default:
		return nil, "", errors.Wrapf(model.ErrUnsupportedChain, "%q", chain)
	}
}

// deriveSecp256k1 walks a BIP-32 path from the master node
func deriveSecp256k1(seed []byte, path model.DerivationPath) ([]byte, error) {
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	for i, index := range path.Indices() {
		child, err := key.Derive(index)
		key.Zero()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive at index %d (%d)", i, index)
		}
		key = child
	}
	defer key.Zero()

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract private key")
	}
	defer priv.Zero()

	return priv.Serialize(), nil
}

// deriveEd25519 walks a SLIP-10 path; ed25519 only supports hardened children
func deriveEd25519(seed []byte, path model.DerivationPath) ([]byte, error) {
	indices := path.Indices()
	for _, index := range indices {
		if index < model.HardenedOffset {
			return nil, errors.Wrapf(model.ErrInvalidDerivationPath, "ed25519 requires hardened components: %s", path)
		}
	}

	mac := hmac.New(sha512.New, slip10Ed25519Key)
	mac.Write(seed)
	node := mac.Sum(nil)
	defer func() { clear(node) }()

	data := make([]byte, 0, 1+32+4)
	for _, index := range indices {
		// 0x00 || parent key || index (big endian)
		data = append(data[:0], 0x00)
		data = append(data, node[:32]...)
		data = binary.BigEndian.AppendUint32(data, index)

		mac := hmac.New(sha512.New, node[32:])
		mac.Write(data)
		child := mac.Sum(nil)
		clear(node)
		node = child
	}
	clear(data)

	return []byte(ed25519.NewKeyFromSeed(node[:32])), nil
}
