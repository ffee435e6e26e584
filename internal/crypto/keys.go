package crypto

import (
	"crypto/ed25519"
	"crypto/subtle"
	"encoding/hex"

	"github.com/AlexZinkM/keystore/internal/model"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// GeneratePrivateKey creates a fresh private key for chain
func (e *Engine) GeneratePrivateKey(chain model.Chain) ([]byte, error) {
	switch chain {
	case model.ChainEthereum:
		key, err := ethcrypto.GenerateKey()
		if err != nil {
			return nil, errors.Wrap(err, "generate secp256k1 key")
		}
		return ethcrypto.FromECDSA(key), nil
	case model.ChainBitcoin:
		key, err := btcec.NewPrivateKey()
		if err != nil {
			return nil, errors.Wrap(err, "generate secp256k1 key")
		}
		defer key.Zero()
		return key.Serialize(), nil
	case model.ChainSolana:
		wallet := solana.NewWallet()
		defer clear(wallet.PrivateKey)
		return append([]byte(nil), wallet.PrivateKey...), nil
	default:
		return nil, errors.Wrapf(model.ErrUnsupportedChain, "%q", chain)
	}
}

// ParsePrivateKey checks that key is a private key for chain and returns a normalized copy.
// secp256k1 keys are 32-byte scalars; ed25519 keys are accepted as a 32-byte seed or a
// 64-byte seed||public key pair and always returned in the 64-byte form.
func (e *Engine) ParsePrivateKey(key []byte, chain model.Chain) ([]byte, error) {
	if !chain.Supported() {
		return nil, errors.Wrapf(model.ErrUnsupportedChain, "%q", chain)
	}

	switch chain.Curve() {
	case model.CurveSecp256k1:
		if len(key) != 32 {
			return nil, errors.Wrapf(model.ErrInvalidKey, "secp256k1 key must be 32 bytes, got %d", len(key))
		}
		if _, err := ethcrypto.ToECDSA(key); err != nil {
			return nil, errors.Wrap(model.ErrInvalidKey, err.Error())
		}
		return append([]byte(nil), key...), nil
	case model.CurveEd25519:
		switch len(key) {
		case ed25519.SeedSize:
			return []byte(ed25519.NewKeyFromSeed(key)), nil
		case ed25519.PrivateKeySize:
			expanded := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
			defer clear(expanded)
			if subtle.ConstantTimeCompare(expanded, key) != 1 {
				return nil, errors.Wrap(model.ErrInvalidKey, "ed25519 public half does not match seed")
			}
			return append([]byte(nil), key...), nil
		default:
			return nil, errors.Wrapf(model.ErrInvalidKey, "ed25519 key must be 32 or 64 bytes, got %d", len(key))
		}
	default:
		return nil, errors.Wrapf(model.ErrUnsupportedChain, "%q", chain)
	}
}

// accountFromPrivateKey computes the public identity of a normalized private key
func accountFromPrivateKey(key []byte, chain model.Chain, path string) (model.ActiveAccount, error) {
	account := model.ActiveAccount{Chain: chain, DerivationPath: path}

	switch chain {
	case model.ChainEthereum:
		priv, err := ethcrypto.ToECDSA(key)
		if err != nil {
			return model.ActiveAccount{}, errors.Wrap(model.ErrInvalidKey, err.Error())
		}
		account.Address = ethcrypto.PubkeyToAddress(priv.PublicKey).Hex()
		account.PublicKey = hex.EncodeToString(ethcrypto.CompressPubkey(&priv.PublicKey))
		priv.D.SetInt64(0)
	case model.ChainBitcoin:
		priv, pub := btcec.PrivKeyFromBytes(key)
		priv.Zero()
		compressed := pub.SerializeCompressed()
		address, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(compressed), &chaincfg.MainNetParams)
		if err != nil {
			return model.ActiveAccount{}, errors.Wrap(err, "encode bitcoin address")
		}
		account.Address = address.EncodeAddress()
		account.PublicKey = hex.EncodeToString(compressed)
	case model.ChainSolana:
		if len(key) != ed25519.PrivateKeySize {
			return model.ActiveAccount{}, errors.Wrap(model.ErrInvalidKey, "ed25519 key must be 64 bytes")
		}
		pub := solana.PrivateKey(key).PublicKey()
		account.Address = pub.String()
		account.PublicKey = hex.EncodeToString(pub[:])
	default:
		return model.ActiveAccount{}, errors.Wrapf(model.ErrUnsupportedChain, "%q", chain)
	}

	return account, nil
}
