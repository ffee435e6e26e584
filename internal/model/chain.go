package model

import (
	"fmt"
	"strings"
)

// Chain identifies the blockchain an account belongs to
type Chain string

const (
	ChainEthereum Chain = "ethereum"
	ChainBitcoin  Chain = "bitcoin"
	ChainSolana   Chain = "solana"
)

// DefaultChain is used for single-key records that carry no chain identifier
const DefaultChain = ChainEthereum

// Curve is the signature curve a chain's keys live on
type Curve string

const (
	CurveSecp256k1 Curve = "secp256k1"
	CurveEd25519   Curve = "ed25519"
)

type chainInfo struct {
	coinType    uint32
	curve       Curve
	defaultPath string
}

var chains = map[Chain]chainInfo{
	ChainEthereum: {coinType: 60, curve: CurveSecp256k1, defaultPath: "m/44'/60'/0'/0/0"},
	ChainBitcoin:  {coinType: 0, curve: CurveSecp256k1, defaultPath: "m/44'/0'/0'/0/0"},
	ChainSolana:   {coinType: 501, curve: CurveEd25519, defaultPath: "m/44'/501'/0'/0'"},
}

// ParseChain parses a chain name (case-insensitive)
func ParseChain(s string) (Chain, error) {
	c := Chain(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := chains[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedChain, s)
	}
	return c, nil
}

// Chains lists supported chains
func Chains() []Chain {
	return []Chain{ChainEthereum, ChainBitcoin, ChainSolana}
}

// CoinType returns the SLIP-44 coin type
func (c Chain) CoinType() uint32 {
	return chains[c].coinType
}

// Curve returns the curve used by the chain
func (c Chain) Curve() Curve {
	return chains[c].curve
}

// DefaultDerivationPath returns the first BIP44 account path for the chain
func (c Chain) DefaultDerivationPath() DerivationPath {
	p, err := ParseDerivationPath(chains[c].defaultPath)
	if err != nil {
		panic(err)
	}
	return p
}

// Supported reports whether c is a known chain
func (c Chain) Supported() bool {
	_, ok := chains[c]
	return ok
}

// ChainForCoinType maps a SLIP-44 coin type back to a chain
func ChainForCoinType(coinType uint32) (Chain, bool) {
	for c, info := range chains {
		if info.coinType == coinType {
			return c, true
		}
	}
	return "", false
}
