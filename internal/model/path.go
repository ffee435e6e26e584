package model

import (
	"fmt"
	"strconv"
	"strings"
)

// HardenedOffset is added to an index to mark it hardened
const HardenedOffset uint32 = 0x80000000

// DerivationPath is a parsed BIP32 derivation path (e.g. "m/44'/60'/0'/0/0")
type DerivationPath struct {
	indices []uint32
}

// ParseDerivationPath parses a path; ' or h marks a hardened component.
func ParseDerivationPath(path string) (DerivationPath, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DerivationPath{}, fmt.Errorf("%w: empty path", ErrInvalidDerivationPath)
	}

	parts := strings.Split(path, "/")
	if parts[0] != "m" {
		return DerivationPath{}, fmt.Errorf("%w: %q must start with m", ErrInvalidDerivationPath, path)
	}
	parts = parts[1:]

	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		hardened := false
		if strings.HasSuffix(part, "'") {
			hardened = true
			part = strings.TrimSuffix(part, "'")
		} else if strings.HasSuffix(part, "h") {
			hardened = true
			part = strings.TrimSuffix(part, "h")
		}

		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil || uint32(n) >= HardenedOffset {
			return DerivationPath{}, fmt.Errorf("%w: invalid component %q in %q", ErrInvalidDerivationPath, part, path)
		}

		index := uint32(n)
		if hardened {
			index += HardenedOffset
		}
		indices = append(indices, index)
	}

	return DerivationPath{indices: indices}, nil
}

// MustParseDerivationPath is like ParseDerivationPath but panics on error
func MustParseDerivationPath(path string) DerivationPath {
	p, err := ParseDerivationPath(path)
	if err != nil {
		panic(err)
	}
	return p
}

// Indices returns a copy of the raw child indices, empty but non-nil for "m"
func (p DerivationPath) Indices() []uint32 {
	out := make([]uint32, len(p.indices))
	copy(out, p.indices)
	return out
}

// CoinType returns the unhardened coin type component (index 1) of a BIP44 path
func (p DerivationPath) CoinType() (uint32, bool) {
	if len(p.indices) < 2 {
		return 0, false
	}
	return p.indices[1] &^ HardenedOffset, true
}

// Chain resolves the chain from the path's coin type
func (p DerivationPath) Chain() (Chain, error) {
	coinType, ok := p.CoinType()
	if !ok {
		return "", fmt.Errorf("%w: %s has no coin type", ErrInvalidDerivationPath, p)
	}
	c, ok := ChainForCoinType(coinType)
	if !ok {
		return "", fmt.Errorf("%w: coin type %d", ErrUnsupportedChain, coinType)
	}
	return c, nil
}

// String renders the path with ' for hardened components
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, index := range p.indices {
		b.WriteString("/")
		if index >= HardenedOffset {
			b.WriteString(strconv.FormatUint(uint64(index-HardenedOffset), 10))
			b.WriteString("'")
		} else {
			b.WriteString(strconv.FormatUint(uint64(index), 10))
		}
	}
	return b.String()
}

// ParseDerivationPaths parses a list of paths, stopping at the first invalid one
func ParseDerivationPaths(paths []string) ([]DerivationPath, error) {
	out := make([]DerivationPath, 0, len(paths))
	for _, s := range paths {
		p, err := ParseDerivationPath(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
