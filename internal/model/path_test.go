package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDerivationPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []uint32
		str      string
		wantErr  bool
	}{
		{
			name:     "Simple path",
			path:     "m/0/1/2",
			expected: []uint32{0, 1, 2},
			str:      "m/0/1/2",
		},
		{
			name:     "Hardened path with quote",
			path:     "m/44'/60'/0'/0/0",
			expected: []uint32{44 | 0x80000000, 60 | 0x80000000, 0 | 0x80000000, 0, 0},
			str:      "m/44'/60'/0'/0/0",
		},
		{
			name:     "Hardened path with h",
			path:     "m/44h/501h/0h/0h",
			expected: []uint32{44 | 0x80000000, 501 | 0x80000000, 0 | 0x80000000, 0 | 0x80000000},
			str:      "m/44'/501'/0'/0'",
		},
		{
			name:     "Root path",
			path:     "m",
			expected: []uint32{},
			str:      "m",
		},
		{name: "Empty path", path: "", wantErr: true},
		{name: "Missing root", path: "44'/60'", wantErr: true},
		{name: "Not a number", path: "m/44'/eth'", wantErr: true},
		{name: "Index too large", path: "m/2147483648", wantErr: true},
		{name: "Empty component", path: "m//0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseDerivationPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDerivationPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Indices())
			assert.Equal(t, tt.str, p.String())
		})
	}
}

func TestRootPathIndicesAreEmpty(t *testing.T) {
	p, err := ParseDerivationPath("m")
	require.NoError(t, err)

	indices := p.Indices()
	assert.NotNil(t, indices)
	assert.Empty(t, indices)
	assert.Equal(t, "m", p.String())
}

func TestDerivationPathChain(t *testing.T) {
	c, err := MustParseDerivationPath("m/44'/60'/0'/0/3").Chain()
	require.NoError(t, err)
	assert.Equal(t, ChainEthereum, c)

	c, err = MustParseDerivationPath("m/44'/501'/1'/0'").Chain()
	require.NoError(t, err)
	assert.Equal(t, ChainSolana, c)

	_, err = MustParseDerivationPath("m/44'/118'/0'/0/0").Chain()
	assert.ErrorIs(t, err, ErrUnsupportedChain)

	_, err = MustParseDerivationPath("m/44'").Chain()
	assert.ErrorIs(t, err, ErrInvalidDerivationPath)
}

func TestChains(t *testing.T) {
	for _, c := range Chains() {
		path := c.DefaultDerivationPath()
		resolved, err := path.Chain()
		require.NoError(t, err)
		assert.Equal(t, c, resolved)
	}

	c, err := ParseChain(" Solana ")
	require.NoError(t, err)
	assert.Equal(t, ChainSolana, c)

	_, err = ParseChain("dogecoin")
	assert.ErrorIs(t, err, ErrUnsupportedChain)
}

func TestKeyRecordResolvedChain(t *testing.T) {
	r := &KeyRecord{Type: KindPrivateKey}
	assert.Equal(t, DefaultChain, r.ResolvedChain())

	r.Chain = ChainBitcoin
	assert.Equal(t, ChainBitcoin, r.ResolvedChain())
}

func TestKeyRecordClone(t *testing.T) {
	r := &KeyRecord{
		Type:           KindMnemonic,
		Crypto:         []byte(`{"cipher":"aes-256-gcm"}`),
		ActiveAccounts: []ActiveAccount{{Chain: ChainEthereum, Address: "0x01"}},
	}
	c := r.Clone()
	c.ActiveAccounts[0].Address = "0x02"
	c.Crypto[0] = '['

	assert.Equal(t, "0x01", r.ActiveAccounts[0].Address)
	assert.Equal(t, byte('{'), r.Crypto[0])
}
