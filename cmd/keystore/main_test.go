package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexZinkM/keystore/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMnemonic   = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testEthKeyHex  = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testEthAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

// run executes the CLI against dir, answering prompts in order
func run(t *testing.T, dir string, answers []string, args ...string) (string, error) {
	t.Helper()

	queue := answers
	next := func(string) ([]byte, error) {
		require.NotEmpty(t, queue, "unexpected prompt")
		answer := queue[0]
		queue = queue[1:]
		return []byte(answer), nil
	}
	readPassword, readNewPassword = next, next
	t.Cleanup(func() {
		readPassword = defaultReadPassword
		readNewPassword = defaultReadNewPassword
	})

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--dir", dir, "--light-kdf"}, args...))

	err := cmd.Execute()
	assert.Empty(t, queue, "unanswered prompts")
	return out.String(), err
}

func decodeOutput[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestCreateAndList(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, []string{"p1"}, "create", "--path", "m/44'/60'/0'/0/0", "--path", "m/44'/0'/0'/0/0", "-o", "json")
	require.NoError(t, err)
	created := decodeOutput[model.WalletResponse](t, out)
	assert.Equal(t, model.KindMnemonic, created.Kind)
	require.Len(t, created.Accounts, 2)
	assert.Equal(t, model.ChainBitcoin, created.Accounts[1].Chain)

	out, err = run(t, dir, []string{"p1"}, "create", "--single-key", "--chain", "solana", "-o", "json")
	require.NoError(t, err)
	single := decodeOutput[model.WalletResponse](t, out)
	assert.Equal(t, model.ChainSolana, single.Chain)

	out, err = run(t, dir, nil, "list", "-o", "json")
	require.NoError(t, err)
	listed := decodeOutput[model.WalletsResponse](t, out)
	assert.Len(t, listed.Wallets, 2)

	out, err = run(t, dir, nil, "list")
	require.NoError(t, err)
	assert.Contains(t, out, created.ID)
	assert.Contains(t, out, "m/44'/0'/0'/0/0")
}

func TestListEmpty(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, nil, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No wallets")

	_, err = run(t, dir, nil, "list", "-o", "yaml")
	assert.Error(t, err)
}

func TestImportExportKey(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, []string{"0x" + testEthKeyHex, "p1"}, "import", "key", "-o", "json")
	require.NoError(t, err)
	wallet := decodeOutput[model.WalletResponse](t, out)
	assert.Equal(t, testEthAddress, wallet.Accounts[0].Address)

	out, err = run(t, dir, []string{"p1"}, "export", "key", testEthAddress)
	require.NoError(t, err)
	assert.Equal(t, testEthKeyHex, strings.TrimSpace(out))

	_, err = run(t, dir, []string{"wrong"}, "export", "key", wallet.ID)
	assert.ErrorIs(t, err, model.ErrWrongPassword)

	_, err = run(t, dir, []string{"p1"}, "export", "mnemonic", wallet.ID)
	assert.ErrorIs(t, err, model.ErrInvalidMnemonic)

	_, err = run(t, dir, []string{"zz"}, "import", "key")
	assert.ErrorIs(t, err, model.ErrInvalidKey)
}

func TestImportMnemonicAndAccounts(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, []string{testMnemonic, "p1"}, "import", "mnemonic", "-o", "json")
	require.NoError(t, err)
	wallet := decodeOutput[model.WalletResponse](t, out)
	require.Len(t, wallet.Accounts, 1)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", wallet.Accounts[0].Address)

	out, err = run(t, dir, []string{"p1"}, "accounts", "add", wallet.ID, "--path", "m/44'/0'/0'/0/0", "-o", "json")
	require.NoError(t, err)
	added := decodeOutput[model.AccountsResponse](t, out)
	require.Len(t, added.Accounts, 1)
	assert.Equal(t, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", added.Accounts[0].Address)

	out, err = run(t, dir, []string{"p1"}, "export", "mnemonic", wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, strings.TrimSpace(out))

	out, err = run(t, dir, []string{"p1"}, "export", "key", wallet.ID, "--address", "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
	require.NoError(t, err)
	assert.Equal(t, "1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727", strings.TrimSpace(out))

	// HD wallets need an account to export a key
	_, err = run(t, dir, nil, "export", "key", wallet.ID)
	assert.Error(t, err)

	_, err = run(t, dir, []string{"not a mnemonic", "p1"}, "import", "mnemonic")
	assert.ErrorIs(t, err, model.ErrInvalidMnemonic)
}

func TestExportImportJSON(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	backup := filepath.Join(t.TempDir(), "backup.json")

	_, err := run(t, src, []string{testEthKeyHex, "p1"}, "import", "key")
	require.NoError(t, err)

	_, err = run(t, src, []string{"p1", "p2"}, "export", "json", testEthAddress, "--out", backup)
	require.NoError(t, err)
	info, err := os.Stat(backup)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	out, err := run(t, dst, []string{"p2", "p3"}, "import", "json", backup, "-o", "json")
	require.NoError(t, err)
	wallet := decodeOutput[model.WalletResponse](t, out)
	assert.Equal(t, testEthAddress, wallet.Accounts[0].Address)

	out, err = run(t, dst, []string{"p3"}, "export", "key", testEthAddress)
	require.NoError(t, err)
	assert.Equal(t, testEthKeyHex, strings.TrimSpace(out))
}

func TestPasswordAndDelete(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, []string{testEthKeyHex, "p1"}, "import", "key")
	require.NoError(t, err)

	_, err = run(t, dir, []string{"p1", "p2"}, "password", testEthAddress)
	require.NoError(t, err)

	_, err = run(t, dir, []string{"p1"}, "delete", testEthAddress)
	assert.ErrorIs(t, err, model.ErrWrongPassword)

	out, err := run(t, dir, []string{"p2"}, "delete", testEthAddress)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = run(t, dir, nil, "delete", testEthAddress)
	assert.ErrorIs(t, err, model.ErrWalletNotFound)
}

func TestQR(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(t.TempDir(), "address.png")

	_, err := run(t, dir, []string{testEthKeyHex, "p1"}, "import", "key")
	require.NoError(t, err)

	out, err := run(t, dir, nil, "qr", testEthAddress)
	require.NoError(t, err)
	assert.Contains(t, out, testEthAddress)

	_, err = run(t, dir, nil, "qr", testEthAddress, "--out", png)
	require.NoError(t, err)
	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	_, err = run(t, dir, nil, "qr", "0x0000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, model.ErrWalletNotFound)
}
