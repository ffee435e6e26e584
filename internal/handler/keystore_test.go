package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/keystore/internal/crypto"
	"github.com/AlexZinkM/keystore/internal/model"
	"github.com/AlexZinkM/keystore/keystore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMnemonic   = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testEthKeyHex  = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testEthAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

func newTestHandler(t *testing.T) *KeystoreHandler {
	t.Helper()
	store, err := keystore.Load(t.TempDir(), crypto.NewEngine(crypto.WithLightScrypt()))
	require.NoError(t, err)

	h, err := NewKeystoreHandler(store, model.ChainEthereum)
	require.NoError(t, err)
	return h
}

func do(t *testing.T, handler http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(method, target, &buf))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func importTestKey(t *testing.T, h *KeystoreHandler, password string) model.WalletResponse {
	t.Helper()
	rec := do(t, h.ImportKey, http.MethodPost, "/wallets/import/key", model.ImportKeyRequest{
		PrivateKey: "0x" + testEthKeyHex,
		Password:   password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[model.WalletResponse](t, rec)
}

func TestNewKeystoreHandler(t *testing.T) {
	_, err := NewKeystoreHandler(nil, model.ChainEthereum)
	assert.Error(t, err)

	store, err := keystore.Load(t.TempDir(), crypto.NewEngine(crypto.WithLightScrypt()))
	require.NoError(t, err)
	h, err := NewKeystoreHandler(store, "dogecoin")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultChain, h.defaultChain)
}

func TestList(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.List, http.MethodGet, "/wallets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[model.WalletsResponse](t, rec).Wallets)

	importTestKey(t, h, "p1")

	rec = do(t, h.List, http.MethodGet, "/wallets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	wallets := decode[model.WalletsResponse](t, rec).Wallets
	require.Len(t, wallets, 1)
	assert.Equal(t, model.KindPrivateKey, wallets[0].Kind)
	assert.Equal(t, testEthAddress, wallets[0].Accounts[0].Address)
	assert.NotContains(t, rec.Body.String(), "cipherText")
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h.List, http.MethodPost, "/wallets", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h.Generate, http.MethodGet, "/wallets/generate", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h.QRCode, http.MethodPost, "/accounts/qr", nil).Code)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		req        model.GenerateRequest
		wantStatus int
		wantKind   model.Kind
		wantChains []model.Chain
	}{
		{
			name:       "hd wallet with default path",
			req:        model.GenerateRequest{Password: "p1"},
			wantStatus: http.StatusOK,
			wantKind:   model.KindMnemonic,
			wantChains: []model.Chain{model.ChainEthereum},
		},
		{
			name:       "hd wallet with default path of chain",
			req:        model.GenerateRequest{Password: "p1", Chain: model.ChainSolana},
			wantStatus: http.StatusOK,
			wantKind:   model.KindMnemonic,
			wantChains: []model.Chain{model.ChainSolana},
		},
		{
			name: "hd wallet with paths",
			req: model.GenerateRequest{
				Password: "p1",
				Kind:     model.KindMnemonic,
				Paths:    []string{"m/44'/0'/0'/0/0", "m/44'/60'/0'/0/1"},
			},
			wantStatus: http.StatusOK,
			wantKind:   model.KindMnemonic,
			wantChains: []model.Chain{model.ChainBitcoin, model.ChainEthereum},
		},
		{
			name:       "single-key wallet",
			req:        model.GenerateRequest{Password: "p1", Kind: model.KindPrivateKey, Chain: model.ChainBitcoin},
			wantStatus: http.StatusOK,
			wantKind:   model.KindPrivateKey,
			wantChains: []model.Chain{model.ChainBitcoin},
		},
		{
			name:       "invalid path",
			req:        model.GenerateRequest{Password: "p1", Paths: []string{"44'/60'"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unsupported chain",
			req:        model.GenerateRequest{Password: "p1", Kind: model.KindPrivateKey, Chain: "dogecoin"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown kind",
			req:        model.GenerateRequest{Password: "p1", Kind: "paper"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			rec := do(t, h.Generate, http.MethodPost, "/wallets/generate", tt.req)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, "invalid_request", decode[model.ErrorResponse](t, rec).Code)
				assert.Empty(t, h.store.Wallets())
				return
			}

			resp := decode[model.WalletResponse](t, rec)
			assert.Equal(t, tt.wantKind, resp.Kind)
			var chains []model.Chain
			for _, a := range resp.Accounts {
				chains = append(chains, a.Chain)
			}
			assert.Equal(t, tt.wantChains, chains)
		})
	}
}

func TestBadRequestBody(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/wallets/generate", bytes.NewBufferString("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decode[model.ErrorResponse](t, rec).Code)
}

func TestImportKey(t *testing.T) {
	h := newTestHandler(t)

	resp := importTestKey(t, h, "p1")
	assert.Equal(t, model.ChainEthereum, resp.Chain)
	require.Len(t, resp.Accounts, 1)
	assert.Equal(t, testEthAddress, resp.Accounts[0].Address)

	rec := do(t, h.ImportKey, http.MethodPost, "/wallets/import/key", model.ImportKeyRequest{
		PrivateKey: "not hex",
		Password:   "p1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h.ImportKey, http.MethodPost, "/wallets/import/key", model.ImportKeyRequest{
		PrivateKey: "abcd",
		Password:   "p1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportMnemonic(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.ImportMnemonic, http.MethodPost, "/wallets/import/mnemonic", model.ImportMnemonicRequest{
		Mnemonic: testMnemonic,
		Password: "p1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[model.WalletResponse](t, rec)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", resp.Accounts[0].Address)
	assert.Equal(t, "m/44'/60'/0'/0/0", resp.Accounts[0].DerivationPath)

	rec = do(t, h.ImportMnemonic, http.MethodPost, "/wallets/import/mnemonic", model.ImportMnemonicRequest{
		Mnemonic: "abandon abandon",
		Password: "p1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, h.store.Wallets(), 1)
}

func TestAddAccounts(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.ImportMnemonic, http.MethodPost, "/wallets/import/mnemonic", model.ImportMnemonicRequest{
		Mnemonic: testMnemonic,
		Password: "p1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	wallet := decode[model.WalletResponse](t, rec)

	rec = do(t, h.AddAccounts, http.MethodPost, "/wallets/accounts", model.AddAccountsRequest{
		WalletID: wallet.ID,
		Password: "p1",
		Paths:    []string{"m/44'/0'/0'/0/0"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	added := decode[model.AccountsResponse](t, rec)
	require.Len(t, added.Accounts, 1)
	assert.Equal(t, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", added.Accounts[0].Address)

	tests := []struct {
		name       string
		req        model.AddAccountsRequest
		wantStatus int
	}{
		{
			name:       "wrong password",
			req:        model.AddAccountsRequest{WalletID: wallet.ID, Password: "nope", Paths: []string{"m/44'/0'/0'/0/1"}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown wallet",
			req:        model.AddAccountsRequest{WalletID: "missing", Password: "p1", Paths: []string{"m/44'/0'/0'/0/1"}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid path",
			req:        model.AddAccountsRequest{WalletID: wallet.ID, Password: "p1", Paths: []string{"m/x"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h.AddAccounts, http.MethodPost, "/wallets/accounts", tt.req)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}

	stored, err := h.store.Wallet(wallet.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Accounts(), 2)
}

func TestAddAccountsToSingleKeyWallet(t *testing.T) {
	h := newTestHandler(t)
	wallet := importTestKey(t, h, "p1")

	rec := do(t, h.AddAccounts, http.MethodPost, "/wallets/accounts", model.AddAccountsRequest{
		WalletID: wallet.ID,
		Password: "p1",
		Paths:    []string{"m/44'/60'/0'/0/0"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportImportJSON(t *testing.T) {
	src := newTestHandler(t)
	wallet := importTestKey(t, src, "p1")

	rec := do(t, src.Export, http.MethodPost, "/wallets/export", model.ExportRequest{
		WalletID:    wallet.ID,
		Password:    "p1",
		NewPassword: "p2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	payload := rec.Body.Bytes()
	assert.Contains(t, string(payload), `"type": "private-key"`)

	rec = do(t, src.Export, http.MethodPost, "/wallets/export", model.ExportRequest{
		WalletID:    wallet.ID,
		Password:    "wrong",
		NewPassword: "p2",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	dst := newTestHandler(t)
	rec = do(t, dst.ImportJSON, http.MethodPost, "/wallets/import/json", model.ImportJSONRequest{
		Payload:     payload,
		Password:    "p2",
		NewPassword: "p3",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	imported := decode[model.WalletResponse](t, rec)
	assert.Equal(t, testEthAddress, imported.Accounts[0].Address)

	rec = do(t, dst.ImportJSON, http.MethodPost, "/wallets/import/json", model.ImportJSONRequest{
		Payload:     payload,
		Password:    "wrong",
		NewPassword: "p3",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, dst.ImportJSON, http.MethodPost, "/wallets/import/json", model.ImportJSONRequest{
		Payload:     json.RawMessage(`{"version": 1}`),
		Password:    "p2",
		NewPassword: "p3",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePasswordAndDelete(t *testing.T) {
	h := newTestHandler(t)
	wallet := importTestKey(t, h, "p1")

	rec := do(t, h.UpdatePassword, http.MethodPost, "/wallets/password", model.UpdatePasswordRequest{
		WalletID:    wallet.ID,
		Password:    "p1",
		NewPassword: "p2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[model.SuccessResponse](t, rec).Success)

	rec = do(t, h.Delete, http.MethodPost, "/wallets/delete", model.DeleteRequest{
		WalletID: wallet.ID,
		Password: "p1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "wrong_password", decode[model.ErrorResponse](t, rec).Code)

	rec = do(t, h.Delete, http.MethodPost, "/wallets/delete", model.DeleteRequest{
		WalletID: wallet.ID,
		Password: "p2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, h.store.Wallets())

	rec = do(t, h.Delete, http.MethodPost, "/wallets/delete", model.DeleteRequest{
		WalletID: wallet.ID,
		Password: "p2",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQRCode(t *testing.T) {
	h := newTestHandler(t)
	importTestKey(t, h, "p1")

	rec := do(t, h.QRCode, http.MethodGet, "/accounts/qr?address="+testEthAddress, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = do(t, h.QRCode, http.MethodGet, "/accounts/qr?address=0x0000000000000000000000000000000000000000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
