package handler

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/AlexZinkM/keystore/internal/common"
	"github.com/AlexZinkM/keystore/internal/model"
	"github.com/AlexZinkM/keystore/keystore"

	"github.com/rs/zerolog/log"
)

// KeystoreHandler serves one Store. The store is not safe for concurrent use,
// so every request holds mu for its whole store interaction.
type KeystoreHandler struct {
	mu           sync.Mutex
	store        *keystore.Store
	defaultChain model.Chain
}

// NewKeystoreHandler creates a new KeystoreHandler over store
func NewKeystoreHandler(store *keystore.Store, defaultChain model.Chain) (*KeystoreHandler, error) {
	if store == nil {
		return nil, errors.New("keystore not loaded")
	}
	if !defaultChain.Supported() {
		defaultChain = model.DefaultChain
	}

	return &KeystoreHandler{
		store:        store,
		defaultChain: defaultChain,
	}, nil
}

// List handles GET /wallets
// @Summary      List wallets
// @Description  Lists every loaded wallet with its accounts. No secret material is returned.
// @Tags         wallets
// @Produce      json
// @Success      200  {object}  model.WalletsResponse
// @Router       /wallets [get]
func (h *KeystoreHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	wallets := h.store.Wallets()
	resp := model.WalletsResponse{Wallets: make([]model.WalletResponse, 0, len(wallets))}
	for _, wallet := range wallets {
		resp.Wallets = append(resp.Wallets, walletResponse(wallet))
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// Generate handles POST /wallets/generate
// @Summary      Generate new wallet
// @Description  Creates an HD wallet (kind "mnemonic", accounts at the given paths) or a single-key wallet for a chain (kind "private-key")
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  true  "Wallet parameters"
// @Success      200      {object}  model.WalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallets/generate [post]
func (h *KeystoreHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.GenerateRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	password := []byte(req.Password)
	defer clear(password) // Always clear password from memory

	h.mu.Lock()
	defer h.mu.Unlock()

	var (
		wallet *keystore.Wallet
		err    error
	)
	switch req.Kind {
	case model.KindPrivateKey:
		chain, cerr := h.chain(req.Chain)
		if cerr != nil {
			writeError(w, cerr)
			return
		}
		wallet, err = h.store.CreateSingleKeyWallet(password, chain)

	case model.KindMnemonic, "":
		paths, perr := h.paths(req.Paths, req.Chain)
		if perr != nil {
			writeError(w, perr)
			return
		}
		wallet, err = h.store.CreateWallet(password, paths)

	default:
		writeError(w, model.ErrKindMismatch)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, walletResponse(wallet))
}

// AddAccounts handles POST /wallets/accounts
// @Summary      Add accounts
// @Description  Derives accounts at the given paths for an HD wallet and returns only the new accounts
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddAccountsRequest  true  "Wallet and paths"
// @Success      200      {object}  model.AccountsResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /wallets/accounts [post]
func (h *KeystoreHandler) AddAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.AddAccountsRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	password := []byte(req.Password)
	defer clear(password)

	paths, err := model.ParseDerivationPaths(req.Paths)
	if err != nil {
		writeError(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	wallet, err := h.store.Wallet(req.WalletID)
	if err != nil {
		writeError(w, err)
		return
	}

	added, err := h.store.AddAccounts(wallet, paths, password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AccountsResponse{
		WalletID: wallet.ID(),
		Accounts: accountResponses(added),
	})
}

// ImportKey handles POST /wallets/import/key
// @Summary      Import private key
// @Description  Stores a hex encoded private key as a single-key wallet
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportKeyRequest  true  "Private key"
// @Success      200      {object}  model.WalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallets/import/key [post]
func (h *KeystoreHandler) ImportKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportKeyRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	password := []byte(req.Password)
	defer clear(password)

	key, err := hex.DecodeString(strings.TrimPrefix(req.PrivateKey, "0x"))
	if err != nil {
		writeError(w, model.ErrInvalidKey)
		return
	}
	defer clear(key)

	chain, err := h.chain(req.Chain)
	if err != nil {
		writeError(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	wallet, err := h.store.ImportPrivateKey(key, password, chain)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, walletResponse(wallet))
}

// ImportJSON handles POST /wallets/import/json
// @Summary      Import encrypted key record
// @Description  Imports a single-key record exported by a keystore, re-encrypting it under newPassword
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportJSONRequest  true  "Encrypted record"
// @Success      200      {object}  model.WalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Router       /wallets/import/json [post]
func (h *KeystoreHandler) ImportJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportJSONRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	password := []byte(req.Password)
	defer clear(password)
	newPassword := []byte(req.NewPassword)
	defer clear(newPassword)

	var chain model.Chain
	if req.Chain != "" {
		var err error
		if chain, err = model.ParseChain(string(req.Chain)); err != nil {
			writeError(w, err)
			return
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	wallet, err := h.store.ImportJSON(req.Payload, password, newPassword, chain)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, walletResponse(wallet))
}

// ImportMnemonic handles POST /wallets/import/mnemonic
// @Summary      Import mnemonic
// @Description  Stores an existing BIP39 phrase as an HD wallet with one account at path
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportMnemonicRequest  true  "Mnemonic"
// @Success      200      {object}  model.WalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallets/import/mnemonic [post]
func (h *KeystoreHandler) ImportMnemonic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportMnemonicRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	password := []byte(req.Password)
	defer clear(password)

	path := h.defaultChain.DefaultDerivationPath()
	if req.Path != "" {
		var err error
		if path, err = model.ParseDerivationPath(req.Path); err != nil {
			writeError(w, err)
			return
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	wallet, err := h.store.ImportMnemonic(req.Mnemonic, req.Passphrase, password, path)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, walletResponse(wallet))
}

// Export handles POST /wallets/export
// @Summary      Export wallet
// @Description  Returns the wallet's secret re-encrypted under newPassword as a key record
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.ExportRequest  true  "Wallet and passwords"
// @Success      200      {object}  object
// @Failure      401      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /wallets/export [post]
func (h *KeystoreHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ExportRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	password := []byte(req.Password)
	defer clear(password)
	newPassword := []byte(req.NewPassword)
	defer clear(newPassword)

	h.mu.Lock()
	defer h.mu.Unlock()

	wallet, err := h.store.Wallet(req.WalletID)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := h.store.ExportJSON(wallet, password, newPassword)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// UpdatePassword handles POST /wallets/password
// @Summary      Change wallet password
// @Description  Re-encrypts the wallet under newPassword and rewrites its key file
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.UpdatePasswordRequest  true  "Wallet and passwords"
// @Success      200      {object}  model.SuccessResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /wallets/password [post]
func (h *KeystoreHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.UpdatePasswordRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	password := []byte(req.Password)
	defer clear(password)
	newPassword := []byte(req.NewPassword)
	defer clear(newPassword)

	h.mu.Lock()
	defer h.mu.Unlock()

	wallet, err := h.store.Wallet(req.WalletID)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.store.UpdatePassword(wallet, password, newPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SuccessResponse{
		Success: true,
		Message: "Password updated successfully",
	})
}

// Delete handles POST /wallets/delete
// @Summary      Delete wallet
// @Description  Verifies the password and removes the wallet and its key file
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.DeleteRequest  true  "Wallet and password"
// @Success      200      {object}  model.SuccessResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /wallets/delete [post]
func (h *KeystoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.DeleteRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	password := []byte(req.Password)
	defer clear(password)

	h.mu.Lock()
	defer h.mu.Unlock()

	wallet, err := h.store.Wallet(req.WalletID)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.store.Delete(wallet, password); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SuccessResponse{
		Success: true,
		Message: "Wallet deleted successfully",
	})
}

// QRCode handles GET /accounts/qr
// @Summary      Account QR code
// @Description  Renders the address of a stored account as a PNG QR code
// @Tags         accounts
// @Produce      png
// @Param        address  query     string  true  "Account address"
// @Success      200      {file}    binary
// @Failure      404      {object}  model.ErrorResponse
// @Router       /accounts/qr [get]
func (h *KeystoreHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	_, account, err := h.store.FindByAddress(r.URL.Query().Get("address"))
	h.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	png, err := common.AddressQRCode(account.Address, common.QRCodeSize)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// chain resolves a requested chain, falling back to the handler default
func (h *KeystoreHandler) chain(requested model.Chain) (model.Chain, error) {
	if requested == "" {
		return h.defaultChain, nil
	}
	return model.ParseChain(string(requested))
}

// paths parses requested derivation paths; none means the default path of chain
func (h *KeystoreHandler) paths(requested []string, chain model.Chain) ([]model.DerivationPath, error) {
	if len(requested) > 0 {
		return model.ParseDerivationPaths(requested)
	}
	c, err := h.chain(chain)
	if err != nil {
		return nil, err
	}
	return []model.DerivationPath{c.DefaultDerivationPath()}, nil
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error: err.Error(),
			Code:  "bad_request",
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeError maps store errors to HTTP statuses
func writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "internal"

	switch {
	case errors.Is(err, model.ErrWrongPassword):
		status, code = http.StatusUnauthorized, "wrong_password"
	case errors.Is(err, model.ErrWalletNotFound):
		status, code = http.StatusNotFound, "not_found"
	case keystore.IsFileExistsError(err):
		status, code = http.StatusConflict, "exists"
	case errors.Is(err, model.ErrInvalidKey),
		errors.Is(err, model.ErrInvalidMnemonic),
		errors.Is(err, model.ErrInvalidDerivationPath),
		errors.Is(err, model.ErrKindMismatch),
		errors.Is(err, model.ErrUnsupportedChain),
		errors.Is(err, model.ErrCorrupt):
		status, code = http.StatusBadRequest, "invalid_request"
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("Keystore request failed")
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func walletResponse(wallet *keystore.Wallet) model.WalletResponse {
	return model.WalletResponse{
		ID:       wallet.ID(),
		Kind:     wallet.Kind(),
		Chain:    wallet.Chain(),
		Accounts: accountResponses(wallet.Accounts()),
	}
}

func accountResponses(accounts []keystore.Account) []model.AccountResponse {
	out := make([]model.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, model.AccountResponse{
			Address:        a.Address,
			PublicKey:      a.PublicKey,
			Chain:          a.Chain,
			DerivationPath: a.DerivationPath,
		})
	}
	return out
}
