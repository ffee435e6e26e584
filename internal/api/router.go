package api

import (
	"net/http"

	_ "github.com/AlexZinkM/keystore/docs"
	"github.com/AlexZinkM/keystore/internal/handler"
	"github.com/AlexZinkM/keystore/internal/model"
	"github.com/AlexZinkM/keystore/keystore"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(store *keystore.Store, defaultChain model.Chain) (http.Handler, error) {
	keystoreHandler, err := handler.NewKeystoreHandler(store, defaultChain)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallets", keystoreHandler.List)
	mux.HandleFunc("/wallets/generate", keystoreHandler.Generate)
	mux.HandleFunc("/wallets/accounts", keystoreHandler.AddAccounts)
	mux.HandleFunc("/wallets/export", keystoreHandler.Export)
	mux.HandleFunc("/wallets/password", keystoreHandler.UpdatePassword)
	mux.HandleFunc("/wallets/delete", keystoreHandler.Delete)

	// Import endpoints
	mux.HandleFunc("/wallets/import/key", keystoreHandler.ImportKey)
	mux.HandleFunc("/wallets/import/json", keystoreHandler.ImportJSON)
	mux.HandleFunc("/wallets/import/mnemonic", keystoreHandler.ImportMnemonic)

	// Account endpoints
	mux.HandleFunc("/accounts/qr", keystoreHandler.QRCode)

	return mux, nil
}
