package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/keystore/internal/crypto"
	"github.com/AlexZinkM/keystore/internal/model"
	"github.com/AlexZinkM/keystore/keystore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRouter(t *testing.T) {
	_, err := SetupRouter(nil, model.ChainEthereum)
	assert.Error(t, err)

	store, err := keystore.Load(t.TempDir(), crypto.NewEngine(crypto.WithLightScrypt()))
	require.NoError(t, err)

	router, err := SetupRouter(store, model.ChainEthereum)
	require.NoError(t, err)

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/wallets", http.StatusOK},
		{http.MethodGet, "/wallets/generate", http.StatusMethodNotAllowed},
		{http.MethodGet, "/accounts/qr?address=missing", http.StatusNotFound},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodGet, "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
