package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cardpay/gateway/internal/application"
	"github.com/cardpay/gateway/internal/application/services"
	"github.com/cardpay/gateway/internal/auth"
	"github.com/cardpay/gateway/internal/config"
	"github.com/cardpay/gateway/internal/infrastructure/acquirer"
	"github.com/cardpay/gateway/internal/infrastructure/memstore"
	"github.com/cardpay/gateway/internal/interfaces/rest/handlers"
	"github.com/cardpay/gateway/internal/interfaces/rest/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var integrationAuthConfig = config.AuthConfig{
	Secret:       "integration-test-secret",
	TokenTTL:     time.Hour,
	ClientID:     "test-client",
	ClientSecret: "test-secret",
	MerchantID:   "merchant-123",
	Scopes:       auth.ScopePaymentRead + " " + auth.ScopePaymentWrite,
}

// fakeBank stands in for the acquiring bank. It authorises any card whose
// number ends in an odd digit and counts how many requests it saw.
type fakeBank struct {
	server *httptest.Server
	calls  atomic.Int64
}

func newFakeBank(t *testing.T) *fakeBank {
	t.Helper()

	bank := &fakeBank{}
	bank.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bank.calls.Add(1)

		var req application.AuthorisationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		last := req.CardNumber[len(req.CardNumber)-1]
		resp := application.AuthorisationResponse{
			Authorised: (last-'0')%2 == 1,
		}
		if resp.Authorised {
			resp.AuthorisationCode = "ABC123"
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(bank.server.Close)
	return bank
}

// newGateway wires the real store, services and HTTP surface against the
// fake bank, the same way main does.
func newGateway(t *testing.T, bank *fakeBank) (*http.ServeMux, *auth.Service) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.NewStore()
	bankClient := acquirer.NewClient(config.AcquirerConfig{
		BaseURL:     bank.server.URL,
		ConnTimeout: 5 * time.Second,
	})

	paymentService := services.NewProcessPaymentService(store, bankClient, logger)
	queryService := services.NewQueryService(store)
	authService := auth.NewService(integrationAuthConfig)

	h := handlers.NewHandlers(paymentService, queryService, authService, integrationAuthConfig, logger)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, middleware.NewBearerAuth(authService, logger))
	return mux, authService
}

func merchantToken(t *testing.T, authService *auth.Service, scopes ...string) string {
	t.Helper()

	token, err := authService.IssueToken(integrationAuthConfig.MerchantID, scopes)
	require.NoError(t, err)
	return "Bearer " + token
}

func postPayment(t *testing.T, mux *http.ServeMux, token string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func getPayment(t *testing.T, mux *http.ServeMux, token, id string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/payments/"+id, nil)
	req.Header.Set("Authorization", token)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

type paymentEnvelope struct {
	Success bool                    `json:"success"`
	Data    *services.PaymentResult `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) paymentEnvelope {
	t.Helper()

	var env paymentEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestGateway_AuthorisedPaymentRoundTrip(t *testing.T) {
	bank := newFakeBank(t)
	mux, authService := newGateway(t, bank)
	token := merchantToken(t, authService, auth.ScopePaymentRead, auth.ScopePaymentWrite)

	rr := postPayment(t, mux, token, map[string]any{
		"card_number":  "4111111111111111",
		"expiry_month": "12",
		"expiry_year":  "2031",
		"currency":     "GBP",
		"amount":       10000,
		"cvv":          "123",
	})

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	env := decodeEnvelope(t, rr)
	require.True(t, env.Success)
	require.NotNil(t, env.Data)
	assert.Equal(t, "AUTHORISED", env.Data.Status)
	assert.Equal(t, "1111", env.Data.LastFourDigits)
	assert.Equal(t, "12", env.Data.ExpiryMonth)
	assert.Equal(t, "2031", env.Data.ExpiryYear)
	assert.Equal(t, "GBP", env.Data.Currency)
	assert.Equal(t, int64(10000), env.Data.Amount)
	assert.Equal(t, int64(1), bank.calls.Load())

	// The stored payment is retrievable by the id returned on creation.
	getRR := getPayment(t, mux, token, env.Data.ID.String())

	require.Equal(t, http.StatusOK, getRR.Code)
	getEnv := decodeEnvelope(t, getRR)
	require.NotNil(t, getEnv.Data)
	assert.Equal(t, env.Data.ID, getEnv.Data.ID)
	assert.Equal(t, "AUTHORISED", getEnv.Data.Status)
	assert.Equal(t, "1111", getEnv.Data.LastFourDigits)
}

func TestGateway_DeclinedPaymentIsStored(t *testing.T) {
	bank := newFakeBank(t)
	mux, authService := newGateway(t, bank)
	token := merchantToken(t, authService, auth.ScopePaymentRead, auth.ScopePaymentWrite)

	rr := postPayment(t, mux, token, map[string]any{
		"card_number":  "4111111111111112",
		"expiry_month": "06",
		"expiry_year":  "2030",
		"currency":     "USD",
		"amount":       500,
		"cvv":          "9876",
	})

	require.Equal(t, http.StatusPaymentRequired, rr.Code, rr.Body.String())

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PAYMENT_DECLINED", env.Error.Code)
	require.NotNil(t, env.Data)
	assert.Equal(t, "DECLINED", env.Data.Status)
	assert.Equal(t, "1112", env.Data.LastFourDigits)

	// Declined payments are persisted and queryable like any other outcome.
	getRR := getPayment(t, mux, token, env.Data.ID.String())

	require.Equal(t, http.StatusOK, getRR.Code)
	getEnv := decodeEnvelope(t, getRR)
	require.NotNil(t, getEnv.Data)
	assert.Equal(t, "DECLINED", getEnv.Data.Status)
}

func TestGateway_NegativeAmountNeverReachesTheBank(t *testing.T) {
	bank := newFakeBank(t)
	mux, authService := newGateway(t, bank)
	token := merchantToken(t, authService, auth.ScopePaymentWrite)

	rr := postPayment(t, mux, token, map[string]any{
		"card_number":  "4111111111111111",
		"expiry_month": "12",
		"expiry_year":  "2031",
		"currency":     "GBP",
		"amount":       -100,
		"cvv":          "123",
	})

	require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())

	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PAYMENT_VALIDATION", env.Error.Code)
	assert.Contains(t, env.Error.Message, "amount cannot be negative")
	assert.Zero(t, bank.calls.Load(), "rejected requests must not reach the bank")
}

func TestGateway_MissingCvvIsRejected(t *testing.T) {
	bank := newFakeBank(t)
	mux, authService := newGateway(t, bank)
	token := merchantToken(t, authService, auth.ScopePaymentWrite)

	rr := postPayment(t, mux, token, map[string]any{
		"card_number":  "4111111111111111",
		"expiry_month": "12",
		"expiry_year":  "2031",
		"currency":     "GBP",
		"amount":       10000,
		"cvv":          "",
	})

	require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())

	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PAYMENT_VALIDATION", env.Error.Code)
	assert.Contains(t, env.Error.Message, "CVV is required")
	assert.Zero(t, bank.calls.Load())
}

func TestGateway_BankOutageIsABadGateway(t *testing.T) {
	bank := newFakeBank(t)
	mux, authService := newGateway(t, bank)
	token := merchantToken(t, authService, auth.ScopePaymentWrite)

	bank.server.Close()

	rr := postPayment(t, mux, token, map[string]any{
		"card_number":  "4111111111111111",
		"expiry_month": "12",
		"expiry_year":  "2031",
		"currency":     "GBP",
		"amount":       10000,
		"cvv":          "123",
	})

	assert.Equal(t, http.StatusBadGateway, rr.Code, rr.Body.String())
}

func TestGateway_DisconnectedCallerStillCommits(t *testing.T) {
	bank := newFakeBank(t)
	mux, authService := newGateway(t, bank)
	token := merchantToken(t, authService, auth.ScopePaymentRead, auth.ScopePaymentWrite)

	body, err := json.Marshal(map[string]any{
		"card_number":  "4111111111111111",
		"expiry_month": "12",
		"expiry_year":  "2031",
		"currency":     "GBP",
		"amount":       10000,
		"cvv":          "123",
	})
	require.NoError(t, err)

	// The caller has already gone away when the handler runs.
	callerCtx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(body)).WithContext(callerCtx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, int64(1), bank.calls.Load(), "the bank call must not be aborted by the disconnect")

	// The committed outcome is discoverable through the query path.
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Data)

	getRR := getPayment(t, mux, token, env.Data.ID.String())
	require.Equal(t, http.StatusOK, getRR.Code)
	assert.Equal(t, "AUTHORISED", decodeEnvelope(t, getRR).Data.Status)
}
