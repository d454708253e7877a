package exchangerate_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kshitijs/currency_exchange_app/internal/adapters/exchangerate"
	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	"github.com/kshitijs/currency_exchange_app/internal/platform/config"
)

type ExchangeRateClientTestSuite struct {
	suite.Suite
}

func (suite *ExchangeRateClientTestSuite) newClient(serverURL string) *exchangerate.Client {
	cfg := &config.Config{
		ExchangeRateAPIURL:     serverURL,
		ExchangeRateAPIKey:     "test-key",
		ExchangeRateTimeout:    2 * time.Second,
		ExchangeRateMaxRetries: 3,
	}
	return exchangerate.NewClient(cfg, slog.Default())
}

// --- Test Cases ---

func (suite *ExchangeRateClientTestSuite) TestFetchRates_Success() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("/test-key/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": "success",
			"base_code": "USD",
			"conversion_rates": {"USD": 1, "EUR": 0.90, "GBP": 0.78}
		}`))
	}))
	defer server.Close()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "usd")

	suite.Require().NoError(err)
	suite.Len(rates, 3)
	suite.True(rates["EUR"].Equal(decimal.RequireFromString("0.90")))
	suite.True(rates["USD"].Equal(decimal.NewFromInt(1)))
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_RetriesServerErrorThenSucceeds() {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": "success", "base_code": "USD", "conversion_rates": {"EUR": 0.90}}`))
	}))
	defer server.Close()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "USD")

	suite.Require().NoError(err)
	suite.Equal(int32(2), calls.Load())
	suite.True(rates["EUR"].Equal(decimal.RequireFromString("0.90")))
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_ExhaustsRetriesOnServerError() {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "USD")

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.Equal(int32(3), calls.Load())
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_ConnectionRefused() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close() // nothing listens here anymore

	client := suite.newClient(serverURL)
	rates, err := client.FetchRates(context.Background(), "USD")

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_UnauthorizedStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "USD")

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrUpstreamAuth)
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_InvalidKeyErrorType() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"result": "error", "error-type": "invalid-key"}`))
	}))
	defer server.Close()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "USD")

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrUpstreamAuth)
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_UnsupportedCodeErrorType() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"result": "error", "error-type": "unsupported-code"}`))
	}))
	defer server.Close()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "ZZZ")

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_QuotaReachedErrorType() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"result": "error", "error-type": "quota-reached"}`))
	}))
	defer server.Close()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "USD")

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_MalformedBody() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`this is not json`))
	}))
	defer server.Close()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "USD")

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrUpstreamFormat)
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_MissingRatesInBody() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": "success", "base_code": "USD"}`))
	}))
	defer server.Close()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "USD")

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrUpstreamFormat)
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_NonPositiveRateRejected() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": "success", "base_code": "USD", "conversion_rates": {"EUR": 0}}`))
	}))
	defer server.Close()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "USD")

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrUpstreamFormat)
}

func (suite *ExchangeRateClientTestSuite) TestFetchRates_ContextCancelledDuringBackoff() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	client := suite.newClient(server.URL)
	rates, err := client.FetchRates(ctx, "USD")

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
}

// --- Run Suite ---
func TestExchangeRateClient(t *testing.T) {
	suite.Run(t, new(ExchangeRateClientTestSuite))
}
