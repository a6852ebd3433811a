package fxrate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsalem/rental_ledger_app/internal/adapters/fxrate"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
)

func TestLatestRate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/latest", r.URL.Path)
		assert.Equal(t, "JOD", r.URL.Query().Get("base_currency"))
		assert.Equal(t, "ILS", r.URL.Query().Get("currencies"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"ILS":{"code":"ILS","value":5.1234}}}`))
	}))
	defer server.Close()

	client := fxrate.NewClient(server.URL, "test-key", server.Client())

	rate, err := client.LatestRate(context.Background(), "JOD", "ILS")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(5.1234).Equal(rate), "got %s", rate)
}

func TestLatestRate_MissingAPIKey(t *testing.T) {
	client := fxrate.NewClient("http://localhost", "", nil)

	_, err := client.LatestRate(context.Background(), "JOD", "ILS")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateProvider)
}

func TestLatestRate_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := fxrate.NewClient(server.URL, "test-key", server.Client())

	_, err := client.LatestRate(context.Background(), "JOD", "ILS")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateProvider)
}

func TestLatestRate_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := fxrate.NewClient(server.URL, "test-key", server.Client())

	_, err := client.LatestRate(context.Background(), "JOD", "ILS")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateProvider)
}

func TestLatestRate_MissingQuoteInPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"USD":{"value":1.41}}}`))
	}))
	defer server.Close()

	client := fxrate.NewClient(server.URL, "test-key", server.Client())

	_, err := client.LatestRate(context.Background(), "JOD", "ILS")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateProvider)
}

func TestLatestRate_NonPositiveValueRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"ILS":{"value":0}}}`))
	}))
	defer server.Close()

	client := fxrate.NewClient(server.URL, "test-key", server.Client())

	_, err := client.LatestRate(context.Background(), "JOD", "ILS")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateProvider)
}
