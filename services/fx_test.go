package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"optifolio.app/dto"
)

func fxServer(t *testing.T, hits *int32, eurusd, eurchf float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		rate := eurusd
		if strings.Contains(r.URL.Path, "EURCHF") {
			rate = eurchf
		}
		fmt.Fprintf(w, `{"chart":{"result":[{"meta":{"regularMarketPrice":%f}}]}}`, rate)
	}))
}

func TestFxRefreshAndDailyCache(t *testing.T) {
	var hits int32
	server := fxServer(t, &hits, 1.1, 0.95)
	defer server.Close()

	svc := NewFxService()
	svc.baseURL = server.URL

	rates := svc.GetRates()
	assert.NotNil(t, rates)
	assert.InDelta(t, 1.1, rates.EURUSD, 1e-9)
	assert.InDelta(t, 0.95, rates.EURCHF, 1e-9)
	assert.False(t, rates.Stale)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))

	// Second call within the same day is served from cache.
	again := svc.GetRates()
	assert.NotNil(t, again)
	assert.Equal(t, rates.EURUSD, again.EURUSD)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestFxFallsBackToLastKnownOnFailure(t *testing.T) {
	var hits int32
	server := fxServer(t, &hits, 1.2, 0.9)

	svc := NewFxService()
	svc.baseURL = server.URL

	assert.NoError(t, svc.Refresh())
	server.Close()

	// Evict today's entry so the next GetRates has to hit the dead server.
	svc.cache.Flush()

	rates := svc.GetRates()
	assert.NotNil(t, rates)
	assert.True(t, rates.Stale)
	assert.InDelta(t, 1.2, rates.EURUSD, 1e-9)
}

func TestFxGetRatesSurvivesCacheEviction(t *testing.T) {
	var hits int32
	server := fxServer(t, &hits, 1.3, 0.85)
	defer server.Close()

	svc := NewFxService()
	svc.baseURL = server.URL

	assert.NoError(t, svc.Refresh())

	// The day key can disappear between the refresh and the read-back, as
	// it does when the calendar day rolls over mid-call. GetRates must
	// serve the freshly fetched rates regardless of the cache state.
	svc.cache.Flush()

	var rates *dto.FxRates
	assert.NotPanics(t, func() { rates = svc.GetRates() })
	assert.NotNil(t, rates)
	assert.InDelta(t, 1.3, rates.EURUSD, 1e-9)
	assert.False(t, rates.Stale)
}

func TestFxNilWhenNeverFetched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewFxService()
	svc.baseURL = server.URL

	assert.Nil(t, svc.GetRates())
}

func TestFxRejectsNonPositiveRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"regularMarketPrice":0}}]}}`)
	}))
	defer server.Close()

	svc := NewFxService()
	svc.baseURL = server.URL

	err := svc.Refresh()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "EURUSD")
}
