package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	gocache "github.com/patrickmn/go-cache"

	"optifolio.app/dto"
	"optifolio.app/shared"
)

// FxService fetches and caches the EUR-base daily rates used for portfolio
// normalisation. Rates are cached once per calendar day; when a fetch fails
// the last known rates are served marked stale, and when nothing was ever
// fetched GetRates returns nil and the aggregator skips conversion. A rate
// problem never surfaces as an error to callers.
type FxService struct {
	client  *http.Client
	baseURL string

	cache *gocache.Cache

	mu        sync.Mutex
	lastKnown *dto.FxRates
}

// Fx is the process-wide rate provider.
var Fx = NewFxService()

func NewFxService() *FxService {
	baseURL := os.Getenv("FX_BASE_URL")
	if baseURL == "" {
		baseURL = "https://query2.finance.yahoo.com"
	}
	return &FxService{
		client:  shared.HttpClient(),
		baseURL: baseURL,
		cache:   gocache.New(48*time.Hour, time.Hour),
	}
}

func (s *FxService) dayKey(now time.Time) string {
	return "fx:" + now.Format("2006-01-02")
}

// GetRates returns today's cached rates, refreshing them if this is the first
// call of the day. Nil means no rates are available at all.
func (s *FxService) GetRates() *dto.FxRates {
	if v, ok := s.cache.Get(s.dayKey(time.Now())); ok {
		rates := v.(dto.FxRates)
		return &rates
	}

	if err := s.Refresh(); err != nil {
		log.Warnf("FX refresh failed, falling back to last known rates: %v", err)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.lastKnown == nil {
			return nil
		}
		stale := *s.lastKnown
		stale.Stale = true
		return &stale
	}

	// Refresh just stored these under lastKnown; re-reading the cache here
	// would miss if the calendar day rolled over since the key was built.
	s.mu.Lock()
	defer s.mu.Unlock()
	rates := *s.lastKnown
	return &rates
}

// Refresh fetches both pairs and stores them under today's cache key.
func (s *FxService) Refresh() error {
	eurusd, err := s.fetchPair("EURUSD")
	if err != nil {
		return fmt.Errorf("EURUSD: %w", err)
	}
	eurchf, err := s.fetchPair("EURCHF")
	if err != nil {
		return fmt.Errorf("EURCHF: %w", err)
	}

	rates := dto.FxRates{EURUSD: eurusd, EURCHF: eurchf, AsOf: time.Now()}
	s.cache.Set(s.dayKey(time.Now()), rates, gocache.DefaultExpiration)

	s.mu.Lock()
	s.lastKnown = &rates
	s.mu.Unlock()

	log.Infof("FX rates refreshed: EURUSD=%.4f EURCHF=%.4f", eurusd, eurchf)
	return nil
}

func (s *FxService) fetchPair(pair string) (float64, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s=X?interval=1h&range=1d", s.baseURL, pair)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "optifolio/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fx provider returned HTTP %d", resp.StatusCode)
	}

	var raw struct {
		Chart struct {
			Result []struct {
				Meta struct {
					RegularMarketPrice float64 `json:"regularMarketPrice"`
				} `json:"meta"`
			} `json:"result"`
		} `json:"chart"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, err
	}
	if len(raw.Chart.Result) == 0 {
		return 0, fmt.Errorf("no result for pair %s", pair)
	}
	rate := raw.Chart.Result[0].Meta.RegularMarketPrice
	if rate <= 0 {
		return 0, fmt.Errorf("invalid rate %f for pair %s", rate, pair)
	}
	return rate, nil
}
