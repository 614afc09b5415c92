package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"optifolio.app/dto"
	"optifolio.app/shared"
)

// ErrRateLimited is returned when Alpha Vantage responds with its free-tier
// throttling note instead of matches.
var ErrRateLimited = errors.New("alpha vantage rate limit note")

type AlphaVantageSearcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAlphaVantageSearcher(apiKey string) *AlphaVantageSearcher {
	return &AlphaVantageSearcher{
		apiKey:  apiKey,
		baseURL: "https://www.alphavantage.co",
		client:  shared.HttpClient(),
	}
}

func (s *AlphaVantageSearcher) Name() string { return "Alpha Vantage" }

func (s *AlphaVantageSearcher) Search(ctx context.Context, query string) ([]dto.SymbolMatch, error) {
	endpoint := fmt.Sprintf("%s/query?function=SYMBOL_SEARCH&keywords=%s&apikey=%s",
		s.baseURL, url.QueryEscape(query), s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alpha vantage returned HTTP %d", resp.StatusCode)
	}

	var raw struct {
		BestMatches []map[string]string `json:"bestMatches"`
		Note        string              `json:"Note"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	if raw.Note != "" {
		return nil, ErrRateLimited
	}

	matches := make([]dto.SymbolMatch, 0, len(raw.BestMatches))
	for _, m := range raw.BestMatches {
		matches = append(matches, dto.SymbolMatch{
			Symbol: m["1. symbol"],
			Name:   m["2. name"],
			Region: m["4. region"],
			Source: "alphavantage",
		})
	}
	return matches, nil
}
