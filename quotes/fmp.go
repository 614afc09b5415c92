package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"optifolio.app/dto"
	"optifolio.app/shared"
)

type FMPSearcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewFMPSearcher(apiKey string) *FMPSearcher {
	return &FMPSearcher{
		apiKey:  apiKey,
		baseURL: "https://financialmodelingprep.com",
		client:  shared.HttpClient(),
	}
}

func (s *FMPSearcher) Name() string { return "Financial Modeling Prep" }

func (s *FMPSearcher) Search(ctx context.Context, query string) ([]dto.SymbolMatch, error) {
	endpoint := fmt.Sprintf("%s/api/v3/search?query=%s&limit=10&apikey=%s",
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
		return nil, fmt.Errorf("fmp search returned HTTP %d", resp.StatusCode)
	}

	var raw []struct {
		Symbol            string `json:"symbol"`
		Name              string `json:"name"`
		ExchangeShortName string `json:"exchangeShortName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	matches := make([]dto.SymbolMatch, 0, len(raw))
	for _, r := range raw {
		matches = append(matches, dto.SymbolMatch{
			Symbol: r.Symbol,
			Name:   r.Name,
			Region: r.ExchangeShortName,
			Source: "fmp",
		})
	}
	return matches, nil
}
