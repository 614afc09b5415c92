package quotes

import (
	"context"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"optifolio.app/dto"
)

type FinnhubSearcher struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubSearcher(apiKey string) *FinnhubSearcher {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnhubSearcher{client: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (s *FinnhubSearcher) Name() string { return "Finnhub" }

func (s *FinnhubSearcher) Search(ctx context.Context, query string) ([]dto.SymbolMatch, error) {
	lookup, _, err := s.client.SymbolSearch(ctx).Q(query).Execute()
	if err != nil {
		return nil, err
	}

	results := lookup.GetResult()
	matches := make([]dto.SymbolMatch, 0, len(results))
	for _, r := range results {
		matches = append(matches, dto.SymbolMatch{
			Symbol: r.GetDisplaySymbol(),
			Name:   r.GetDescription(),
			Source: "finnhub",
		})
	}
	return matches, nil
}
