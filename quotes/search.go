// Package quotes resolves ticker symbols against external market-data
// providers. Providers are tried in order and any failure falls through to
// the next one; an exhausted chain yields an empty result, never an error
// that could reach the valuation core.
package quotes

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2/log"

	"optifolio.app/dto"
)

type Searcher interface {
	Name() string
	Search(ctx context.Context, query string) ([]dto.SymbolMatch, error)
}

type Chain struct {
	searchers []Searcher
}

func NewChain(searchers ...Searcher) *Chain {
	return &Chain{searchers: searchers}
}

// NewChainFromEnv wires every provider with a configured API key, in the
// order Financial Modeling Prep, Alpha Vantage, Finnhub.
func NewChainFromEnv() *Chain {
	var searchers []Searcher
	if key := os.Getenv("FMP_API_KEY"); key != "" {
		searchers = append(searchers, NewFMPSearcher(key))
	}
	if key := os.Getenv("ALPHA_VANTAGE_API_KEY"); key != "" {
		searchers = append(searchers, NewAlphaVantageSearcher(key))
	}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		searchers = append(searchers, NewFinnhubSearcher(key))
	}
	return NewChain(searchers...)
}

func (c *Chain) Search(ctx context.Context, query string) []dto.SymbolMatch {
	for _, s := range c.searchers {
		matches, err := s.Search(ctx, query)
		if err != nil {
			log.Warnf("Symbol search via %s failed: %v", s.Name(), err)
			continue
		}
		if len(matches) > 0 {
			return matches
		}
	}
	return []dto.SymbolMatch{}
}
