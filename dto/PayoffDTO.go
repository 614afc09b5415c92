package dto

import "optifolio.app/types"

// PayoffCurve is a discretized payoff over a price range. Breakevens are
// linear interpolations between adjacent samples with opposite P&L signs, so
// their precision is bounded by the sample density.
type PayoffCurve struct {
	Prices     []float64 `json:"prices"`
	PNL        []float64 `json:"pnl"`
	MaxProfit  float64   `json:"maxProfit"`
	MaxLoss    float64   `json:"maxLoss"`
	Breakevens []float64 `json:"breakevens"`
}

type PayoffResponse struct {
	Symbol         string         `json:"symbol"`
	Currency       types.Currency `json:"currency"`
	ReferencePrice float64        `json:"referencePrice"`
	PriceMin       float64        `json:"priceMin"`
	PriceMax       float64        `json:"priceMax"`
	Curve          PayoffCurve    `json:"curve"`
}

// StrategyInfo describes a symbol eligible for the multi-leg strategy view.
type StrategyInfo struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name,omitempty"`
	Legs         int     `json:"legs"`
	DefaultPrice float64 `json:"defaultPrice"`
}

type StrategyAnalysisResponse struct {
	Symbol   string `json:"symbol"`
	Analysis string `json:"analysis"`
}
