package dto

import "optifolio.app/types"

// CategoryAggregate is the EUR-normalised roll-up of one position category
// (stocks, bought options or sold options).
type CategoryAggregate struct {
	Invested       float64      `json:"invested"`
	PremiumIncome  float64      `json:"premiumIncome"`
	RealizedIncome float64      `json:"realizedIncome"`
	RiskExposure   types.Amount `json:"riskExposure"`
	Positions      int          `json:"positions"`
}

// PositionShare is one position's slice of the total portfolio exposure.
type PositionShare struct {
	TransactionID string         `json:"transactionId"`
	Symbol        string         `json:"symbol"`
	Name          string         `json:"name,omitempty"`
	Currency      types.Currency `json:"currency"`
	AmountEUR     float64        `json:"amountEur"`
	SharePercent  float64        `json:"sharePercent"`
}

type PortfolioSummary struct {
	Stocks        CategoryAggregate `json:"stocks"`
	BoughtOptions CategoryAggregate `json:"boughtOptions"`
	SoldOptions   CategoryAggregate `json:"soldOptions"`

	TotalInvested     float64      `json:"totalInvested"`
	TotalIncome       float64      `json:"totalIncome"`
	TotalRiskExposure types.Amount `json:"totalRiskExposure"`

	// RiskReward is (totalIncome − totalInvested) / |totalRiskExposure|,
	// present only when the exposure is finite and negative and net income
	// is positive.
	RiskReward *float64 `json:"riskReward,omitempty"`

	Shares []PositionShare `json:"shares"`

	// RatesDegraded is set when FX conversion ran on stale or missing
	// rates; non-EUR amounts may then be carried unconverted.
	RatesDegraded bool     `json:"ratesDegraded,omitempty"`
	Rates         *FxRates `json:"rates,omitempty"`
}
