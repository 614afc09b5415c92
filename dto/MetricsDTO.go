package dto

import "optifolio.app/types"

// RiskMetrics are the static, price-independent figures of one transaction.
// All of them are derived, never persisted.
type RiskMetrics struct {
	InvestedAmount float64      `json:"investedAmount"`
	PremiumIncome  float64      `json:"premiumIncome"`
	RealizedIncome float64      `json:"realizedIncome"`
	RiskExposure   types.Amount `json:"riskExposure"`
	BreakEven      float64      `json:"breakEven"`
	MaxProfit      types.Amount `json:"maxProfit"`
	MaxLoss        types.Amount `json:"maxLoss"`
}

type TransactionWithMetrics struct {
	types.Transaction
	Metrics RiskMetrics `json:"metrics"`
}
