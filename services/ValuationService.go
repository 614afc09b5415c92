package services

import (
	"math"

	"optifolio.app/dto"
	"optifolio.app/types"
)

// ComputePNL returns the instantaneous profit or loss of one transaction at a
// hypothetical underlying price. Options are valued at bare intrinsic value
// (a terminal, expiry-style payoff): no time value, no discounting. Fees are
// charged per unit and always reduce the result.
func ComputePNL(price float64, t types.Transaction) float64 {
	qty := float64(t.Quantity)
	dir := t.Direction()

	if !t.IsOption() {
		return (price-t.TransactionPrice)*qty*dir - t.Fees*qty
	}

	var intrinsic float64
	switch t.AssetType {
	case types.AssetCall:
		intrinsic = math.Max(0, price-t.StrikePrice)
	case types.AssetPut:
		intrinsic = math.Max(0, t.StrikePrice-price)
	}
	return (intrinsic-t.Premium)*qty*types.ContractMultiplier*dir - t.Fees*qty
}

// ComputeRiskMetrics returns the static figures of one transaction. Risk
// exposure of an uncovered call is the unbounded-loss tag, not a number;
// everything downstream has to carry it as such.
func ComputeRiskMetrics(t types.Transaction) dto.RiskMetrics {
	qty := float64(t.Quantity)

	if !t.IsOption() {
		totalCost := t.TransactionPrice*qty + t.Fees*qty
		if t.Action == types.ActionSell {
			return dto.RiskMetrics{
				RealizedIncome: t.TransactionPrice*qty - t.Fees*qty,
				RiskExposure:   types.Bounded(0),
				BreakEven:      t.TransactionPrice - t.Fees,
				MaxProfit:      types.Bounded(totalCost),
				MaxLoss:        types.UnboundedLoss(),
			}
		}
		return dto.RiskMetrics{
			InvestedAmount: totalCost,
			RiskExposure:   types.Bounded(-totalCost),
			BreakEven:      t.TransactionPrice + t.Fees,
			MaxProfit:      types.UnboundedProfit(),
			MaxLoss:        types.Bounded(-totalCost),
		}
	}

	premiumTotal := t.Premium * qty * types.ContractMultiplier
	feesTotal := t.Fees * qty

	breakEven := t.StrikePrice + t.Premium
	if t.AssetType == types.AssetPut {
		breakEven = t.StrikePrice - t.Premium
	}

	if t.Action == types.ActionBuy {
		invested := premiumTotal + feesTotal
		m := dto.RiskMetrics{
			InvestedAmount: invested,
			RiskExposure:   types.Bounded(-invested),
			BreakEven:      breakEven,
			MaxLoss:        types.Bounded(-invested),
		}
		if t.AssetType == types.AssetCall {
			m.MaxProfit = types.UnboundedProfit()
		} else {
			m.MaxProfit = types.Bounded((t.StrikePrice-t.Premium)*qty*types.ContractMultiplier - feesTotal)
		}
		return m
	}

	income := premiumTotal - feesTotal
	m := dto.RiskMetrics{
		PremiumIncome: income,
		BreakEven:     breakEven,
		MaxProfit:     types.Bounded(income),
	}
	if t.AssetType == types.AssetCall {
		// Uncovered call: no cap on how far the underlying can rise.
		m.RiskExposure = types.UnboundedLoss()
		m.MaxLoss = types.UnboundedLoss()
	} else {
		m.RiskExposure = types.Bounded(-(t.StrikePrice*qty*types.ContractMultiplier - income))
		m.MaxLoss = types.Bounded(-((t.StrikePrice-t.Premium)*qty*types.ContractMultiplier + feesTotal))
	}
	return m
}
