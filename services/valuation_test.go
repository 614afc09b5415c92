package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"optifolio.app/types"
)

func stockBuy(price float64, qty int, fees float64) types.Transaction {
	return types.Transaction{
		ID: "t1", AssetType: types.AssetStock, Action: types.ActionBuy,
		Symbol: "ACME", Quantity: qty, Currency: types.CurrencyEUR,
		Fees: fees, TransactionPrice: price,
	}
}

func option(asset types.AssetType, action types.Action, strike, premium float64, qty int, fees float64) types.Transaction {
	return types.Transaction{
		ID: "o1", AssetType: asset, Action: action,
		Symbol: "ACME", Quantity: qty, Currency: types.CurrencyEUR,
		Fees: fees, StrikePrice: strike, Premium: premium,
	}
}

func TestStockBuyMetrics(t *testing.T) {
	// Buy 10 shares at 100 with 2 per-share fees.
	tx := stockBuy(100, 10, 2)
	m := ComputeRiskMetrics(tx)

	assert.Equal(t, 1020.0, m.InvestedAmount)
	assert.Equal(t, types.Bounded(-1020.0), m.RiskExposure)
	assert.Equal(t, 102.0, m.BreakEven)
	assert.Equal(t, 0.0, m.PremiumIncome)
	assert.Equal(t, 0.0, m.RealizedIncome)
	assert.Equal(t, types.UnboundedProfit(), m.MaxProfit)
	assert.Equal(t, types.Bounded(-1020.0), m.MaxLoss)

	assert.Equal(t, 80.0, ComputePNL(110, tx))
}

func TestStockSellMetrics(t *testing.T) {
	tx := stockBuy(100, 10, 2)
	tx.Action = types.ActionSell
	m := ComputeRiskMetrics(tx)

	assert.Equal(t, 0.0, m.InvestedAmount)
	assert.Equal(t, 980.0, m.RealizedIncome)
	assert.Equal(t, types.Bounded(0), m.RiskExposure)
	assert.Equal(t, 98.0, m.BreakEven)
	assert.True(t, m.MaxLoss.IsUnboundedLoss())
}

func TestSoldCallMetrics(t *testing.T) {
	// Sell 1 call contract, strike 50, premium 2, fee 1.
	tx := option(types.AssetCall, types.ActionSell, 50, 2, 1, 1)
	m := ComputeRiskMetrics(tx)

	assert.Equal(t, 199.0, m.PremiumIncome)
	assert.True(t, m.RiskExposure.IsUnboundedLoss())
	assert.Equal(t, 52.0, m.BreakEven)
	assert.Equal(t, types.Bounded(199.0), m.MaxProfit)

	// Below the strike the writer keeps the whole premium; in the money
	// every unit of intrinsic value costs 100 per contract.
	assert.Equal(t, 199.0, ComputePNL(45, tx))
	assert.Equal(t, -801.0, ComputePNL(60, tx))
}

func TestSoldPutMetrics(t *testing.T) {
	tx := option(types.AssetPut, types.ActionSell, 50, 2, 1, 1)
	m := ComputeRiskMetrics(tx)

	assert.Equal(t, 199.0, m.PremiumIncome)
	assert.Equal(t, types.Bounded(-(50.0*100 - 199.0)), m.RiskExposure)
	assert.Equal(t, 48.0, m.BreakEven)
	assert.Equal(t, types.Bounded(-((50.0-2)*100 + 1)), m.MaxLoss)
}

func TestBoughtOptionMetrics(t *testing.T) {
	call := option(types.AssetCall, types.ActionBuy, 50, 2, 1, 1)
	m := ComputeRiskMetrics(call)
	assert.Equal(t, 201.0, m.InvestedAmount)
	assert.Equal(t, types.Bounded(-201.0), m.RiskExposure)
	assert.Equal(t, 52.0, m.BreakEven)
	assert.Equal(t, types.UnboundedProfit(), m.MaxProfit)

	put := option(types.AssetPut, types.ActionBuy, 50, 2, 1, 1)
	m = ComputeRiskMetrics(put)
	assert.Equal(t, 48.0, m.BreakEven)
	assert.Equal(t, types.Bounded((50.0-2)*100-1), m.MaxProfit)
}

// P&L at the breakeven price is zero for every asset/action combination.
// Fees shift the stock breakeven but never the option one, so the option
// cases use zero fees.
func TestBreakEvenIsZeroPNL(t *testing.T) {
	cases := []types.Transaction{
		stockBuy(100, 10, 2),
		func() types.Transaction { tx := stockBuy(100, 10, 2); tx.Action = types.ActionSell; return tx }(),
		option(types.AssetCall, types.ActionBuy, 50, 2, 3, 0),
		option(types.AssetCall, types.ActionSell, 50, 2, 3, 0),
		option(types.AssetPut, types.ActionBuy, 50, 2, 3, 0),
		option(types.AssetPut, types.ActionSell, 50, 2, 3, 0),
	}
	for _, tx := range cases {
		m := ComputeRiskMetrics(tx)
		assert.InDelta(t, 0, ComputePNL(m.BreakEven, tx), 1e-9,
			"pnl at breakeven for %s %s", tx.AssetType, tx.Action)
	}
}

func TestStockPNLMonotonicity(t *testing.T) {
	long := stockBuy(100, 5, 1)
	short := stockBuy(100, 5, 1)
	short.Action = types.ActionSell

	prev := ComputePNL(0, long)
	prevShort := ComputePNL(0, short)
	for price := 1.0; price <= 200; price++ {
		curr := ComputePNL(price, long)
		assert.GreaterOrEqual(t, curr, prev)
		prev = curr

		currShort := ComputePNL(price, short)
		assert.LessOrEqual(t, currShort, prevShort)
		prevShort = currShort
	}
}

func TestContractMultiplierAppliedConsistently(t *testing.T) {
	// The same economics with 2 contracts doubles the P&L of 1 contract.
	one := option(types.AssetCall, types.ActionBuy, 50, 2, 1, 0)
	two := option(types.AssetCall, types.ActionBuy, 50, 2, 2, 0)

	for _, price := range []float64{0, 40, 50, 52, 60, 100} {
		assert.Equal(t, 2*ComputePNL(price, one), ComputePNL(price, two))
	}

	// And one contract moves 100 monetary units per unit of intrinsic value.
	assert.Equal(t, ComputePNL(53, one)-ComputePNL(52, one), 100.0)
}
