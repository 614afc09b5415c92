package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"optifolio.app/types"
)

func TestSimulateLongStock(t *testing.T) {
	tx := stockBuy(100, 10, 2)

	curve := Simulate([]types.Transaction{tx}, 0, 200, DefaultNumPoints)

	assert.Len(t, curve.Prices, DefaultNumPoints)
	assert.Len(t, curve.PNL, DefaultNumPoints)
	assert.Equal(t, 0.0, curve.Prices[0])
	assert.Equal(t, 200.0, curve.Prices[DefaultNumPoints-1])

	// Exactly one breakeven, at the fees-adjusted purchase price.
	assert.Len(t, curve.Breakevens, 1)
	assert.InDelta(t, 102.0, curve.Breakevens[0], 1e-9)

	// Max loss sits at price zero for a long position.
	assert.Equal(t, curve.PNL[0], curve.MaxLoss)
	assert.Equal(t, ComputePNL(0, tx), curve.MaxLoss)
	assert.Equal(t, curve.PNL[DefaultNumPoints-1], curve.MaxProfit)
}

func TestSimulateBreakevensMatchSignChanges(t *testing.T) {
	// Long straddle: bought call + bought put at the same strike. Two
	// breakevens, either side of the strike.
	legs := []types.Transaction{
		option(types.AssetCall, types.ActionBuy, 100, 5, 1, 0),
		option(types.AssetPut, types.ActionBuy, 100, 5, 1, 0),
	}

	curve := Simulate(legs, 0, 200, DefaultNumPoints)

	signChanges := 0
	for i := 1; i < len(curve.PNL); i++ {
		if curve.PNL[i]*curve.PNL[i-1] < 0 {
			signChanges++
		}
	}
	assert.Equal(t, signChanges, len(curve.Breakevens))
	assert.Len(t, curve.Breakevens, 2)
	assert.InDelta(t, 90.0, curve.Breakevens[0], 1.0)
	assert.InDelta(t, 110.0, curve.Breakevens[1], 1.0)
}

func TestSimulateDegenerateRange(t *testing.T) {
	tx := stockBuy(100, 1, 0)

	for _, r := range [][2]float64{{0, 0}, {10, 10}, {10, 5}, {math.NaN(), 100}, {0, math.NaN()}} {
		curve := Simulate([]types.Transaction{tx}, r[0], r[1], DefaultNumPoints)
		assert.Empty(t, curve.Prices)
		assert.Empty(t, curve.PNL)
		assert.Empty(t, curve.Breakevens)
	}
}

func TestSimulateRejectsInfiniteBounds(t *testing.T) {
	tx := stockBuy(100, 1, 0)

	// An infinite bound would turn every sample into ±Inf or NaN, neither
	// of which survives JSON; the sweep yields an empty curve instead.
	for _, r := range [][2]float64{
		{0, math.Inf(1)},
		{math.Inf(-1), 100},
		{math.Inf(-1), math.Inf(1)},
	} {
		curve := Simulate([]types.Transaction{tx}, r[0], r[1], DefaultNumPoints)
		assert.Empty(t, curve.Prices)
		assert.Empty(t, curve.PNL)
		assert.Empty(t, curve.Breakevens)
	}
}

func TestSimulateEmptyTransactionsIsFlat(t *testing.T) {
	curve := Simulate(nil, 0, 100, 11)
	assert.Len(t, curve.PNL, 11)
	for _, pnl := range curve.PNL {
		assert.Equal(t, 0.0, pnl)
	}
	assert.Empty(t, curve.Breakevens)
}

func TestDefaultRange(t *testing.T) {
	min, max := DefaultRange(120)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 240.0, max)

	for _, ref := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		min, max = DefaultRange(ref)
		assert.Equal(t, 0.0, min)
		assert.Equal(t, 0.0, max)
	}
}

func TestZoomKeepsCenterAndClampsAtZero(t *testing.T) {
	// Zooming in around 100 shrinks the window symmetrically.
	min, max := Zoom(0, 200, 100, 0.9)
	assert.InDelta(t, 10.0, min, 1e-9)
	assert.InDelta(t, 190.0, max, 1e-9)

	// Zooming out never pushes the lower bound below zero.
	min, max = Zoom(0, 200, 100, 1.5)
	assert.Equal(t, 0.0, min)
	assert.InDelta(t, 250.0, max, 1e-9)
}

func TestSimulateNaNInputDoesNotPanic(t *testing.T) {
	tx := stockBuy(math.NaN(), 10, 2)
	assert.NotPanics(t, func() {
		curve := Simulate([]types.Transaction{tx}, 0, 200, 21)
		assert.Len(t, curve.PNL, 21)
		assert.Empty(t, curve.Breakevens)
	})
}

func TestSimulateDefaultUsesReferencePrice(t *testing.T) {
	tx := option(types.AssetCall, types.ActionBuy, 50, 2, 1, 0)
	tx.UnderlyingAssetPrice = 60

	curve := SimulateDefault(tx)
	assert.Equal(t, 0.0, curve.Prices[0])
	assert.InDelta(t, 120.0, curve.Prices[len(curve.Prices)-1], 1e-9)
}
