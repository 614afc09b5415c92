package services

import (
	"math"

	"optifolio.app/dto"
	"optifolio.app/types"
)

// DefaultNumPoints is the sample count of a payoff sweep. Finer sampling
// buys breakeven precision at the cost of compute.
const DefaultNumPoints = 201

// DefaultRange is the symmetric ±100% band around a reference price. A
// non-positive or non-finite reference collapses to a zero-width range, which
// Simulate renders as an empty curve.
func DefaultRange(referencePrice float64) (float64, float64) {
	if math.IsNaN(referencePrice) || math.IsInf(referencePrice, 0) || referencePrice <= 0 {
		return 0, 0
	}
	return 0, 2 * referencePrice
}

// Zoom rescales a price window around a fixed center by a multiplicative
// factor, keeping the point count unchanged. The lower bound never goes
// below zero.
func Zoom(priceMin, priceMax, center, factor float64) (float64, float64) {
	newMin := center + (priceMin-center)*factor
	newMax := center + (priceMax-center)*factor
	if newMin < 0 {
		newMin = 0
	}
	return newMin, newMax
}

// Simulate sweeps the summed P&L of the given transactions over
// [priceMin, priceMax] with numPoints equally spaced samples, tracking the
// curve extremes and every breakeven. A breakeven is recorded wherever two
// consecutive samples have P&L of opposite sign, located by linear
// interpolation between them; the count is therefore bounded by the sample
// resolution, which is a documented precision limit rather than a bug.
//
// The input slice is snapshot before sweeping so overlapping re-renders never
// observe a half-updated list. Degenerate ranges produce an empty curve.
func Simulate(transactions []types.Transaction, priceMin, priceMax float64, numPoints int) dto.PayoffCurve {
	if numPoints < 2 {
		numPoints = DefaultNumPoints
	}
	if math.IsNaN(priceMin) || math.IsInf(priceMin, 0) ||
		math.IsNaN(priceMax) || math.IsInf(priceMax, 0) || priceMax <= priceMin {
		return dto.PayoffCurve{Prices: []float64{}, PNL: []float64{}, Breakevens: []float64{}}
	}

	snapshot := make([]types.Transaction, len(transactions))
	copy(snapshot, transactions)

	step := (priceMax - priceMin) / float64(numPoints-1)

	curve := dto.PayoffCurve{
		Prices:     make([]float64, 0, numPoints),
		PNL:        make([]float64, 0, numPoints),
		Breakevens: []float64{},
		MaxProfit:  math.Inf(-1),
		MaxLoss:    math.Inf(1),
	}

	for i := 0; i < numPoints; i++ {
		price := priceMin + float64(i)*step

		var total float64
		for _, t := range snapshot {
			total += ComputePNL(price, t)
		}

		curve.Prices = append(curve.Prices, price)
		curve.PNL = append(curve.PNL, total)
		if total > curve.MaxProfit {
			curve.MaxProfit = total
		}
		if total < curve.MaxLoss {
			curve.MaxLoss = total
		}

		if i > 0 && curve.PNL[i]*curve.PNL[i-1] < 0 {
			prevPrice := priceMin + float64(i-1)*step
			prevPnl := curve.PNL[i-1]
			crossing := prevPrice - prevPnl*(price-prevPrice)/(total-prevPnl)
			curve.Breakevens = append(curve.Breakevens, crossing)
		}
	}

	return curve
}

// SimulateDefault sweeps one transaction over its own default range.
func SimulateDefault(t types.Transaction) dto.PayoffCurve {
	min, max := DefaultRange(t.ReferencePrice())
	return Simulate([]types.Transaction{t}, min, max, DefaultNumPoints)
}
