package services

import (
	"sort"

	"optifolio.app/dto"
	"optifolio.app/types"
)

// GroupBySymbol buckets transactions per ticker, preserving input order
// within each bucket.
func GroupBySymbol(transactions []types.Transaction) map[string][]types.Transaction {
	groups := make(map[string][]types.Transaction)
	for _, t := range transactions {
		groups[t.Symbol] = append(groups[t.Symbol], t)
	}
	return groups
}

// TransactionsForSymbol snapshots the legs of one symbol.
func TransactionsForSymbol(transactions []types.Transaction, symbol string) []types.Transaction {
	var legs []types.Transaction
	for _, t := range transactions {
		if t.Symbol == symbol {
			legs = append(legs, t)
		}
	}
	return legs
}

// Strategies lists the symbols with at least two transactions, each with its
// default reference price: the largest per-leg reference price, so the
// default window covers every leg.
func Strategies(transactions []types.Transaction) []dto.StrategyInfo {
	infos := []dto.StrategyInfo{}
	for symbol, legs := range GroupBySymbol(transactions) {
		if len(legs) < 2 {
			continue
		}
		infos = append(infos, dto.StrategyInfo{
			Symbol:       symbol,
			Name:         legs[0].DisplayName(),
			Legs:         len(legs),
			DefaultPrice: DefaultStrategyPrice(legs),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Symbol < infos[j].Symbol })
	return infos
}

// DefaultStrategyPrice is the maximum reference price across the legs.
func DefaultStrategyPrice(legs []types.Transaction) float64 {
	var max float64
	for _, t := range legs {
		ref := t.ReferencePrice()
		if t.IsOption() && t.StrikePrice > ref {
			ref = t.StrikePrice
		}
		if ref > max {
			max = ref
		}
	}
	return max
}

// Summarize rolls every transaction up into per-category and whole-portfolio
// totals, normalised to EUR with the given rates. It is a pure recomputation:
// calling it twice with the same inputs yields the same summary, nothing
// accumulates across calls.
func Summarize(transactions []types.Transaction, rates *dto.FxRates) dto.PortfolioSummary {
	summary := dto.PortfolioSummary{
		Stocks:            dto.CategoryAggregate{RiskExposure: types.Bounded(0)},
		BoughtOptions:     dto.CategoryAggregate{RiskExposure: types.Bounded(0)},
		SoldOptions:       dto.CategoryAggregate{RiskExposure: types.Bounded(0)},
		TotalRiskExposure: types.Bounded(0),
		Shares:            []dto.PositionShare{},
		Rates:             rates,
	}
	if rates == nil || rates.Stale {
		summary.RatesDegraded = true
	}

	type positionWeight struct {
		share dto.PositionShare
		base  float64
	}
	var weights []positionWeight
	var totalExposureBase float64

	for _, t := range transactions {
		m := ComputeRiskMetrics(t)

		invested, ok1 := toEUR(m.InvestedAmount, t.Currency, rates)
		premium, ok2 := toEUR(m.PremiumIncome, t.Currency, rates)
		realized, ok3 := toEUR(m.RealizedIncome, t.Currency, rates)
		if !(ok1 && ok2 && ok3) {
			summary.RatesDegraded = true
		}

		exposure := m.RiskExposure
		if !exposure.IsUnbounded() {
			converted, ok := toEUR(exposure.Value(), t.Currency, rates)
			if !ok {
				summary.RatesDegraded = true
			}
			exposure = types.Bounded(converted)
		}

		var cat *dto.CategoryAggregate
		switch {
		case !t.IsOption():
			cat = &summary.Stocks
		case t.Action == types.ActionBuy:
			cat = &summary.BoughtOptions
		default:
			cat = &summary.SoldOptions
		}
		cat.Invested += invested
		cat.PremiumIncome += premium
		cat.RealizedIncome += realized
		cat.RiskExposure = cat.RiskExposure.Add(exposure)
		cat.Positions++

		// A position's weight in the portfolio is the magnitude of its
		// finite risk, or what was paid in when the risk is unbounded.
		base := invested
		if !exposure.IsUnbounded() {
			base = abs(exposure.Value())
		}
		totalExposureBase += base
		weights = append(weights, positionWeight{
			share: dto.PositionShare{
				TransactionID: t.ID,
				Symbol:        t.Symbol,
				Name:          t.Name,
				Currency:      t.Currency,
				AmountEUR:     base,
			},
			base: base,
		})
	}

	for _, w := range weights {
		if totalExposureBase > 0 {
			w.share.SharePercent = w.base / totalExposureBase * 100
		}
		summary.Shares = append(summary.Shares, w.share)
	}

	summary.TotalInvested = summary.Stocks.Invested + summary.BoughtOptions.Invested + summary.SoldOptions.Invested
	summary.TotalIncome = summary.Stocks.PremiumIncome + summary.Stocks.RealizedIncome +
		summary.BoughtOptions.PremiumIncome + summary.BoughtOptions.RealizedIncome +
		summary.SoldOptions.PremiumIncome + summary.SoldOptions.RealizedIncome
	summary.TotalRiskExposure = summary.Stocks.RiskExposure.
		Add(summary.BoughtOptions.RiskExposure).
		Add(summary.SoldOptions.RiskExposure)

	if ratio, ok := riskReward(summary.TotalIncome-summary.TotalInvested, summary.TotalRiskExposure); ok {
		summary.RiskReward = &ratio
	}

	return summary
}

// riskReward is net income over absolute exposure, defined only for a finite
// negative exposure and positive net income.
func riskReward(netIncome float64, exposure types.Amount) (float64, bool) {
	if exposure.IsUnbounded() || exposure.Value() >= 0 || netIncome <= 0 {
		return 0, false
	}
	return netIncome / abs(exposure.Value()), true
}

// toEUR converts a foreign amount to EUR by dividing by the EUR-base pair
// rate. When the needed rate is missing the amount is passed through
// unconverted and the caller flags the summary as degraded.
func toEUR(amount float64, currency types.Currency, rates *dto.FxRates) (float64, bool) {
	if currency == types.CurrencyEUR || amount == 0 {
		return amount, true
	}
	if rates == nil {
		return amount, false
	}
	var rate float64
	switch currency {
	case types.CurrencyUSD:
		rate = rates.EURUSD
	case types.CurrencyCHF:
		rate = rates.EURCHF
	}
	if rate <= 0 {
		return amount, false
	}
	return amount / rate, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
