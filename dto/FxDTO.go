package dto

import "time"

// FxRates are EUR-base daily rates: 1 EUR buys EURUSD dollars. Converting a
// foreign amount to EUR is therefore a division by the pair rate.
type FxRates struct {
	EURUSD float64   `json:"eurusd"`
	EURCHF float64   `json:"eurchf"`
	AsOf   time.Time `json:"asOf"`
	Stale  bool      `json:"stale,omitempty"`
}
