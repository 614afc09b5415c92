package types

import (
	"encoding/json"
	"fmt"
	"math"
)

// Amount is a monetary value that may be theoretically unbounded in either
// direction. Unbounded values are carried as an explicit tag, never as an
// IEEE-754 infinity, so they survive JSON (which has no infinity literal):
// they marshal to the string tokens "Infinity" and "-Infinity".
type Amount struct {
	value float64
	inf   int // -1 unbounded loss, 0 finite, +1 unbounded profit
}

func Bounded(v float64) Amount { return Amount{value: v} }
func UnboundedLoss() Amount    { return Amount{inf: -1} }
func UnboundedProfit() Amount  { return Amount{inf: 1} }

func (a Amount) IsUnbounded() bool     { return a.inf != 0 }
func (a Amount) IsUnboundedLoss() bool { return a.inf < 0 }

// Value returns the finite value, or ±Inf for unbounded amounts. Callers that
// care about the tag should check IsUnbounded first.
func (a Amount) Value() float64 {
	if a.inf != 0 {
		return math.Inf(a.inf)
	}
	return a.value
}

// Add sums two amounts. An unbounded operand makes the result unbounded;
// -Infinity wins over +Infinity, matching how a portfolio with any position
// of unlimited loss is itself unlimited-loss.
func (a Amount) Add(b Amount) Amount {
	if a.inf < 0 || b.inf < 0 {
		return UnboundedLoss()
	}
	if a.inf > 0 || b.inf > 0 {
		return UnboundedProfit()
	}
	return Bounded(a.value + b.value)
}

func (a Amount) String() string {
	switch a.inf {
	case -1:
		return "-∞"
	case 1:
		return "∞"
	}
	return fmt.Sprintf("%.2f", a.value)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	switch a.inf {
	case -1:
		return []byte(`"-Infinity"`), nil
	case 1:
		return []byte(`"Infinity"`), nil
	}
	return json.Marshal(a.value)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*a = Bounded(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("amount is neither a number nor a token: %s", data)
	}
	switch s {
	case "-Infinity":
		*a = UnboundedLoss()
	case "Infinity":
		*a = UnboundedProfit()
	default:
		return fmt.Errorf("unknown amount token %q", s)
	}
	return nil
}
