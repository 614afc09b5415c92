package types

import (
	"strings"
	"time"
)

type AssetType string

const (
	AssetStock AssetType = "Stock"
	AssetCall  AssetType = "Call Option"
	AssetPut   AssetType = "Put Option"
)

type Action string

const (
	ActionBuy  Action = "Buy"
	ActionSell Action = "Sell"
)

type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyCHF Currency = "CHF"
)

// ContractMultiplier is the share count behind one option contract. It has to
// be applied identically everywhere options are valued.
const ContractMultiplier = 100.0

// Transaction is an immutable economic event. Exactly one of the stock field
// group (TransactionPrice) or the option field group (StrikePrice, Premium,
// UnderlyingAssetPrice, ExpiryDate) is populated, determined by AssetType;
// the input boundary enforces this before a transaction reaches the models.
type Transaction struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	AssetType       AssetType `gorm:"not null" json:"assetType"`
	Action          Action    `gorm:"not null" json:"action"`
	Symbol          string    `gorm:"not null;index" json:"symbol"`
	Name            string    `json:"name,omitempty"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	Currency        Currency  `gorm:"not null" json:"currency"`
	Fees            float64   `gorm:"not null;default:0" json:"fees"`
	TransactionDate string    `json:"transactionDate,omitempty"`

	// Stock fields.
	TransactionPrice float64 `json:"transactionPrice,omitempty"`

	// Option fields.
	StrikePrice          float64 `json:"strikePrice,omitempty"`
	Premium              float64 `json:"premium,omitempty"`
	UnderlyingAssetPrice float64 `json:"underlyingAssetPrice,omitempty"`
	ExpiryDate           string  `json:"expiryDate,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t Transaction) IsOption() bool {
	return t.AssetType == AssetCall || t.AssetType == AssetPut
}

// Direction is +1 for a buy and -1 for a sell.
func (t Transaction) Direction() float64 {
	if t.Action == ActionSell {
		return -1
	}
	return 1
}

// ReferencePrice is the price the default simulation window is built around:
// the transaction's own price for a stock, the underlying asset price for an
// option, falling back to the strike when no underlying price was recorded.
func (t Transaction) ReferencePrice() float64 {
	if !t.IsOption() {
		return t.TransactionPrice
	}
	if t.UnderlyingAssetPrice > 0 {
		return t.UnderlyingAssetPrice
	}
	return t.StrikePrice
}

// DisplayName is the human-readable name when one was recorded, the ticker
// otherwise.
func (t Transaction) DisplayName() string {
	if strings.TrimSpace(t.Name) != "" {
		return t.Name
	}
	return t.Symbol
}
