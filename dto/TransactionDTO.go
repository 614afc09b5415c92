package dto

// TransactionRequest is the form payload for creating or updating a
// transaction. Field-group rules that depend on the asset type (stock price
// vs. strike/premium) are checked separately after tag validation.
type TransactionRequest struct {
	AssetType       string  `json:"assetType" validate:"required,oneof=Stock 'Call Option' 'Put Option'"`
	Action          string  `json:"action" validate:"required,oneof=Buy Sell"`
	Symbol          string  `json:"symbol" validate:"required"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity" validate:"required,gt=0"`
	Currency        string  `json:"currency" validate:"required,oneof=EUR USD CHF"`
	Fees            float64 `json:"fees" validate:"gte=0"`
	TransactionDate string  `json:"transactionDate"`

	TransactionPrice float64 `json:"transactionPrice" validate:"gte=0"`

	StrikePrice          float64 `json:"strikePrice" validate:"gte=0"`
	Premium              float64 `json:"premium" validate:"gte=0"`
	UnderlyingAssetPrice float64 `json:"underlyingAssetPrice" validate:"gte=0"`
	ExpiryDate           string  `json:"expiryDate"`
}
