package dto

// SymbolMatch is one hit of the symbol search, whichever provider produced it.
type SymbolMatch struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
	Source string `json:"source"`
}

// ConfigResponse reports the API keys the server carries so a browser client
// can skip asking the user for them.
type ConfigResponse struct {
	GeminiApiKey       string `json:"geminiApiKey"`
	AlphaVantageApiKey string `json:"alphaVantageApiKey"`
	FmpApiKey          string `json:"fmpApiKey"`
	FinnhubApiKey      string `json:"finnhubApiKey"`
}
