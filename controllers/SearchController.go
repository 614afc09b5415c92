package controllers

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"optifolio.app/dto"
	"optifolio.app/quotes"
	"optifolio.app/services"
	"optifolio.app/types"
)

type SearchController struct {
	chain *quotes.Chain
}

func NewSearchController() *SearchController {
	return &SearchController{chain: quotes.NewChainFromEnv()}
}

// SearchSymbols godoc
//
//	@Summary		Symbol search
//	@Description	Suggests tickers for a query: the user's own transactions first, then the external provider chain (FMP, Alpha Vantage, Finnhub) with per-provider fallback.
//	@Tags			Search
//	@Produce		json
//	@Param			q	query	string	true	"Search query"
//	@Success		200	{object}	types.Response{data=[]dto.SymbolMatch}
//	@Failure		400	{object}	types.Response
//	@Router			/search [get]
func (sc *SearchController) SearchSymbols(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Missing q parameter",
		})
	}

	if local := sc.localMatches(query); len(local) > 0 {
		return c.JSON(types.Response{
			Success: true,
			Data:    local,
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    sc.chain.Search(c.Context(), query),
	})
}

// localMatches suggests symbols already present in the portfolio, one entry
// per symbol, only when a display name was recorded for it.
func (sc *SearchController) localMatches(query string) []dto.SymbolMatch {
	transactions, err := services.LoadTransactions()
	if err != nil {
		return nil
	}

	query = strings.ToUpper(query)
	seen := make(map[string]bool)
	var matches []dto.SymbolMatch
	for _, t := range transactions {
		if seen[t.Symbol] || t.Name == "" || !strings.Contains(t.Symbol, query) {
			continue
		}
		seen[t.Symbol] = true
		matches = append(matches, dto.SymbolMatch{
			Symbol: t.Symbol,
			Name:   t.Name,
			Source: "local",
		})
	}
	return matches
}

// GetConfig godoc
//
//	@Summary		Server-held API keys
//	@Description	Returns the API keys configured on the server so the browser client can skip prompting for them.
//	@Tags			Search
//	@Produce		json
//	@Success		200	{object}	dto.ConfigResponse
//	@Router			/api/config [get]
func (sc *SearchController) GetConfig(c *fiber.Ctx) error {
	return c.JSON(dto.ConfigResponse{
		GeminiApiKey:       os.Getenv("GEMINI_API_KEY"),
		AlphaVantageApiKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
		FmpApiKey:          os.Getenv("FMP_API_KEY"),
		FinnhubApiKey:      os.Getenv("FINNHUB_API_KEY"),
	})
}

func InitSearchRoutes(app *fiber.App) {
	sc := NewSearchController()

	app.Get("/search", sc.SearchSymbols)
	app.Get("/api/config", sc.GetConfig)
}
