package controllers

import (
	"github.com/gofiber/fiber/v2"

	"optifolio.app/services"
	"optifolio.app/types"
)

type PortfolioController struct {
}

func NewPortfolioController() *PortfolioController { return &PortfolioController{} }

// GetPortfolio godoc
//
//	@Summary		Portfolio roll-up
//	@Description	Per-category and whole-portfolio totals, normalised to EUR with the daily rates. Unlimited risk is reported as the "-Infinity" token; when rates are missing or stale the summary is flagged degraded.
//	@Tags			Portfolio
//	@Produce		json
//	@Success		200	{object}	types.Response{data=dto.PortfolioSummary}
//	@Failure		500	{object}	types.Response
//	@Router			/portfolio [get]
func (pc *PortfolioController) GetPortfolio(c *fiber.Ctx) error {
	transactions, err := services.LoadTransactions()
	if err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to load transactions: " + err.Error(),
		})
	}

	rates := services.Fx.GetRates()
	return c.JSON(types.Response{
		Success: true,
		Data:    services.Summarize(transactions, rates),
	})
}

func InitPortfolioRoutes(app *fiber.App) {
	portfolioController := NewPortfolioController()

	app.Get("/portfolio", portfolioController.GetPortfolio)
}
