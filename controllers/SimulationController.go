package controllers

import (
	"errors"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"optifolio.app/dto"
	"optifolio.app/services"
	"optifolio.app/types"
)

type SimulationController struct {
}

func NewSimulationController() *SimulationController { return &SimulationController{} }

// payoffWindow resolves the price window from query params: explicit min/max
// override the default ±100% band, and an optional zoom factor rescales the
// window around the reference price.
func payoffWindow(c *fiber.Ctx, referencePrice float64) (float64, float64, int, error) {
	min, max := services.DefaultRange(referencePrice)

	if raw := c.Query("min"); raw != "" {
		v, err := parseFinite(raw)
		if err != nil {
			return 0, 0, 0, errors.New("invalid min parameter")
		}
		min = v
	}
	if raw := c.Query("max"); raw != "" {
		v, err := parseFinite(raw)
		if err != nil {
			return 0, 0, 0, errors.New("invalid max parameter")
		}
		max = v
	}
	if raw := c.Query("zoom"); raw != "" {
		factor, err := parseFinite(raw)
		if err != nil || factor <= 0 {
			return 0, 0, 0, errors.New("invalid zoom parameter")
		}
		min, max = services.Zoom(min, max, referencePrice, factor)
	}

	points := services.DefaultNumPoints
	if raw := c.Query("points"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 2 || v > 10001 {
			return 0, 0, 0, errors.New("invalid points parameter")
		}
		points = v
	}
	return min, max, points, nil
}

// parseFinite parses a query number, rejecting the NaN and Inf spellings
// strconv accepts. Non-finite bounds have no meaningful curve and NaN cannot
// be serialised to JSON.
func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

// GetTransactionPayoff godoc
//
//	@Summary		Simulate one position
//	@Description	Sweeps the position's P&L over a price range (default 0 to twice the reference price).
//	@Tags			Simulation
//	@Produce		json
//	@Param			id		path	string	true	"Transaction id"
//	@Param			min		query	number	false	"Range lower bound"
//	@Param			max		query	number	false	"Range upper bound"
//	@Param			zoom	query	number	false	"Zoom factor around the reference price"
//	@Param			points	query	int		false	"Sample count (default 201)"
//	@Success		200	{object}	types.Response{data=dto.PayoffResponse}
//	@Failure		400	{object}	types.Response
//	@Failure		404	{object}	types.Response
//	@Router			/transactions/{id}/payoff [get]
func (sc *SimulationController) GetTransactionPayoff(c *fiber.Ctx) error {
	transaction, err := services.GetTransaction(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(types.Response{
				Success: false,
				Error:   "Transaction not found",
			})
		}
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to load transaction: " + err.Error(),
		})
	}

	ref := transaction.ReferencePrice()
	min, max, points, err := payoffWindow(c, ref)
	if err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   err.Error(),
		})
	}

	curve := services.Simulate([]types.Transaction{*transaction}, min, max, points)
	return c.JSON(types.Response{
		Success: true,
		Data: dto.PayoffResponse{
			Symbol:         transaction.Symbol,
			Currency:       transaction.Currency,
			ReferencePrice: ref,
			PriceMin:       min,
			PriceMax:       max,
			Curve:          curve,
		},
	})
}

// GetStrategies godoc
//
//	@Summary		List multi-leg strategies
//	@Description	Symbols with at least two transactions, with the default simulation reference price.
//	@Tags			Strategies
//	@Produce		json
//	@Success		200	{object}	types.Response{data=[]dto.StrategyInfo}
//	@Router			/strategies [get]
func (sc *SimulationController) GetStrategies(c *fiber.Ctx) error {
	transactions, err := services.LoadTransactions()
	if err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to load transactions: " + err.Error(),
		})
	}
	return c.JSON(types.Response{
		Success: true,
		Data:    services.Strategies(transactions),
	})
}

// GetStrategyPayoff godoc
//
//	@Summary		Simulate a strategy
//	@Description	Sweeps the combined P&L of every leg of a symbol over a shared price range.
//	@Tags			Strategies
//	@Produce		json
//	@Param			symbol	path	string	true	"Ticker"
//	@Param			price	query	number	false	"Reference price (default: max leg reference)"
//	@Param			zoom	query	number	false	"Zoom factor around the reference price"
//	@Param			points	query	int		false	"Sample count (default 201)"
//	@Success		200	{object}	types.Response{data=dto.PayoffResponse}
//	@Failure		400	{object}	types.Response
//	@Failure		404	{object}	types.Response
//	@Router			/strategies/{symbol}/payoff [get]
func (sc *SimulationController) GetStrategyPayoff(c *fiber.Ctx) error {
	legs, ok := sc.loadLegs(c)
	if !ok {
		return nil
	}

	ref := services.DefaultStrategyPrice(legs)
	if raw := c.Query("price"); raw != "" {
		v, err := parseFinite(raw)
		if err != nil {
			return c.Status(400).JSON(types.Response{
				Success: false,
				Error:   "invalid price parameter",
			})
		}
		ref = v
	}

	min, max, points, err := payoffWindow(c, ref)
	if err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   err.Error(),
		})
	}

	curve := services.Simulate(legs, min, max, points)
	return c.JSON(types.Response{
		Success: true,
		Data: dto.PayoffResponse{
			Symbol:         legs[0].Symbol,
			Currency:       legs[0].Currency,
			ReferencePrice: ref,
			PriceMin:       min,
			PriceMax:       max,
			Curve:          curve,
		},
	})
}

// AnalyzeStrategy godoc
//
//	@Summary		Explain a strategy
//	@Description	Asks Gemini to name the strategy formed by the symbol's legs and explain its risk profile.
//	@Tags			Strategies
//	@Produce		json
//	@Param			symbol	path	string	true	"Ticker"
//	@Success		200	{object}	types.Response{data=dto.StrategyAnalysisResponse}
//	@Failure		404	{object}	types.Response
//	@Failure		502	{object}	types.Response
//	@Failure		503	{object}	types.Response
//	@Router			/strategies/{symbol}/analysis [get]
func (sc *SimulationController) AnalyzeStrategy(c *fiber.Ctx) error {
	legs, ok := sc.loadLegs(c)
	if !ok {
		return nil
	}

	analysis, err := services.AnalyzeStrategy(c.Context(), legs)
	if err != nil {
		if errors.Is(err, services.ErrAnalysisUnavailable) {
			return c.Status(503).JSON(types.Response{
				Success: false,
				Error:   "Strategy analysis is not configured",
			})
		}
		log.Warnf("Strategy analysis failed: %v", err)
		return c.Status(502).JSON(types.Response{
			Success: false,
			Error:   "Strategy analysis failed: " + err.Error(),
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data: dto.StrategyAnalysisResponse{
			Symbol:   legs[0].Symbol,
			Analysis: analysis,
		},
	})
}

// loadLegs fetches the legs of the requested symbol. When it returns ok ==
// false the error response has already been written.
func (sc *SimulationController) loadLegs(c *fiber.Ctx) ([]types.Transaction, bool) {
	transactions, err := services.LoadTransactions()
	if err != nil {
		_ = c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to load transactions: " + err.Error(),
		})
		return nil, false
	}
	legs := services.TransactionsForSymbol(transactions, c.Params("symbol"))
	if len(legs) == 0 {
		_ = c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "No transactions for symbol " + c.Params("symbol"),
		})
		return nil, false
	}
	return legs, true
}

func InitSimulationRoutes(app *fiber.App) {
	sc := NewSimulationController()

	app.Get("/transactions/:id/payoff", sc.GetTransactionPayoff)
	app.Get("/strategies", sc.GetStrategies)
	app.Get("/strategies/:symbol/payoff", sc.GetStrategyPayoff)
	app.Get("/strategies/:symbol/analysis", sc.AnalyzeStrategy)
}
