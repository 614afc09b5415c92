package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"optifolio.app/dto"
	"optifolio.app/services"
	"optifolio.app/types"
)

type TransactionController struct {
	validator *validator.Validate
}

func NewTransactionController() *TransactionController {
	return &TransactionController{validator: validator.New()}
}

// GetAllTransactions godoc
//
//	@Summary		List transactions
//	@Description	Returns every recorded transaction together with its computed risk metrics.
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	types.Response{data=[]dto.TransactionWithMetrics}
//	@Failure		500	{object}	types.Response
//	@Router			/transactions [get]
func (tc *TransactionController) GetAllTransactions(c *fiber.Ctx) error {
	transactions, err := services.LoadTransactions()
	if err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to load transactions: " + err.Error(),
		})
	}

	withMetrics := make([]dto.TransactionWithMetrics, 0, len(transactions))
	for _, t := range transactions {
		withMetrics = append(withMetrics, dto.TransactionWithMetrics{
			Transaction: t,
			Metrics:     services.ComputeRiskMetrics(t),
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    withMetrics,
	})
}

// CreateTransaction godoc
//
//	@Summary		Record a transaction
//	@Description	Validates and stores a new buy/sell transaction. A fresh id is assigned.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.TransactionRequest	true	"Transaction data"
//	@Success		201		{object}	types.Response{data=dto.TransactionWithMetrics}
//	@Failure		400		{object}	types.Response
//	@Failure		500		{object}	types.Response
//	@Router			/transactions [post]
func (tc *TransactionController) CreateTransaction(c *fiber.Ctx) error {
	transaction, errResp := tc.parseAndValidate(c)
	if errResp != nil {
		return c.Status(400).JSON(*errResp)
	}

	transaction.ID = uuid.NewString()
	if err := services.CreateTransaction(transaction); err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to store transaction: " + err.Error(),
		})
	}

	return c.Status(201).JSON(types.Response{
		Success: true,
		Data: dto.TransactionWithMetrics{
			Transaction: *transaction,
			Metrics:     services.ComputeRiskMetrics(*transaction),
		},
	})
}

// UpdateTransaction godoc
//
//	@Summary		Update a transaction
//	@Description	Replaces every field of the stored transaction wholesale, keeping its id.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Transaction id"
//	@Param			body	body		dto.TransactionRequest	true	"Replacement data"
//	@Success		200		{object}	types.Response{data=dto.TransactionWithMetrics}
//	@Failure		400		{object}	types.Response
//	@Failure		404		{object}	types.Response
//	@Router			/transactions/{id} [put]
func (tc *TransactionController) UpdateTransaction(c *fiber.Ctx) error {
	id := c.Params("id")

	transaction, errResp := tc.parseAndValidate(c)
	if errResp != nil {
		return c.Status(400).JSON(*errResp)
	}

	transaction.ID = id
	if err := services.UpdateTransaction(transaction); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(types.Response{
				Success: false,
				Error:   "Transaction not found",
			})
		}
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to update transaction: " + err.Error(),
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data: dto.TransactionWithMetrics{
			Transaction: *transaction,
			Metrics:     services.ComputeRiskMetrics(*transaction),
		},
	})
}

// DeleteTransaction godoc
//
//	@Summary	Delete a transaction
//	@Tags		Transactions
//	@Produce	json
//	@Param		id	path		string	true	"Transaction id"
//	@Success	200	{object}	types.Response{data=string}
//	@Failure	404	{object}	types.Response
//	@Router		/transactions/{id} [delete]
func (tc *TransactionController) DeleteTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := services.DeleteTransaction(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(types.Response{
				Success: false,
				Error:   "Transaction not found",
			})
		}
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to delete transaction: " + err.Error(),
		})
	}
	return c.JSON(types.Response{
		Success: true,
		Data:    "Transaction deleted",
	})
}

// ClearTransactions godoc
//
//	@Summary	Delete all transactions
//	@Tags		Transactions
//	@Produce	json
//	@Success	200	{object}	types.Response{data=string}
//	@Router		/transactions [delete]
func (tc *TransactionController) ClearTransactions(c *fiber.Ctx) error {
	if err := services.ClearTransactions(); err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to clear transactions: " + err.Error(),
		})
	}
	return c.JSON(types.Response{
		Success: true,
		Data:    "All transactions deleted",
	})
}

// ExportTransactions godoc
//
//	@Summary		Export transactions
//	@Description	Returns the whole collection as a plain JSON array, losslessly re-importable.
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{array}		types.Transaction
//	@Failure		500	{object}	types.Response
//	@Router			/transactions/export [get]
func (tc *TransactionController) ExportTransactions(c *fiber.Ctx) error {
	transactions, err := services.LoadTransactions()
	if err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to load transactions: " + err.Error(),
		})
	}
	return c.JSON(transactions)
}

// ImportTransactions godoc
//
//	@Summary		Import transactions
//	@Description	Merges a JSON array of transactions: known ids are replaced, the rest appended.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		[]types.Transaction	true	"Exported collection"
//	@Success		200		{object}	types.Response{data=string}
//	@Failure		400		{object}	types.Response
//	@Router			/transactions/import [post]
func (tc *TransactionController) ImportTransactions(c *fiber.Ctx) error {
	var imported []types.Transaction
	if err := c.BodyParser(&imported); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid request body: " + err.Error(),
		})
	}

	for i := range imported {
		if imported[i].ID == "" {
			return c.Status(400).JSON(types.Response{
				Success: false,
				Error:   "Imported transaction without id",
			})
		}
		if err := validateShape(imported[i]); err != nil {
			return c.Status(400).JSON(types.Response{
				Success: false,
				Error:   "Transaction " + imported[i].ID + ": " + err.Error(),
			})
		}
	}

	if err := services.MergeTransactions(imported); err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to import transactions: " + err.Error(),
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    "Imported " + strconv.Itoa(len(imported)) + " transactions",
	})
}

func (tc *TransactionController) parseAndValidate(c *fiber.Ctx) (*types.Transaction, *types.Response) {
	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, &types.Response{
			Success: false,
			Error:   "Invalid request body: " + err.Error(),
		}
	}
	if err := tc.validator.Struct(req); err != nil {
		return nil, &types.Response{
			Success: false,
			Error:   "Validation failed: " + err.Error(),
		}
	}

	transaction := fromRequest(req)
	if err := validateShape(*transaction); err != nil {
		return nil, &types.Response{
			Success: false,
			Error:   err.Error(),
		}
	}
	return transaction, nil
}

func fromRequest(req dto.TransactionRequest) *types.Transaction {
	t := &types.Transaction{
		AssetType:       types.AssetType(req.AssetType),
		Action:          types.Action(req.Action),
		Symbol:          strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Name:            strings.TrimSpace(req.Name),
		Quantity:        req.Quantity,
		Currency:        types.Currency(req.Currency),
		Fees:            req.Fees,
		TransactionDate: req.TransactionDate,
	}
	if t.IsOption() {
		t.StrikePrice = req.StrikePrice
		t.Premium = req.Premium
		t.UnderlyingAssetPrice = req.UnderlyingAssetPrice
		t.ExpiryDate = req.ExpiryDate
		if t.UnderlyingAssetPrice == 0 {
			t.UnderlyingAssetPrice = t.StrikePrice
		}
	} else {
		t.TransactionPrice = req.TransactionPrice
	}
	return t
}

// validateShape enforces the field-group invariant: the stock group and the
// option group are mutually exclusive, selected by asset type.
func validateShape(t types.Transaction) error {
	switch t.AssetType {
	case types.AssetStock:
		if t.TransactionPrice <= 0 {
			return errors.New("stock transaction requires a positive transactionPrice")
		}
		if t.StrikePrice != 0 || t.Premium != 0 {
			return errors.New("stock transaction must not carry option fields")
		}
	case types.AssetCall, types.AssetPut:
		if t.StrikePrice <= 0 {
			return errors.New("option transaction requires a positive strikePrice")
		}
		if t.Premium <= 0 {
			return errors.New("option transaction requires a positive premium")
		}
		if t.TransactionPrice != 0 {
			return errors.New("option transaction must not carry a transactionPrice")
		}
	default:
		return errors.New("unknown asset type: " + string(t.AssetType))
	}
	if t.Action != types.ActionBuy && t.Action != types.ActionSell {
		return errors.New("unknown action: " + string(t.Action))
	}
	if t.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if t.Fees < 0 {
		return errors.New("fees must not be negative")
	}
	return nil
}

func InitTransactionRoutes(app *fiber.App) {
	tc := NewTransactionController()

	app.Get("/transactions", tc.GetAllTransactions)
	app.Post("/transactions", tc.CreateTransaction)
	app.Put("/transactions/:id", tc.UpdateTransaction)
	app.Delete("/transactions/:id", tc.DeleteTransaction)
	app.Delete("/transactions", tc.ClearTransactions)
	app.Get("/transactions/export", tc.ExportTransactions)
	app.Post("/transactions/import", tc.ImportTransactions)
}
