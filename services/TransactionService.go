package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"optifolio.app/db"
	"optifolio.app/types"
)

// LoadTransactions returns a snapshot of the whole collection in insertion
// order. Callers own the returned slice.
func LoadTransactions() ([]types.Transaction, error) {
	var transactions []types.Transaction
	if err := db.DB.Order("created_at").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	return transactions, nil
}

func GetTransaction(id string) (*types.Transaction, error) {
	var t types.Transaction
	if err := db.DB.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func CreateTransaction(t *types.Transaction) error {
	if err := db.DB.Create(t).Error; err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}
	return backfillNames(t.Symbol, t.Name)
}

// UpdateTransaction replaces every field of the stored record wholesale;
// there are no partial patch semantics. The id never changes.
func UpdateTransaction(t *types.Transaction) error {
	var existing types.Transaction
	if err := db.DB.First(&existing, "id = ?", t.ID).Error; err != nil {
		return err
	}
	t.CreatedAt = existing.CreatedAt
	if err := db.DB.Save(t).Error; err != nil {
		return fmt.Errorf("updating transaction %s: %w", t.ID, err)
	}
	return backfillNames(t.Symbol, t.Name)
}

func DeleteTransaction(id string) error {
	result := db.DB.Delete(&types.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting transaction %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func ClearTransactions() error {
	return db.DB.Where("1 = 1").Delete(&types.Transaction{}).Error
}

// ReplaceTransactions implements the whole-collection replace contract of the
// store: last write wins, no partial updates.
func ReplaceTransactions(transactions []types.Transaction) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&types.Transaction{}).Error; err != nil {
			return err
		}
		if len(transactions) == 0 {
			return nil
		}
		return tx.Create(&transactions).Error
	})
}

// MergeTransactions applies an imported collection: records with a known id
// replace the stored ones, the rest are appended.
func MergeTransactions(imported []types.Transaction) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for i := range imported {
			t := imported[i]
			var existing types.Transaction
			err := tx.First(&existing, "id = ?", t.ID).Error
			switch {
			case err == nil:
				t.CreatedAt = existing.CreatedAt
				if err := tx.Save(&t).Error; err != nil {
					return err
				}
			case err == gorm.ErrRecordNotFound:
				if err := tx.Create(&t).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}

// backfillNames propagates a non-empty display name to every transaction of
// the same symbol, so older entries recorded without one pick it up.
func backfillNames(symbol, name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	return db.DB.Model(&types.Transaction{}).
		Where("symbol = ?", symbol).
		Update("name", name).Error
}
