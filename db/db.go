package db

import (
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"optifolio.app/types"
)

var DB *gorm.DB

func Init() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "optifolio.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	if err := DB.AutoMigrate(&types.Transaction{}); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}
}

// InitInMemory opens a throwaway database, used by tests.
func InitInMemory() {
	var err error
	DB, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("Failed to open in-memory database: " + err.Error())
	}
	if err := DB.AutoMigrate(&types.Transaction{}); err != nil {
		panic("Failed to migrate in-memory database: " + err.Error())
	}
}
