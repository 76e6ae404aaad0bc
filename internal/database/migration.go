package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AUTOINCREMENT keeps ids monotonic even after the newest row is deleted.
const createTransactions = `
CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT,
	description TEXT,
	amount REAL,
	type TEXT,
	category TEXT
)`

// Migrate creates the transactions table if it does not exist yet.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(createTransactions).Error; err != nil {
		return fmt.Errorf("create transactions table: %w", err)
	}
	return nil
}
