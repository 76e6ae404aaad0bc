package models

// DateLayout is the calendar date format stamped on new transactions.
const DateLayout = "2006-01-02"

// Columns are the grid and export column labels, in table order.
var Columns = []string{"ID", "Date", "Description", "Amount", "Type", "Category"}

// Transaction is one ledger entry in the transactions table.
// ID and Date are assigned on insert and never rewritten.
type Transaction struct {
	ID          uint    `gorm:"column:id;primaryKey" json:"id"`
	Date        string  `gorm:"column:date" json:"date"`
	Description string  `gorm:"column:description" json:"description"`
	Amount      float64 `gorm:"column:amount" json:"amount"`
	Type        string  `gorm:"column:type" json:"type"`
	Category    string  `gorm:"column:category" json:"category"`
}

func (Transaction) TableName() string { return "transactions" }

// Input carries the user-editable values of a transaction, already validated.
type Input struct {
	Description string
	Amount      float64
	Type        string
	Category    string
}
