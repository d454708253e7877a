package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one completed conversion, recorded for the user who performed it.
// The ledger is append-only: rows are never updated or deleted through the API.
type Transaction struct {
	TransactionID  string          `json:"transactionID"` // Primary Key (UUID)
	UserID         string          `json:"userID"`        // FK -> User.userID (owner)
	InputCurrency  string          `json:"inputCurrency"` // FK -> Currency.currencyCode
	OutputCurrency string          `json:"outputCurrency"`
	InputAmount    decimal.Decimal `json:"inputAmount"`
	OutputAmount   decimal.Decimal `json:"outputAmount"`
	CreatedAt      time.Time       `json:"createdAt"`
}
