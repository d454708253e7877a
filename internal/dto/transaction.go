package dto

import (
	"time"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a conversion in the
// ledger. The owner is always the authenticated caller; no user identifier is
// accepted here.
type CreateTransactionRequest struct {
	InputCurrency  string          `json:"input_currency" binding:"required,currencycode"`
	OutputCurrency string          `json:"output_currency" binding:"required,currencycode"`
	InputAmount    decimal.Decimal `json:"input_amount"`
	OutputAmount   decimal.Decimal `json:"output_amount"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID  string          `json:"transaction_id"`
	InputCurrency  string          `json:"input_currency"`
	OutputCurrency string          `json:"output_currency"`
	InputAmount    decimal.Decimal `json:"input_amount"`
	OutputAmount   decimal.Decimal `json:"output_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  txn.TransactionID,
		InputCurrency:  txn.InputCurrency,
		OutputCurrency: txn.OutputCurrency,
		InputAmount:    txn.InputAmount,
		OutputAmount:   txn.OutputAmount,
		CreatedAt:      txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
