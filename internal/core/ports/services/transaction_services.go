package services

import (
	"context"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
)

// TransactionSvcFacade defines operations on the append-only conversion ledger.
// All operations are scoped to the owning user.
type TransactionSvcFacade interface {
	RecordTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	// ListTransactions returns the owner's transactions newest-first.
	ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error)
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)
}
