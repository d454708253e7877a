package repositories

import (
	"context"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for the conversion ledger.
// The ledger is append-only: there are no update or delete operations.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// FindTransactionsByUserID returns the owner's transactions newest-first.
	FindTransactionsByUserID(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error)
}
