package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kshitijs/currency_exchange_app/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction appends one ledger row. There is deliberately no update or
// delete counterpart.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, input_currency, output_currency, input_amount, output_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.InputCurrency,
		txn.OutputCurrency,
		txn.InputAmount,
		txn.OutputAmount,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// FindTransactionByID retrieves a single ledger entry. Owner filtering happens in
// the service layer so a foreign row reads the same as a missing one.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, input_currency, output_currency, input_amount, output_amount, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var txn domain.Transaction
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.InputCurrency,
		&txn.OutputCurrency,
		&txn.InputAmount,
		&txn.OutputAmount,
		&txn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	return &txn, nil
}

// FindTransactionsByUserID returns the owner's ledger entries newest-first.
func (r *PgxTransactionRepository) FindTransactionsByUserID(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT transaction_id, user_id, input_currency, output_currency, input_amount, output_amount, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var txn domain.Transaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.UserID,
			&txn.InputCurrency,
			&txn.OutputCurrency,
			&txn.InputAmount,
			&txn.OutputAmount,
			&txn.CreatedAt,
		)
		return txn, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return txns, nil
}
