package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kshitijs/currency_exchange_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		CurrencyRepo:    newPgxCurrencyRepository(dbPool),
		PreferenceRepo:  newPgxPreferenceRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
