package repositories

import (
	"context"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
)

// CurrencyRepository defines persistence operations for the currency catalog.
// The catalog is seeded by migration; SaveCurrency exists for setup tooling only.
type CurrencyRepository interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
