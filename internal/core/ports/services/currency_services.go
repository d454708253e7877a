package services

import (
	"context"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
)

// CurrencySvcFacade defines read operations on the currency catalog.
type CurrencySvcFacade interface {
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
}
