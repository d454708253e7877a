package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider fetches live exchange rates from an external source.
type RateProvider interface {
	// FetchRates returns the multiplicative rates from base to every currency the
	// provider knows about, keyed by currency code.
	FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}
