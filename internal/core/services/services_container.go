package services

import (
	portsrepo "github.com/kshitijs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/kshitijs/currency_exchange_app/internal/core/ports/services"
	"github.com/kshitijs/currency_exchange_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateProvider portssvc.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Preference = NewPreferenceService(repos.PreferenceRepo, container.Currency)
	container.Conversion = NewConversionService(container.Currency, container.Preference, rateProvider, cfg.DefaultDecimalPrecision)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Currency, container.Preference)
	container.Token = NewTokenService(cfg, container.User)

	return container
}
