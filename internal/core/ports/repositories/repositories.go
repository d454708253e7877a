package repositories

// RepositoryProvider bundles all repository implementations so they can be passed
// around as a single dependency.
type RepositoryProvider struct {
	UserRepo        UserRepository
	CurrencyRepo    CurrencyRepository
	PreferenceRepo  PreferenceRepository
	TransactionRepo TransactionRepository
}
