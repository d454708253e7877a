package services

// ServiceContainer holds all service facades needed by the HTTP layer.
type ServiceContainer struct {
	User        UserSvcFacade
	Currency    CurrencySvcFacade
	Preference  PreferenceSvcFacade
	Transaction TransactionSvcFacade
	Conversion  ConversionSvcFacade
	Token       TokenSvcFacade
}
