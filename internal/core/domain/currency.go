package domain

// Currency represents a supported currency in the catalog.
// Currencies are reference data seeded by migration and never mutated via the API.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	AuditFields
}
