package domain

// UserPreference holds per-user conversion defaults. There is exactly one row per
// user, created together with the account and removed with it (FK cascade).
type UserPreference struct {
	UserID                  string `json:"userID"` // Primary Key, FK -> User.userID
	PreferredInputCurrency  string `json:"preferredInputCurrency"`  // FK -> Currency.currencyCode
	PreferredOutputCurrency string `json:"preferredOutputCurrency"` // FK -> Currency.currencyCode
	DecimalPrecision        int    `json:"decimalPrecision"`        // Digits after the decimal point, 0..10
	AuditFields
}

const (
	// DefaultPreferredInputCurrency is assigned when a preference row is first created.
	DefaultPreferredInputCurrency = "USD"
	// DefaultPreferredOutputCurrency is assigned when a preference row is first created.
	DefaultPreferredOutputCurrency = "EUR"
	// DefaultDecimalPrecision is assigned when a preference row is first created.
	DefaultDecimalPrecision = 2
	// MaxDecimalPrecision bounds how many fractional digits a user may request.
	MaxDecimalPrecision = 10
)
