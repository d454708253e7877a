package domain

import "github.com/shopspring/decimal"

// ConversionResult is the outcome of a single currency conversion.
type ConversionResult struct {
	InputCurrency   string          `json:"inputCurrency"`
	OutputCurrency  string          `json:"outputCurrency"`
	InputAmount     decimal.Decimal `json:"inputAmount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"` // Rounded to the caller's precision
	Rate            decimal.Decimal `json:"rate"`            // Raw upstream rate, unrounded
}
