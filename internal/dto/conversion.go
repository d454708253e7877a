package dto

import (
	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the input for a currency conversion.
// Amount positivity is enforced by the conversion service so that a zero or
// negative amount maps to the invalid_amount error code rather than a generic
// binding failure.
type ConvertRequest struct {
	InputCurrency  string          `json:"input_currency" binding:"required,currencycode"`
	OutputCurrency string          `json:"output_currency" binding:"required,currencycode"`
	Amount         decimal.Decimal `json:"amount"`
}

// ConversionResponse defines the result of a conversion.
type ConversionResponse struct {
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	Rate            decimal.Decimal `json:"rate"`
}

// ToConversionResponse converts a domain.ConversionResult to its response DTO.
func ToConversionResponse(res *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		ConvertedAmount: res.ConvertedAmount,
		Rate:            res.Rate,
	}
}
