package dto

import (
	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
)

// UpdatePreferenceRequest defines the fields a user may change on their own
// preference record. Pointers distinguish omitted fields from zero values.
type UpdatePreferenceRequest struct {
	PreferredInputCurrency  *string `json:"preferred_input_currency" binding:"omitempty,currencycode"`
	PreferredOutputCurrency *string `json:"preferred_output_currency" binding:"omitempty,currencycode"`
	DecimalPrecision        *int    `json:"decimal_precision" binding:"omitempty,min=0,max=10"`
}

// PreferenceResponse defines the data returned for a user preference.
type PreferenceResponse struct {
	PreferredInputCurrency  string `json:"preferred_input_currency"`
	PreferredOutputCurrency string `json:"preferred_output_currency"`
	DecimalPrecision        int    `json:"decimal_precision"`
}

// ToPreferenceResponse converts a domain.UserPreference to PreferenceResponse DTO.
func ToPreferenceResponse(pref *domain.UserPreference) PreferenceResponse {
	return PreferenceResponse{
		PreferredInputCurrency:  pref.PreferredInputCurrency,
		PreferredOutputCurrency: pref.PreferredOutputCurrency,
		DecimalPrecision:        pref.DecimalPrecision,
	}
}
