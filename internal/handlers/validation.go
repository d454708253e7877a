package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodeValidator accepts 3-letter uppercase-insensitive alphabetic codes.
// Catalog membership is checked by the services; this only rejects values that
// cannot possibly be a currency code.
func currencyCodeValidator(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// RegisterCustomValidators installs the custom binding tags used by the DTOs.
// Must be called once before the router starts serving.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currencycode", currencyCodeValidator)
}
