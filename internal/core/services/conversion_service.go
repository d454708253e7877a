package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/kshitijs/currency_exchange_app/internal/core/ports/services"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
)

type conversionService struct {
	currencyService   portssvc.CurrencySvcFacade
	preferenceService portssvc.PreferenceSvcFacade
	rateProvider      portssvc.RateProvider
	defaultPrecision  int
}

// NewConversionService creates the conversion engine.
func NewConversionService(
	currencyService portssvc.CurrencySvcFacade,
	preferenceService portssvc.PreferenceSvcFacade,
	rateProvider portssvc.RateProvider,
	defaultPrecision int,
) portssvc.ConversionSvcFacade {
	return &conversionService{
		currencyService:   currencyService,
		preferenceService: preferenceService,
		rateProvider:      rateProvider,
		defaultPrecision:  defaultPrecision,
	}
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// Convert validates the request, fetches live rates with the input currency as
// base and returns the converted amount rounded half-up to the caller's precision.
// Validation failures never reach the rate provider.
func (s *conversionService) Convert(ctx context.Context, req dto.ConvertRequest, userID string) (*domain.ConversionResult, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrInvalidAmount)
	}

	inputCode := strings.ToUpper(req.InputCurrency)
	outputCode := strings.ToUpper(req.OutputCurrency)

	if err := s.requireCatalogCurrency(ctx, inputCode); err != nil {
		return nil, err
	}
	if err := s.requireCatalogCurrency(ctx, outputCode); err != nil {
		return nil, err
	}

	precision := s.defaultPrecision
	if userID != "" {
		pref, err := s.preferenceService.GetPreference(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load preference for conversion: %w", err)
		}
		precision = pref.DecimalPrecision
	}

	rates, err := s.rateProvider.FetchRates(ctx, inputCode)
	if err != nil {
		// Rate provider errors carry their own taxonomy; pass them through unchanged.
		return nil, err
	}

	rate, ok := rates[outputCode]
	if !ok {
		return nil, fmt.Errorf("%w: provider returned no rate for %s", apperrors.ErrUpstreamFormat, outputCode)
	}

	// Round half away from zero; amounts are positive so this is half-up.
	converted := req.Amount.Mul(rate).Round(int32(precision))

	return &domain.ConversionResult{
		InputCurrency:   inputCode,
		OutputCurrency:  outputCode,
		InputAmount:     req.Amount,
		ConvertedAmount: converted,
		Rate:            rate,
	}, nil
}

func (s *conversionService) requireCatalogCurrency(ctx context.Context, code string) error {
	_, err := s.currencyService.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: currency code '%s' not in catalog", apperrors.ErrUnsupportedCurrency, code)
		}
		return fmt.Errorf("failed to validate currency '%s': %w", code, err)
	}
	return nil
}
