package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kshitijs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/kshitijs/currency_exchange_app/internal/core/ports/services"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
	"github.com/kshitijs/currency_exchange_app/internal/middleware"
)

type preferenceService struct {
	prefRepo        portsrepo.PreferenceRepository
	currencyService portssvc.CurrencySvcFacade
}

// NewPreferenceService creates the user preference service.
func NewPreferenceService(prefRepo portsrepo.PreferenceRepository, currencyService portssvc.CurrencySvcFacade) portssvc.PreferenceSvcFacade {
	return &preferenceService{
		prefRepo:        prefRepo,
		currencyService: currencyService,
	}
}

var _ portssvc.PreferenceSvcFacade = (*preferenceService)(nil)

// GetPreference returns the user's preference record, lazily creating a default
// one on first access. Registration already creates the row, so the lazy path only
// runs for accounts that predate the preference table.
func (s *preferenceService) GetPreference(ctx context.Context, userID string) (*domain.UserPreference, error) {
	pref, err := s.prefRepo.FindPreferenceByUserID(ctx, userID)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get preference in service: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Creating default preferences for user", "user_id", userID)

	now := time.Now()
	defaultPref := domain.UserPreference{
		UserID:                  userID,
		PreferredInputCurrency:  domain.DefaultPreferredInputCurrency,
		PreferredOutputCurrency: domain.DefaultPreferredOutputCurrency,
		DecimalPrecision:        domain.DefaultDecimalPrecision,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.prefRepo.SavePreference(ctx, defaultPref); err != nil {
		return nil, fmt.Errorf("failed to create default preference in service: %w", err)
	}
	return &defaultPref, nil
}

// UpdatePreference applies a partial update to the caller's own record. The
// subject is the authenticated user; there is no way to address another user's
// preferences through this service.
func (s *preferenceService) UpdatePreference(ctx context.Context, userID string, req dto.UpdatePreferenceRequest) (*domain.UserPreference, error) {
	pref, err := s.GetPreference(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.PreferredInputCurrency != nil {
		code := strings.ToUpper(*req.PreferredInputCurrency)
		if err := s.requireCatalogCurrency(ctx, code); err != nil {
			return nil, err
		}
		pref.PreferredInputCurrency = code
	}
	if req.PreferredOutputCurrency != nil {
		code := strings.ToUpper(*req.PreferredOutputCurrency)
		if err := s.requireCatalogCurrency(ctx, code); err != nil {
			return nil, err
		}
		pref.PreferredOutputCurrency = code
	}
	if req.DecimalPrecision != nil {
		precision := *req.DecimalPrecision
		if precision < 0 || precision > domain.MaxDecimalPrecision {
			return nil, fmt.Errorf("%w: decimal precision must be between 0 and %d", apperrors.ErrValidation, domain.MaxDecimalPrecision)
		}
		pref.DecimalPrecision = precision
	}

	pref.LastUpdatedAt = time.Now()
	pref.LastUpdatedBy = userID

	if err := s.prefRepo.SavePreference(ctx, *pref); err != nil {
		return nil, fmt.Errorf("failed to update preference in service: %w", err)
	}
	return pref, nil
}

func (s *preferenceService) requireCatalogCurrency(ctx context.Context, code string) error {
	_, err := s.currencyService.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: currency code '%s' not in catalog", apperrors.ErrUnsupportedCurrency, code)
		}
		return fmt.Errorf("failed to validate currency '%s': %w", code, err)
	}
	return nil
}
