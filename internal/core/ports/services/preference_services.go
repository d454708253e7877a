package services

import (
	"context"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
)

// PreferenceSvcFacade defines operations on the caller's own preference record.
// The user identity always comes from the authenticated context, never from the
// request body, so a caller cannot address another user's record.
type PreferenceSvcFacade interface {
	// GetPreference returns the user's preference, lazily creating a default row
	// on first access.
	GetPreference(ctx context.Context, userID string) (*domain.UserPreference, error)
	UpdatePreference(ctx context.Context, userID string, req dto.UpdatePreferenceRequest) (*domain.UserPreference, error)
}
