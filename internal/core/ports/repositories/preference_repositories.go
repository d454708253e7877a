package repositories

import (
	"context"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
)

// PreferenceRepository defines persistence operations for user preferences.
type PreferenceRepository interface {
	SavePreference(ctx context.Context, pref domain.UserPreference) error
	FindPreferenceByUserID(ctx context.Context, userID string) (*domain.UserPreference, error)
}
