package repositories

import (
	"context"
	"time"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
)

// UserRepository defines persistence operations for Users.
type UserRepository interface {
	// CreateUserWithPreference inserts the user and their default preference row in
	// a single database transaction. Either both rows exist afterwards or neither.
	CreateUserWithPreference(ctx context.Context, user domain.User, pref domain.UserPreference) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateRefreshToken stores the hash and expiry of the latest issued refresh
	// token for the user. Passing empty values clears it.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time) error
}
