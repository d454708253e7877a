package services

import (
	"context"
	"time"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
)

// TokenSvcFacade issues and validates the access/refresh token pair.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// GenerateRefreshToken returns the raw refresh token and persists its hash and
	// expiry on the user row.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateRefreshToken checks signature, expiry and the stored hash, returning
	// the token's subject user.
	ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}
