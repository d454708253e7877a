package services

import (
	"context"
	"time"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
)

// UserSvcFacade defines the user account operations exposed to handlers and other
// services.
type UserSvcFacade interface {
	// RegisterUser creates the account and its default preference atomically.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	StoreRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time) error
}
