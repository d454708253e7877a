package services

import (
	"context"

	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
)

// ConversionSvcFacade converts an amount between two catalog currencies using live
// upstream rates. userID may be empty, in which case the default precision applies.
type ConversionSvcFacade interface {
	Convert(ctx context.Context, req dto.ConvertRequest, userID string) (*domain.ConversionResult, error)
}
