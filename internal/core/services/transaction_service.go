package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kshitijs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/kshitijs/currency_exchange_app/internal/core/ports/services"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
)

type transactionService struct {
	txnRepo           portsrepo.TransactionRepository
	currencyService   portssvc.CurrencySvcFacade
	preferenceService portssvc.PreferenceSvcFacade
}

// NewTransactionService creates the conversion ledger service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepository,
	currencyService portssvc.CurrencySvcFacade,
	preferenceService portssvc.PreferenceSvcFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:           txnRepo,
		currencyService:   currencyService,
		preferenceService: preferenceService,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// RecordTransaction validates and appends one ledger entry owned by userID. The
// output amount is quantized to the owner's decimal precision before storage.
func (s *transactionService) RecordTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.InputAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: input amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if req.OutputAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: output amount must be greater than zero", apperrors.ErrInvalidAmount)
	}

	inputCode := strings.ToUpper(req.InputCurrency)
	outputCode := strings.ToUpper(req.OutputCurrency)
	if err := s.requireCatalogCurrency(ctx, inputCode); err != nil {
		return nil, err
	}
	if err := s.requireCatalogCurrency(ctx, outputCode); err != nil {
		return nil, err
	}

	pref, err := s.preferenceService.GetPreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preference for transaction: %w", err)
	}

	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		UserID:         userID,
		InputCurrency:  inputCode,
		OutputCurrency: outputCode,
		InputAmount:    req.InputAmount,
		OutputAmount:   req.OutputAmount.Round(int32(pref.DecimalPrecision)),
		CreatedAt:      time.Now(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction in service: %w", err)
	}
	return &txn, nil
}

// ListTransactions returns the owner's ledger entries newest-first.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// GetTransactionByID retrieves one ledger entry. A row owned by someone else is
// reported as not found, so transaction IDs leak nothing across users.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction in service: %w", err)
	}
	if txn.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}

func (s *transactionService) requireCatalogCurrency(ctx context.Context, code string) error {
	_, err := s.currencyService.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: currency code '%s' not in catalog", apperrors.ErrUnsupportedCurrency, code)
		}
		return fmt.Errorf("failed to validate currency '%s': %w", code, err)
	}
	return nil
}
