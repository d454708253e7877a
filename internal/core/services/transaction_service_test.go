package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/kshitijs/currency_exchange_app/internal/core/ports/services"
	"github.com/kshitijs/currency_exchange_app/internal/core/services"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByUserID(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo          *MockTransactionRepository
	mockCurrencySvc   *MockCurrencySvc
	mockPreferenceSvc *MockPreferenceSvc
	service           portssvc.TransactionSvcFacade
	userID            string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockCurrencySvc = new(MockCurrencySvc)
	suite.mockPreferenceSvc = new(MockPreferenceSvc)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockCurrencySvc, suite.mockPreferenceSvc)
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) expectCatalogCurrency(code string) {
	suite.mockCurrencySvc.On("GetCurrencyByCode", mock.Anything, code).Return(&domain.Currency{CurrencyCode: code}, nil).Once()
}

func (suite *TransactionServiceTestSuite) expectPreference(precision int) {
	suite.mockPreferenceSvc.On("GetPreference", mock.Anything, suite.userID).Return(&domain.UserPreference{
		UserID:           suite.userID,
		DecimalPrecision: precision,
	}, nil).Once()
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestRecordTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		InputCurrency:  "USD",
		OutputCurrency: "EUR",
		InputAmount:    decimal.NewFromInt(100),
		OutputAmount:   decimal.RequireFromString("90.004"),
	}

	suite.expectCatalogCurrency("USD")
	suite.expectCatalogCurrency("EUR")
	suite.expectPreference(2)
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == suite.userID &&
			txn.InputCurrency == "USD" &&
			txn.OutputCurrency == "EUR" &&
			txn.OutputAmount.Equal(decimal.RequireFromString("90.00")) &&
			txn.TransactionID != ""
	})).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(suite.userID, txn.UserID)
	// Output amount is quantized to the owner's precision before storage.
	suite.Equal("90", txn.OutputAmount.String())
	suite.WithinDuration(time.Now(), txn.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_NonPositiveInput() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		InputCurrency:  "USD",
		OutputCurrency: "EUR",
		InputAmount:    decimal.Zero,
		OutputAmount:   decimal.NewFromInt(90),
	}

	txn, err := suite.service.RecordTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_NonPositiveOutput() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		InputCurrency:  "USD",
		OutputCurrency: "EUR",
		InputAmount:    decimal.NewFromInt(100),
		OutputAmount:   decimal.NewFromInt(-1),
	}

	txn, err := suite.service.RecordTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_UnsupportedCurrency() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		InputCurrency:  "XXX",
		OutputCurrency: "EUR",
		InputAmount:    decimal.NewFromInt(100),
		OutputAmount:   decimal.NewFromInt(90),
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", mock.Anything, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.RecordTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_SaveError() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		InputCurrency:  "USD",
		OutputCurrency: "EUR",
		InputAmount:    decimal.NewFromInt(100),
		OutputAmount:   decimal.NewFromInt(90),
	}
	expectedErr := assert.AnError

	suite.expectCatalogCurrency("USD")
	suite.expectCatalogCurrency("EUR")
	suite.expectPreference(2)
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(expectedErr).Once()

	txn, err := suite.service.RecordTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, expectedErr)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	expected := []domain.Transaction{
		{TransactionID: uuid.NewString(), UserID: suite.userID},
		{TransactionID: uuid.NewString(), UserID: suite.userID},
	}

	suite.mockRepo.On("FindTransactionsByUserID", ctx, suite.userID, 20, 0).Return(expected, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, 20, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Empty() {
	ctx := context.Background()
	var empty []domain.Transaction

	suite.mockRepo.On("FindTransactionsByUserID", ctx, suite.userID, 20, 0).Return(empty, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, 20, 0)

	suite.Require().NoError(err)
	suite.Empty(txns)
	suite.NotNil(txns)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	expected := &domain.Transaction{TransactionID: txnID, UserID: suite.userID}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(expected, nil).Once()

	txn, err := suite.service.GetTransactionByID(ctx, suite.userID, txnID)

	suite.Require().NoError(err)
	suite.Equal(expected, txn)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_ForeignOwnerReadsAsNotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()
	foreign := &domain.Transaction{TransactionID: txnID, UserID: uuid.NewString()}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(foreign, nil).Once()

	txn, err := suite.service.GetTransactionByID(ctx, suite.userID, txnID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransactionByID(ctx, suite.userID, txnID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
