package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kshitijs/currency_exchange_app/internal/apperrors"
	"github.com/kshitijs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/kshitijs/currency_exchange_app/internal/core/ports/services"
	"github.com/kshitijs/currency_exchange_app/internal/core/services"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
	"github.com/kshitijs/currency_exchange_app/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUserWithPreference(ctx context.Context, user domain.User, pref domain.UserPreference) error {
	args := m.Called(ctx, user, pref)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "kshitij",
		Password: "s3cretpass",
		Name:     "Kshitij",
	}

	var capturedUser domain.User
	var capturedPref domain.UserPreference
	suite.mockRepo.On("CreateUserWithPreference", ctx,
		mock.AnythingOfType("domain.User"),
		mock.AnythingOfType("domain.UserPreference"),
	).Run(func(args mock.Arguments) {
		capturedUser = args.Get(1).(domain.User)
		capturedPref = args.Get(2).(domain.UserPreference)
	}).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(req.Username, user.Username)
	suite.Equal(req.Name, user.Name)
	suite.NotEmpty(user.UserID)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))

	// The preference row is created for the same user in the same call.
	suite.Equal(capturedUser.UserID, capturedPref.UserID)
	suite.Equal(domain.DefaultPreferredInputCurrency, capturedPref.PreferredInputCurrency)
	suite.Equal(domain.DefaultPreferredOutputCurrency, capturedPref.PreferredOutputCurrency)
	suite.Equal(domain.DefaultDecimalPrecision, capturedPref.DecimalPrecision)

	// Self-registration: the user is their own auditor.
	suite.Equal(capturedUser.UserID, capturedUser.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "taken",
		Password: "s3cretpass",
		Name:     "Someone",
	}

	suite.mockRepo.On("CreateUserWithPreference", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("domain.UserPreference")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := &domain.User{UserID: userID, Username: "someone"}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(expected, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, user)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestGetUserByUsername_Success() {
	ctx := context.Background()
	expected := &domain.User{UserID: uuid.NewString(), Username: "someone"}

	suite.mockRepo.On("FindUserByUsername", ctx, "someone").Return(expected, nil).Once()

	user, err := suite.service.GetUserByUsername(ctx, "someone")

	suite.Require().NoError(err)
	suite.Equal(expected, user)
}

func (suite *UserServiceTestSuite) TestStoreRefreshToken_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expiry := time.Now().Add(time.Hour)

	suite.mockRepo.On("UpdateRefreshToken", ctx, userID, "somehash", &expiry).Return(nil).Once()

	err := suite.service.StoreRefreshToken(ctx, userID, "somehash", &expiry)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestStoreRefreshToken_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	expiry := time.Now().Add(time.Hour)
	expectedErr := assert.AnError

	suite.mockRepo.On("UpdateRefreshToken", ctx, userID, "somehash", &expiry).Return(expectedErr).Once()

	err := suite.service.StoreRefreshToken(ctx, userID, "somehash", &expiry)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
