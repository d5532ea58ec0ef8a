package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"partner-portal.backend/internal/config"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/usecases"
)

func TestPayoutUsecase_Request_Success(t *testing.T) {
	payoutRepo := new(MockPayoutRepository)
	associateRepo := new(MockAssociateRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewPayoutUsecase(payoutRepo, associateRepo, uow, testProgramConfig())
	ctx := context.Background()
	associateID := uuid.New()

	associateRepo.On("GetByID", ctx, associateID).Return(&entities.Associate{
		ID:        associateID,
		Points:    620,
		KYCStatus: entities.KYCVerified,
	}, nil).Once()
	uow.On("Do", ctx, mock.Anything).Return(nil).Once()
	associateRepo.On("DebitPoints", ctx, associateID, int64(620)).Return(nil).Once()
	payoutRepo.On("Create", ctx, mock.AnythingOfType("*entities.PayoutRequest")).Return(nil).Once()

	payout, err := uc.Request(ctx, associateID)
	assert.NoError(t, err)
	assert.Equal(t, int64(620), payout.Points, "redemption always takes the full balance")
	assert.True(t, payout.Amount.Equal(decimal.NewFromInt(620)))
	assert.Equal(t, entities.PayoutStatusPending, payout.Status)
	payoutRepo.AssertExpectations(t)
	associateRepo.AssertExpectations(t)
}

func TestPayoutUsecase_Request_CapturesRateAtCreation(t *testing.T) {
	payoutRepo := new(MockPayoutRepository)
	associateRepo := new(MockAssociateRepository)
	uow := new(MockUnitOfWork)
	program := testProgramConfig()
	program.PointToINRRatio = "0.5"
	uc := usecases.NewPayoutUsecase(payoutRepo, associateRepo, uow, program)
	ctx := context.Background()
	associateID := uuid.New()

	associateRepo.On("GetByID", ctx, associateID).Return(&entities.Associate{
		ID:        associateID,
		Points:    501,
		KYCStatus: entities.KYCVerified,
	}, nil).Once()
	uow.On("Do", ctx, mock.Anything).Return(nil).Once()
	associateRepo.On("DebitPoints", ctx, associateID, int64(501)).Return(nil).Once()
	payoutRepo.On("Create", ctx, mock.AnythingOfType("*entities.PayoutRequest")).Return(nil).Once()

	payout, err := uc.Request(ctx, associateID)
	assert.NoError(t, err)
	assert.Equal(t, "250.50", payout.Amount.StringFixed(2))
}

func TestPayoutUsecase_Request_RequiresVerifiedKYC(t *testing.T) {
	payoutRepo := new(MockPayoutRepository)
	associateRepo := new(MockAssociateRepository)
	uc := usecases.NewPayoutUsecase(payoutRepo, associateRepo, new(MockUnitOfWork), testProgramConfig())
	ctx := context.Background()
	associateID := uuid.New()

	associateRepo.On("GetByID", ctx, associateID).Return(&entities.Associate{
		ID:        associateID,
		Points:    800,
		KYCStatus: entities.KYCPending,
	}, nil).Once()

	_, err := uc.Request(ctx, associateID)
	assert.ErrorIs(t, err, domainerrors.ErrKYCNotVerified)
	payoutRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	associateRepo.AssertNotCalled(t, "DebitPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestPayoutUsecase_Request_BelowThreshold(t *testing.T) {
	payoutRepo := new(MockPayoutRepository)
	associateRepo := new(MockAssociateRepository)
	uc := usecases.NewPayoutUsecase(payoutRepo, associateRepo, new(MockUnitOfWork), testProgramConfig())
	ctx := context.Background()
	associateID := uuid.New()

	associateRepo.On("GetByID", ctx, associateID).Return(&entities.Associate{
		ID:        associateID,
		Points:    499,
		KYCStatus: entities.KYCVerified,
	}, nil).Once()

	_, err := uc.Request(ctx, associateID)
	assert.ErrorIs(t, err, domainerrors.ErrBelowThreshold)
	payoutRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPayoutUsecase_UpdateStatus_Process(t *testing.T) {
	payoutRepo := new(MockPayoutRepository)
	associateRepo := new(MockAssociateRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewPayoutUsecase(payoutRepo, associateRepo, uow, testProgramConfig())
	ctx := context.Background()
	payoutID := uuid.New()

	payoutRepo.On("GetByID", ctx, payoutID).Return(&entities.PayoutRequest{
		ID:          payoutID,
		AssociateID: uuid.New(),
		Points:      500,
		Status:      entities.PayoutStatusPending,
	}, nil).Once()
	uow.On("Do", ctx, mock.Anything).Return(nil).Once()
	payoutRepo.On("UpdateStatus", ctx, payoutID, entities.PayoutStatusProcessed).Return(nil).Once()

	payout, err := uc.UpdateStatus(ctx, payoutID, entities.PayoutStatusProcessed)
	assert.NoError(t, err)
	assert.Equal(t, entities.PayoutStatusProcessed, payout.Status)
	associateRepo.AssertNotCalled(t, "CreditPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestPayoutUsecase_UpdateStatus_CancelRefundsPoints(t *testing.T) {
	payoutRepo := new(MockPayoutRepository)
	associateRepo := new(MockAssociateRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewPayoutUsecase(payoutRepo, associateRepo, uow, testProgramConfig())
	ctx := context.Background()
	payoutID := uuid.New()
	associateID := uuid.New()

	payoutRepo.On("GetByID", ctx, payoutID).Return(&entities.PayoutRequest{
		ID:          payoutID,
		AssociateID: associateID,
		Points:      550,
		Status:      entities.PayoutStatusPending,
	}, nil).Once()
	uow.On("Do", ctx, mock.Anything).Return(nil).Once()
	payoutRepo.On("UpdateStatus", ctx, payoutID, entities.PayoutStatusCancelled).Return(nil).Once()
	associateRepo.On("CreditPoints", ctx, associateID, int64(550)).Return(nil).Once()

	payout, err := uc.UpdateStatus(ctx, payoutID, entities.PayoutStatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, entities.PayoutStatusCancelled, payout.Status)
	associateRepo.AssertExpectations(t)
}

func TestPayoutUsecase_UpdateStatus_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid target status", func(t *testing.T) {
		uc := usecases.NewPayoutUsecase(new(MockPayoutRepository), new(MockAssociateRepository), new(MockUnitOfWork), testProgramConfig())
		_, err := uc.UpdateStatus(ctx, uuid.New(), entities.PayoutStatusPending)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("already finalized", func(t *testing.T) {
		payoutRepo := new(MockPayoutRepository)
		uc := usecases.NewPayoutUsecase(payoutRepo, new(MockAssociateRepository), new(MockUnitOfWork), testProgramConfig())
		payoutID := uuid.New()

		payoutRepo.On("GetByID", ctx, payoutID).Return(&entities.PayoutRequest{
			ID:     payoutID,
			Status: entities.PayoutStatusProcessed,
		}, nil).Once()

		_, err := uc.UpdateStatus(ctx, payoutID, entities.PayoutStatusCancelled)
		assert.ErrorIs(t, err, domainerrors.ErrPayoutFinalized)
	})
}

func TestPayoutUsecase_Request_BadRatioConfig(t *testing.T) {
	associateRepo := new(MockAssociateRepository)
	program := config.ProgramConfig{RedemptionThreshold: 500, PointToINRRatio: "not-a-number"}
	uc := usecases.NewPayoutUsecase(new(MockPayoutRepository), associateRepo, new(MockUnitOfWork), program)
	ctx := context.Background()
	associateID := uuid.New()

	associateRepo.On("GetByID", ctx, associateID).Return(&entities.Associate{
		ID:        associateID,
		Points:    600,
		KYCStatus: entities.KYCVerified,
	}, nil).Once()

	_, err := uc.Request(ctx, associateID)
	assert.Error(t, err)
}
