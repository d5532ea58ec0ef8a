package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"partner-portal.backend/internal/domain/entities"
	"partner-portal.backend/internal/usecases"
)

func TestMetricsUsecase_Compute(t *testing.T) {
	associateRepo := new(MockAssociateRepository)
	referralRepo := new(MockReferralRepository)
	uc := usecases.NewMetricsUsecase(associateRepo, referralRepo)
	ctx := context.Background()

	pending := []*entities.Associate{{ID: uuid.New(), KYCStatus: entities.KYCPending}}
	top := []*entities.Associate{
		{ID: uuid.New(), ReferralCount: 9},
		{ID: uuid.New(), ReferralCount: 4},
	}

	associateRepo.On("SumPoints", ctx).Return(int64(1250), nil).Once()
	referralRepo.On("Count", ctx).Return(int64(17), nil).Once()
	associateRepo.On("ListByKYCStatus", ctx, entities.KYCPending).Return(pending, nil).Once()
	associateRepo.On("ListTopByReferralCount", ctx, usecases.TopAssociatesLimit).Return(top, nil).Once()

	metrics, err := uc.Compute(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1250), metrics.TotalPointsLiability)
	assert.Equal(t, int64(17), metrics.GrossReferralCount)
	assert.Len(t, metrics.PendingKYC, 1)
	assert.Len(t, metrics.TopAssociates, 2)
	assert.Equal(t, int64(9), metrics.TopAssociates[0].ReferralCount)
}

func TestMetricsUsecase_Compute_EmptyState(t *testing.T) {
	associateRepo := new(MockAssociateRepository)
	referralRepo := new(MockReferralRepository)
	uc := usecases.NewMetricsUsecase(associateRepo, referralRepo)
	ctx := context.Background()

	associateRepo.On("SumPoints", ctx).Return(int64(0), nil)
	referralRepo.On("Count", ctx).Return(int64(0), nil)
	associateRepo.On("ListByKYCStatus", ctx, entities.KYCPending).Return([]*entities.Associate{}, nil)
	associateRepo.On("ListTopByReferralCount", ctx, usecases.TopAssociatesLimit).Return([]*entities.Associate{}, nil)

	metrics, err := uc.Compute(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), metrics.TotalPointsLiability)
	assert.Equal(t, int64(0), metrics.GrossReferralCount)
	assert.Empty(t, metrics.PendingKYC)
	assert.Empty(t, metrics.TopAssociates)

	// recomputation over unchanged state yields the same values
	again, err := uc.Compute(ctx)
	assert.NoError(t, err)
	assert.Equal(t, metrics, again)
}

func TestMetricsUsecase_Compute_PropagatesErrors(t *testing.T) {
	associateRepo := new(MockAssociateRepository)
	referralRepo := new(MockReferralRepository)
	uc := usecases.NewMetricsUsecase(associateRepo, referralRepo)
	ctx := context.Background()

	boom := errors.New("db down")
	associateRepo.On("SumPoints", ctx).Return(int64(0), boom).Once()

	_, err := uc.Compute(ctx)
	assert.ErrorIs(t, err, boom)
}
