package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/usecases"
)

func TestAdvisorUsecase_PerformanceAnalysis(t *testing.T) {
	advisor := new(MockPerformanceAdvisor)
	associateRepo := new(MockAssociateRepository)
	referralRepo := new(MockReferralRepository)
	uc := usecases.NewAdvisorUsecase(advisor, associateRepo, referralRepo)
	ctx := context.Background()

	associates := []*entities.Associate{{ID: uuid.New(), Name: "Ramesh Kumar", ReferralCount: 4}}
	referrals := []*entities.Referral{{ID: uuid.New(), Status: entities.ReferralStatusCompleted}}

	associateRepo.On("List", ctx, "", 0, 0).Return(associates, int64(1), nil).Once()
	referralRepo.On("List", ctx, 0, 0).Return(referrals, int64(1), nil).Once()
	advisor.On("AnalyzeReferralPerformance", ctx, associates, referrals).
		Return("Ramesh Kumar drives most conversions.").Once()

	analysis, err := uc.PerformanceAnalysis(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar drives most conversions.", analysis)
	advisor.AssertExpectations(t)
}

func TestAdvisorUsecase_WelcomeTip(t *testing.T) {
	advisor := new(MockPerformanceAdvisor)
	associateRepo := new(MockAssociateRepository)
	uc := usecases.NewAdvisorUsecase(advisor, associateRepo, new(MockReferralRepository))
	ctx := context.Background()
	id := uuid.New()

	associateRepo.On("GetByID", ctx, id).Return(&entities.Associate{ID: id, Name: "Suresh Patel"}, nil).Once()
	advisor.On("WelcomeTip", ctx, "Suresh Patel").Return("Welcome back, Suresh Patel!").Once()

	tip, err := uc.WelcomeTip(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "Welcome back, Suresh Patel!", tip)
}

func TestAdvisorUsecase_WelcomeTip_UnknownAssociate(t *testing.T) {
	advisor := new(MockPerformanceAdvisor)
	associateRepo := new(MockAssociateRepository)
	uc := usecases.NewAdvisorUsecase(advisor, associateRepo, new(MockReferralRepository))
	ctx := context.Background()
	id := uuid.New()

	associateRepo.On("GetByID", ctx, id).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.WelcomeTip(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
