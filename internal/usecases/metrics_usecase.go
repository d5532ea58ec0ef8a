package usecases

import (
	"context"

	"partner-portal.backend/internal/domain/entities"
	"partner-portal.backend/internal/domain/repositories"
)

// TopAssociatesLimit caps the leaderboard in the metrics summary
const TopAssociatesLimit = 5

// MetricsUsecase computes the derived program-wide values. Everything here is
// recomputed from current state on every call; nothing is cached.
type MetricsUsecase struct {
	associateRepo repositories.AssociateRepository
	referralRepo  repositories.ReferralRepository
}

// NewMetricsUsecase creates a new metrics usecase
func NewMetricsUsecase(
	associateRepo repositories.AssociateRepository,
	referralRepo repositories.ReferralRepository,
) *MetricsUsecase {
	return &MetricsUsecase{
		associateRepo: associateRepo,
		referralRepo:  referralRepo,
	}
}

// Compute returns the current ledger-wide metrics
func (u *MetricsUsecase) Compute(ctx context.Context) (*entities.LedgerMetrics, error) {
	totalPoints, err := u.associateRepo.SumPoints(ctx)
	if err != nil {
		return nil, err
	}

	referralCount, err := u.referralRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	pendingKYC, err := u.associateRepo.ListByKYCStatus(ctx, entities.KYCPending)
	if err != nil {
		return nil, err
	}

	topAssociates, err := u.associateRepo.ListTopByReferralCount(ctx, TopAssociatesLimit)
	if err != nil {
		return nil, err
	}

	return &entities.LedgerMetrics{
		TotalPointsLiability: totalPoints,
		GrossReferralCount:   referralCount,
		PendingKYC:           pendingKYC,
		TopAssociates:        topAssociates,
	}, nil
}
