package usecases

import (
	"context"

	"github.com/google/uuid"
	"partner-portal.backend/internal/domain/entities"
	"partner-portal.backend/internal/domain/repositories"
)

// PerformanceAdvisor is the narrow interface to the external text-generation
// collaborator. Implementations must degrade to a static fallback and never
// return an error to callers.
type PerformanceAdvisor interface {
	AnalyzeReferralPerformance(ctx context.Context, associates []*entities.Associate, referrals []*entities.Referral) string
	WelcomeTip(ctx context.Context, associateName string) string
}

// AdvisorUsecase produces advisory text over ledger snapshots. Its output is
// opaque and never feeds back into ledger state.
type AdvisorUsecase struct {
	advisor       PerformanceAdvisor
	associateRepo repositories.AssociateRepository
	referralRepo  repositories.ReferralRepository
}

// NewAdvisorUsecase creates a new advisor usecase
func NewAdvisorUsecase(
	advisor PerformanceAdvisor,
	associateRepo repositories.AssociateRepository,
	referralRepo repositories.ReferralRepository,
) *AdvisorUsecase {
	return &AdvisorUsecase{
		advisor:       advisor,
		associateRepo: associateRepo,
		referralRepo:  referralRepo,
	}
}

// PerformanceAnalysis serializes the current roster and referral log and asks
// the collaborator for a free-text analysis
func (u *AdvisorUsecase) PerformanceAnalysis(ctx context.Context) (string, error) {
	associates, _, err := u.associateRepo.List(ctx, "", 0, 0)
	if err != nil {
		return "", err
	}

	referrals, _, err := u.referralRepo.List(ctx, 0, 0)
	if err != nil {
		return "", err
	}

	return u.advisor.AnalyzeReferralPerformance(ctx, associates, referrals), nil
}

// WelcomeTip returns a greeting for the named associate
func (u *AdvisorUsecase) WelcomeTip(ctx context.Context, associateID uuid.UUID) (string, error) {
	associate, err := u.associateRepo.GetByID(ctx, associateID)
	if err != nil {
		return "", err
	}
	return u.advisor.WelcomeTip(ctx, associate.Name), nil
}
