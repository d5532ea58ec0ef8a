package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"partner-portal.backend/internal/config"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/domain/repositories"
	"partner-portal.backend/pkg/utils"
)

// ReferralUsecase handles the referral log and its lifecycle
type ReferralUsecase struct {
	referralRepo  repositories.ReferralRepository
	associateRepo repositories.AssociateRepository
	uow           repositories.UnitOfWork
	program       config.ProgramConfig
}

// NewReferralUsecase creates a new referral usecase
func NewReferralUsecase(
	referralRepo repositories.ReferralRepository,
	associateRepo repositories.AssociateRepository,
	uow repositories.UnitOfWork,
	program config.ProgramConfig,
) *ReferralUsecase {
	return &ReferralUsecase{
		referralRepo:  referralRepo,
		associateRepo: associateRepo,
		uow:           uow,
		program:       program,
	}
}

// Submit records a new lead. Submission never touches the referring
// associate's points or referral count; those move on completion only.
func (u *ReferralUsecase) Submit(ctx context.Context, associateID uuid.UUID, input *entities.SubmitReferralInput) (*entities.Referral, error) {
	if !u.program.HasService(input.ServiceInterest) {
		return nil, domainerrors.BadRequest("unknown service interest")
	}

	if _, err := u.associateRepo.GetByID(ctx, associateID); err != nil {
		return nil, err
	}

	now := time.Now()
	referral := &entities.Referral{
		ID:              utils.GenerateUUIDv7(),
		AssociateID:     associateID,
		ClientName:      input.ClientName,
		ServiceInterest: input.ServiceInterest,
		Status:          entities.ReferralStatusPending,
		PointsAwarded:   0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.Note != "" {
		referral.Note.SetValid(input.Note)
	}

	if err := u.referralRepo.Create(ctx, referral); err != nil {
		return nil, err
	}

	return referral, nil
}

// ListForAssociate returns one associate's referrals in submission order
func (u *ReferralUsecase) ListForAssociate(ctx context.Context, associateID uuid.UUID) ([]*entities.Referral, error) {
	if _, err := u.associateRepo.GetByID(ctx, associateID); err != nil {
		return nil, err
	}
	return u.referralRepo.ListByAssociate(ctx, associateID)
}

// List lists referrals across all associates
func (u *ReferralUsecase) List(ctx context.Context, limit, offset int) ([]*entities.Referral, int64, error) {
	return u.referralRepo.List(ctx, limit, offset)
}

// Complete is invoked by the fulfillment process once a referred service is
// delivered. It finalizes the referral and credits the owning associate's
// points and referral count in one transaction.
func (u *ReferralUsecase) Complete(ctx context.Context, referralID uuid.UUID, pointsAwarded int64) (*entities.Referral, error) {
	if pointsAwarded <= 0 {
		return nil, domainerrors.BadRequest("pointsAwarded must be positive")
	}

	referral, err := u.referralRepo.GetByID(ctx, referralID)
	if err != nil {
		return nil, err
	}

	if referral.Status != entities.ReferralStatusPending {
		return nil, domainerrors.Conflict("referral is already finalized", domainerrors.ErrReferralFinalized)
	}

	referral.Status = entities.ReferralStatusCompleted
	referral.PointsAwarded = pointsAwarded
	referral.CompletedAt = null.TimeFrom(time.Now())

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.referralRepo.Update(txCtx, referral); err != nil {
			return err
		}
		return u.associateRepo.CreditReferral(txCtx, referral.AssociateID, pointsAwarded)
	})
	if err != nil {
		return nil, err
	}

	return referral, nil
}

// Reject finalizes a referral without any points movement
func (u *ReferralUsecase) Reject(ctx context.Context, referralID uuid.UUID) (*entities.Referral, error) {
	referral, err := u.referralRepo.GetByID(ctx, referralID)
	if err != nil {
		return nil, err
	}

	if referral.Status != entities.ReferralStatusPending {
		return nil, domainerrors.Conflict("referral is already finalized", domainerrors.ErrReferralFinalized)
	}

	referral.Status = entities.ReferralStatusRejected

	if err := u.referralRepo.Update(ctx, referral); err != nil {
		return nil, err
	}

	return referral, nil
}
