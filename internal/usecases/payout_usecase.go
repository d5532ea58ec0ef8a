package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"partner-portal.backend/internal/config"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/domain/repositories"
	"partner-portal.backend/pkg/utils"
)

// PayoutUsecase handles point redemption
type PayoutUsecase struct {
	payoutRepo    repositories.PayoutRepository
	associateRepo repositories.AssociateRepository
	uow           repositories.UnitOfWork
	program       config.ProgramConfig
}

// NewPayoutUsecase creates a new payout usecase
func NewPayoutUsecase(
	payoutRepo repositories.PayoutRepository,
	associateRepo repositories.AssociateRepository,
	uow repositories.UnitOfWork,
	program config.ProgramConfig,
) *PayoutUsecase {
	return &PayoutUsecase{
		payoutRepo:    payoutRepo,
		associateRepo: associateRepo,
		uow:           uow,
		program:       program,
	}
}

// Request redeems an associate's full point balance. The currency amount is
// captured at creation time so a later rate change cannot alter it.
// Eligibility requires the configured threshold and verified KYC.
func (u *PayoutUsecase) Request(ctx context.Context, associateID uuid.UUID) (*entities.PayoutRequest, error) {
	associate, err := u.associateRepo.GetByID(ctx, associateID)
	if err != nil {
		return nil, err
	}

	if associate.KYCStatus != entities.KYCVerified {
		return nil, domainerrors.Conflict("kyc must be verified before redemption", domainerrors.ErrKYCNotVerified)
	}
	if associate.Points < u.program.RedemptionThreshold {
		return nil, domainerrors.Conflict("points are below the redemption threshold", domainerrors.ErrBelowThreshold)
	}

	ratio, err := decimal.NewFromString(u.program.PointToINRRatio)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	now := time.Now()
	payout := &entities.PayoutRequest{
		ID:          utils.GenerateUUIDv7(),
		AssociateID: associateID,
		Points:      associate.Points,
		Amount:      decimal.NewFromInt(associate.Points).Mul(ratio),
		Status:      entities.PayoutStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.associateRepo.DebitPoints(txCtx, associateID, payout.Points); err != nil {
			return err
		}
		return u.payoutRepo.Create(txCtx, payout)
	})
	if err != nil {
		return nil, err
	}

	return payout, nil
}

// UpdateStatus applies an admin decision to a pending payout request.
// Cancelling refunds the reserved points to the associate.
func (u *PayoutUsecase) UpdateStatus(ctx context.Context, payoutID uuid.UUID, status entities.PayoutStatus) (*entities.PayoutRequest, error) {
	if status != entities.PayoutStatusProcessed && status != entities.PayoutStatusCancelled {
		return nil, domainerrors.BadRequest("status must be PROCESSED or CANCELLED")
	}

	payout, err := u.payoutRepo.GetByID(ctx, payoutID)
	if err != nil {
		return nil, err
	}

	if payout.Status != entities.PayoutStatusPending {
		return nil, domainerrors.Conflict("payout request is already finalized", domainerrors.ErrPayoutFinalized)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.payoutRepo.UpdateStatus(txCtx, payoutID, status); err != nil {
			return err
		}
		if status == entities.PayoutStatusCancelled {
			return u.associateRepo.CreditPoints(txCtx, payout.AssociateID, payout.Points)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	payout.Status = status
	return payout, nil
}

// ListForAssociate returns one associate's payout requests
func (u *PayoutUsecase) ListForAssociate(ctx context.Context, associateID uuid.UUID) ([]*entities.PayoutRequest, error) {
	return u.payoutRepo.ListByAssociate(ctx, associateID)
}

// List lists all payout requests
func (u *PayoutUsecase) List(ctx context.Context, limit, offset int) ([]*entities.PayoutRequest, int64, error) {
	return u.payoutRepo.List(ctx, limit, offset)
}
