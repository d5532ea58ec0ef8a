package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"partner-portal.backend/internal/config"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/domain/repositories"
	"partner-portal.backend/pkg/utils"
)

// AssociateUsecase handles roster and KYC business logic
type AssociateUsecase struct {
	associateRepo repositories.AssociateRepository
	program       config.ProgramConfig
}

// NewAssociateUsecase creates a new associate usecase
func NewAssociateUsecase(associateRepo repositories.AssociateRepository, program config.ProgramConfig) *AssociateUsecase {
	return &AssociateUsecase{
		associateRepo: associateRepo,
		program:       program,
	}
}

// Onboard enrolls a new associate. The QR code URL is derived from the
// generated id so it is stable for the lifetime of the record.
func (u *AssociateUsecase) Onboard(ctx context.Context, input *entities.OnboardAssociateInput) (*entities.Associate, error) {
	existing, err := u.associateRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("an associate with this email already exists", domainerrors.ErrAlreadyExists)
	}

	now := time.Now()
	associate := &entities.Associate{
		ID:         utils.GenerateUUIDv7(),
		Name:       input.Name,
		ShopName:   input.ShopName,
		Email:      input.Email,
		KYCStatus:  entities.KYCNotStarted,
		JoinedDate: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	associate.QRCodeURL = u.QRCodeURL(associate.ID)
	if input.Phone != "" {
		associate.Phone.SetValid(input.Phone)
	}

	if err := u.associateRepo.Create(ctx, associate); err != nil {
		return nil, err
	}

	return associate, nil
}

// QRCodeURL derives the referral QR target deterministically from an id
func (u *AssociateUsecase) QRCodeURL(id uuid.UUID) string {
	return fmt.Sprintf("%s?id=%s", u.program.QRBaseURL, id)
}

// GetByID gets an associate by id
func (u *AssociateUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Associate, error) {
	return u.associateRepo.GetByID(ctx, id)
}

// SubmitKYC merge-updates KYC and profile fields. Submitting a PAN moves the
// record to Pending unless it is already Verified; verification never
// regresses from a resubmission.
func (u *AssociateUsecase) SubmitKYC(ctx context.Context, associateID uuid.UUID, input *entities.SubmitKYCInput) (*entities.Associate, error) {
	associate, err := u.associateRepo.GetByID(ctx, associateID)
	if err != nil {
		return nil, err
	}

	if input.PANNumber != "" {
		associate.PANNumber.SetValid(input.PANNumber)
	}
	if input.AadhaarNumber != "" {
		associate.AadhaarNumber.SetValid(input.AadhaarNumber)
	}
	if input.BankAccount != "" {
		associate.BankAccount.SetValid(input.BankAccount)
	}
	if input.BankIFSC != "" {
		associate.BankIFSC.SetValid(input.BankIFSC)
	}
	if input.ShopName != "" {
		associate.ShopName = input.ShopName
	}
	if input.Phone != "" {
		associate.Phone.SetValid(input.Phone)
	}

	if associate.PANNumber.Valid && associate.KYCStatus != entities.KYCVerified {
		associate.KYCStatus = entities.KYCPending
	}

	if err := u.associateRepo.Update(ctx, associate); err != nil {
		return nil, err
	}

	return associate, nil
}

// ReviewKYC applies an admin decision. Review is only valid while the
// submission is Pending; out-of-order reviews are rejected.
func (u *AssociateUsecase) ReviewKYC(ctx context.Context, associateID uuid.UUID, decision entities.KYCStatus) (*entities.Associate, error) {
	if decision != entities.KYCVerified && decision != entities.KYCRejected {
		return nil, domainerrors.BadRequest("decision must be VERIFIED or REJECTED")
	}

	associate, err := u.associateRepo.GetByID(ctx, associateID)
	if err != nil {
		return nil, err
	}

	if associate.KYCStatus != entities.KYCPending {
		return nil, domainerrors.Conflict("kyc review requires a pending submission", domainerrors.ErrKYCNotPending)
	}

	if err := u.associateRepo.UpdateKYCStatus(ctx, associateID, decision); err != nil {
		return nil, err
	}

	associate.KYCStatus = decision
	return associate, nil
}

// List lists associates with optional search and pagination
func (u *AssociateUsecase) List(ctx context.Context, search string, limit, offset int) ([]*entities.Associate, int64, error) {
	return u.associateRepo.List(ctx, search, limit, offset)
}

// ListPendingKYC returns associates awaiting KYC review
func (u *AssociateUsecase) ListPendingKYC(ctx context.Context) ([]*entities.Associate, error) {
	return u.associateRepo.ListByKYCStatus(ctx, entities.KYCPending)
}

// IsRedemptionEligible reports whether an associate may request a payout
func (u *AssociateUsecase) IsRedemptionEligible(associate *entities.Associate) bool {
	return associate.Points >= u.program.RedemptionThreshold &&
		associate.KYCStatus == entities.KYCVerified
}

// Overview bundles an associate with its derived standing for display
func (u *AssociateUsecase) Overview(ctx context.Context, associateID uuid.UUID) (*entities.AssociateOverview, error) {
	associate, err := u.associateRepo.GetByID(ctx, associateID)
	if err != nil {
		return nil, err
	}

	// Same failure mode as payout creation; the estimate must never
	// disagree with what a redemption would actually pay.
	ratio, err := decimal.NewFromString(u.program.PointToINRRatio)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	earnings := decimal.NewFromInt(associate.Points).Mul(ratio)

	remaining := u.program.RedemptionThreshold - associate.Points
	if remaining < 0 {
		remaining = 0
	}

	return &entities.AssociateOverview{
		Associate:          associate,
		EarningsEstimate:   earnings.StringFixed(2),
		RedemptionEligible: u.IsRedemptionEligible(associate),
		PointsToThreshold:  remaining,
	}, nil
}
