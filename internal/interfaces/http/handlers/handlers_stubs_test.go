package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"partner-portal.backend/internal/config"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/interfaces/http/middleware"
)

func testProgram() config.ProgramConfig {
	return config.ProgramConfig{
		ReferralBasePoints:  100,
		RedemptionThreshold: 500,
		PointToINRRatio:     "1",
		QRBaseURL:           "https://portal.example.com/refer",
		Services:            []string{"Tax Filing", "GST Registration", "Business Loan"},
	}
}

// asAssociate simulates an authenticated associate login upstream of the handler.
func asAssociate(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uuid.New())
		c.Set(middleware.UserRoleKey, "ASSOCIATE")
		c.Set(middleware.AssociateIDKey, id.String())
		c.Next()
	}
}

type associateRepoStub struct {
	createFn            func(ctx context.Context, associate *entities.Associate) error
	getByIDFn           func(ctx context.Context, id uuid.UUID) (*entities.Associate, error)
	getByEmailFn        func(ctx context.Context, email string) (*entities.Associate, error)
	updateFn            func(ctx context.Context, associate *entities.Associate) error
	updateKYCFn         func(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error
	creditReferralFn    func(ctx context.Context, id uuid.UUID, points int64) error
	debitPointsFn       func(ctx context.Context, id uuid.UUID, points int64) error
	creditPointsFn      func(ctx context.Context, id uuid.UUID, points int64) error
	listFn              func(ctx context.Context, search string, limit, offset int) ([]*entities.Associate, int64, error)
	listByKYCStatusFn   func(ctx context.Context, status entities.KYCStatus) ([]*entities.Associate, error)
	listTopByReferralFn func(ctx context.Context, limit int) ([]*entities.Associate, error)
	sumPointsFn         func(ctx context.Context) (int64, error)
}

func (s *associateRepoStub) Create(ctx context.Context, associate *entities.Associate) error {
	if s.createFn != nil {
		return s.createFn(ctx, associate)
	}
	return nil
}

func (s *associateRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Associate, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *associateRepoStub) GetByEmail(ctx context.Context, email string) (*entities.Associate, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *associateRepoStub) Update(ctx context.Context, associate *entities.Associate) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, associate)
	}
	return nil
}

func (s *associateRepoStub) UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error {
	if s.updateKYCFn != nil {
		return s.updateKYCFn(ctx, id, status)
	}
	return nil
}

func (s *associateRepoStub) CreditReferral(ctx context.Context, id uuid.UUID, points int64) error {
	if s.creditReferralFn != nil {
		return s.creditReferralFn(ctx, id, points)
	}
	return nil
}

func (s *associateRepoStub) DebitPoints(ctx context.Context, id uuid.UUID, points int64) error {
	if s.debitPointsFn != nil {
		return s.debitPointsFn(ctx, id, points)
	}
	return nil
}

func (s *associateRepoStub) CreditPoints(ctx context.Context, id uuid.UUID, points int64) error {
	if s.creditPointsFn != nil {
		return s.creditPointsFn(ctx, id, points)
	}
	return nil
}

func (s *associateRepoStub) List(ctx context.Context, search string, limit, offset int) ([]*entities.Associate, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, search, limit, offset)
	}
	return []*entities.Associate{}, 0, nil
}

func (s *associateRepoStub) ListByKYCStatus(ctx context.Context, status entities.KYCStatus) ([]*entities.Associate, error) {
	if s.listByKYCStatusFn != nil {
		return s.listByKYCStatusFn(ctx, status)
	}
	return []*entities.Associate{}, nil
}

func (s *associateRepoStub) ListTopByReferralCount(ctx context.Context, limit int) ([]*entities.Associate, error) {
	if s.listTopByReferralFn != nil {
		return s.listTopByReferralFn(ctx, limit)
	}
	return []*entities.Associate{}, nil
}

func (s *associateRepoStub) SumPoints(ctx context.Context) (int64, error) {
	if s.sumPointsFn != nil {
		return s.sumPointsFn(ctx)
	}
	return 0, nil
}

type referralRepoStub struct {
	createFn          func(ctx context.Context, referral *entities.Referral) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entities.Referral, error)
	updateFn          func(ctx context.Context, referral *entities.Referral) error
	listByAssociateFn func(ctx context.Context, associateID uuid.UUID) ([]*entities.Referral, error)
	listFn            func(ctx context.Context, limit, offset int) ([]*entities.Referral, int64, error)
	countFn           func(ctx context.Context) (int64, error)
}

func (s *referralRepoStub) Create(ctx context.Context, referral *entities.Referral) error {
	if s.createFn != nil {
		return s.createFn(ctx, referral)
	}
	return nil
}

func (s *referralRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Referral, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *referralRepoStub) Update(ctx context.Context, referral *entities.Referral) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, referral)
	}
	return nil
}

func (s *referralRepoStub) ListByAssociate(ctx context.Context, associateID uuid.UUID) ([]*entities.Referral, error) {
	if s.listByAssociateFn != nil {
		return s.listByAssociateFn(ctx, associateID)
	}
	return []*entities.Referral{}, nil
}

func (s *referralRepoStub) List(ctx context.Context, limit, offset int) ([]*entities.Referral, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return []*entities.Referral{}, 0, nil
}

func (s *referralRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type payoutRepoStub struct {
	createFn          func(ctx context.Context, payout *entities.PayoutRequest) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error)
	updateStatusFn    func(ctx context.Context, id uuid.UUID, status entities.PayoutStatus) error
	listByAssociateFn func(ctx context.Context, associateID uuid.UUID) ([]*entities.PayoutRequest, error)
	listFn            func(ctx context.Context, limit, offset int) ([]*entities.PayoutRequest, int64, error)
}

func (s *payoutRepoStub) Create(ctx context.Context, payout *entities.PayoutRequest) error {
	if s.createFn != nil {
		return s.createFn(ctx, payout)
	}
	return nil
}

func (s *payoutRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *payoutRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PayoutStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *payoutRepoStub) ListByAssociate(ctx context.Context, associateID uuid.UUID) ([]*entities.PayoutRequest, error) {
	if s.listByAssociateFn != nil {
		return s.listByAssociateFn(ctx, associateID)
	}
	return []*entities.PayoutRequest{}, nil
}

func (s *payoutRepoStub) List(ctx context.Context, limit, offset int) ([]*entities.PayoutRequest, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return []*entities.PayoutRequest{}, 0, nil
}

type userRepoStub struct {
	createFn     func(ctx context.Context, user *entities.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.User, error)
	updateFn     func(ctx context.Context, user *entities.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(ctx context.Context, user *entities.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type advisorStub struct {
	analysis string
	tip      string
}

func (s *advisorStub) AnalyzeReferralPerformance(context.Context, []*entities.Associate, []*entities.Referral) string {
	return s.analysis
}

func (s *advisorStub) WelcomeTip(_ context.Context, name string) string {
	if s.tip != "" {
		return s.tip
	}
	return "Welcome, " + name + "!"
}
