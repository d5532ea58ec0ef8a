package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"partner-portal.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock AssociateRepository
type MockAssociateRepository struct {
	mock.Mock
}

func (m *MockAssociateRepository) Create(ctx context.Context, associate *entities.Associate) error {
	args := m.Called(ctx, associate)
	return args.Error(0)
}

func (m *MockAssociateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Associate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Associate), args.Error(1)
}

func (m *MockAssociateRepository) GetByEmail(ctx context.Context, email string) (*entities.Associate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Associate), args.Error(1)
}

func (m *MockAssociateRepository) Update(ctx context.Context, associate *entities.Associate) error {
	args := m.Called(ctx, associate)
	return args.Error(0)
}

func (m *MockAssociateRepository) UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAssociateRepository) CreditReferral(ctx context.Context, id uuid.UUID, points int64) error {
	args := m.Called(ctx, id, points)
	return args.Error(0)
}

func (m *MockAssociateRepository) DebitPoints(ctx context.Context, id uuid.UUID, points int64) error {
	args := m.Called(ctx, id, points)
	return args.Error(0)
}

func (m *MockAssociateRepository) CreditPoints(ctx context.Context, id uuid.UUID, points int64) error {
	args := m.Called(ctx, id, points)
	return args.Error(0)
}

func (m *MockAssociateRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.Associate, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Associate), args.Get(1).(int64), args.Error(2)
}

func (m *MockAssociateRepository) ListByKYCStatus(ctx context.Context, status entities.KYCStatus) ([]*entities.Associate, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Associate), args.Error(1)
}

func (m *MockAssociateRepository) ListTopByReferralCount(ctx context.Context, limit int) ([]*entities.Associate, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Associate), args.Error(1)
}

func (m *MockAssociateRepository) SumPoints(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ReferralRepository
type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) Create(ctx context.Context, referral *entities.Referral) error {
	args := m.Called(ctx, referral)
	return args.Error(0)
}

func (m *MockReferralRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Referral, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Referral), args.Error(1)
}

func (m *MockReferralRepository) Update(ctx context.Context, referral *entities.Referral) error {
	args := m.Called(ctx, referral)
	return args.Error(0)
}

func (m *MockReferralRepository) ListByAssociate(ctx context.Context, associateID uuid.UUID) ([]*entities.Referral, error) {
	args := m.Called(ctx, associateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Referral), args.Error(1)
}

func (m *MockReferralRepository) List(ctx context.Context, limit, offset int) ([]*entities.Referral, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Referral), args.Get(1).(int64), args.Error(2)
}

func (m *MockReferralRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock PayoutRepository
type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) Create(ctx context.Context, payout *entities.PayoutRequest) error {
	args := m.Called(ctx, payout)
	return args.Error(0)
}

func (m *MockPayoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PayoutRequest), args.Error(1)
}

func (m *MockPayoutRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PayoutStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockPayoutRepository) ListByAssociate(ctx context.Context, associateID uuid.UUID) ([]*entities.PayoutRequest, error) {
	args := m.Called(ctx, associateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PayoutRequest), args.Error(1)
}

func (m *MockPayoutRepository) List(ctx context.Context, limit, offset int) ([]*entities.PayoutRequest, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.PayoutRequest), args.Get(1).(int64), args.Error(2)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Mock PerformanceAdvisor
type MockPerformanceAdvisor struct {
	mock.Mock
}

func (m *MockPerformanceAdvisor) AnalyzeReferralPerformance(ctx context.Context, associates []*entities.Associate, referrals []*entities.Referral) string {
	args := m.Called(ctx, associates, referrals)
	return args.String(0)
}

func (m *MockPerformanceAdvisor) WelcomeTip(ctx context.Context, associateName string) string {
	args := m.Called(ctx, associateName)
	return args.String(0)
}
