package repositories

import (
	"context"

	"github.com/google/uuid"
	"partner-portal.backend/internal/domain/entities"
)

// AssociateRepository defines associate roster operations
type AssociateRepository interface {
	Create(ctx context.Context, associate *entities.Associate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Associate, error)
	GetByEmail(ctx context.Context, email string) (*entities.Associate, error)
	Update(ctx context.Context, associate *entities.Associate) error
	UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error
	// CreditReferral atomically increments points and referral count.
	CreditReferral(ctx context.Context, id uuid.UUID, points int64) error
	// DebitPoints decrements points; it fails with ErrBelowThreshold semantics
	// at the usecase level, the repository only guards against negative balances.
	DebitPoints(ctx context.Context, id uuid.UUID, points int64) error
	CreditPoints(ctx context.Context, id uuid.UUID, points int64) error
	List(ctx context.Context, search string, limit, offset int) ([]*entities.Associate, int64, error)
	ListByKYCStatus(ctx context.Context, status entities.KYCStatus) ([]*entities.Associate, error)
	ListTopByReferralCount(ctx context.Context, limit int) ([]*entities.Associate, error)
	SumPoints(ctx context.Context) (int64, error)
}
