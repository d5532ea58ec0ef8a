package repositories

import (
	"context"

	"github.com/google/uuid"
	"partner-portal.backend/internal/domain/entities"
)

// ReferralRepository defines referral log operations
type ReferralRepository interface {
	Create(ctx context.Context, referral *entities.Referral) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Referral, error)
	Update(ctx context.Context, referral *entities.Referral) error
	// ListByAssociate returns all referrals for one associate in submission order.
	ListByAssociate(ctx context.Context, associateID uuid.UUID) ([]*entities.Referral, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Referral, int64, error)
	Count(ctx context.Context) (int64, error)
}
