package repositories

import (
	"context"

	"github.com/google/uuid"
	"partner-portal.backend/internal/domain/entities"
)

// PayoutRepository defines payout request operations
type PayoutRepository interface {
	Create(ctx context.Context, payout *entities.PayoutRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PayoutStatus) error
	ListByAssociate(ctx context.Context, associateID uuid.UUID) ([]*entities.PayoutRequest, error)
	List(ctx context.Context, limit, offset int) ([]*entities.PayoutRequest, int64, error)
}
