package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/infrastructure/models"
)

// PayoutRepository implements payout request operations
type PayoutRepository struct {
	db *gorm.DB
}

// NewPayoutRepository creates a new payout repository
func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// Create creates a new payout request
func (r *PayoutRepository) Create(ctx context.Context, payout *entities.PayoutRequest) error {
	m := r.toModel(payout)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a payout request by ID
func (r *PayoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error) {
	var m models.PayoutRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateStatus transitions a payout request to the given status
func (r *PayoutRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PayoutStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == entities.PayoutStatusProcessed {
		updates["processed_at"] = time.Now()
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.PayoutRequest{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByAssociate returns an associate's payout requests, newest first
func (r *PayoutRepository) ListByAssociate(ctx context.Context, associateID uuid.UUID) ([]*entities.PayoutRequest, error) {
	var payoutModels []models.PayoutRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("associate_id = ?", associateID).
		Order("created_at DESC").
		Find(&payoutModels).Error
	if err != nil {
		return nil, err
	}

	payouts := make([]*entities.PayoutRequest, 0, len(payoutModels))
	for i := range payoutModels {
		payouts = append(payouts, r.toEntity(&payoutModels[i]))
	}
	return payouts, nil
}

// List lists all payout requests, newest first
func (r *PayoutRepository) List(ctx context.Context, limit, offset int) ([]*entities.PayoutRequest, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.PayoutRequest{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var payoutModels []models.PayoutRequest
	if err := query.Find(&payoutModels).Error; err != nil {
		return nil, 0, err
	}

	payouts := make([]*entities.PayoutRequest, 0, len(payoutModels))
	for i := range payoutModels {
		payouts = append(payouts, r.toEntity(&payoutModels[i]))
	}
	return payouts, total, nil
}

func (r *PayoutRepository) toModel(e *entities.PayoutRequest) *models.PayoutRequest {
	m := &models.PayoutRequest{
		ID:          e.ID,
		AssociateID: e.AssociateID,
		Points:      e.Points,
		Amount:      e.Amount.StringFixed(2),
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.ProcessedAt.Valid {
		t := e.ProcessedAt.Time
		m.ProcessedAt = &t
	}
	return m
}

func (r *PayoutRepository) toEntity(m *models.PayoutRequest) *entities.PayoutRequest {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		amount = decimal.Zero
	}
	return &entities.PayoutRequest{
		ID:          m.ID,
		AssociateID: m.AssociateID,
		Points:      m.Points,
		Amount:      amount,
		Status:      entities.PayoutStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		ProcessedAt: null.TimeFromPtr(m.ProcessedAt),
	}
}
