package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/infrastructure/models"
)

// ReferralRepository implements referral log operations
type ReferralRepository struct {
	db *gorm.DB
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// Create creates a new referral
func (r *ReferralRepository) Create(ctx context.Context, referral *entities.Referral) error {
	m := r.toModel(referral)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a referral by ID
func (r *ReferralRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Referral, error) {
	var m models.Referral
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update writes the status and award fields of a referral
func (r *ReferralRepository) Update(ctx context.Context, referral *entities.Referral) error {
	updates := map[string]interface{}{
		"status":         string(referral.Status),
		"points_awarded": referral.PointsAwarded,
		"updated_at":     time.Now(),
	}
	if referral.CompletedAt.Valid {
		updates["completed_at"] = referral.CompletedAt.Time
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Referral{}).Where("id = ?", referral.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByAssociate returns an associate's referrals in submission order
func (r *ReferralRepository) ListByAssociate(ctx context.Context, associateID uuid.UUID) ([]*entities.Referral, error) {
	var referralModels []models.Referral
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("associate_id = ?", associateID).
		Order("created_at ASC").
		Find(&referralModels).Error
	if err != nil {
		return nil, err
	}

	referrals := make([]*entities.Referral, 0, len(referralModels))
	for i := range referralModels {
		referrals = append(referrals, r.toEntity(&referralModels[i]))
	}
	return referrals, nil
}

// List lists referrals across all associates, newest first
func (r *ReferralRepository) List(ctx context.Context, limit, offset int) ([]*entities.Referral, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Referral{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var referralModels []models.Referral
	if err := query.Find(&referralModels).Error; err != nil {
		return nil, 0, err
	}

	referrals := make([]*entities.Referral, 0, len(referralModels))
	for i := range referralModels {
		referrals = append(referrals, r.toEntity(&referralModels[i]))
	}
	return referrals, total, nil
}

// Count returns the gross referral count
func (r *ReferralRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Referral{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ReferralRepository) toModel(e *entities.Referral) *models.Referral {
	m := &models.Referral{
		ID:              e.ID,
		AssociateID:     e.AssociateID,
		ClientName:      e.ClientName,
		ServiceInterest: e.ServiceInterest,
		Status:          string(e.Status),
		PointsAwarded:   e.PointsAwarded,
		Note:            e.Note.String,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.CompletedAt.Valid {
		t := e.CompletedAt.Time
		m.CompletedAt = &t
	}
	return m
}

func (r *ReferralRepository) toEntity(m *models.Referral) *entities.Referral {
	return &entities.Referral{
		ID:              m.ID,
		AssociateID:     m.AssociateID,
		ClientName:      m.ClientName,
		ServiceInterest: m.ServiceInterest,
		Status:          entities.ReferralStatus(m.Status),
		PointsAwarded:   m.PointsAwarded,
		Note:            null.NewString(m.Note, m.Note != ""),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CompletedAt:     null.TimeFromPtr(m.CompletedAt),
	}
}
