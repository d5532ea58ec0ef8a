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

// AssociateRepository implements associate roster operations
type AssociateRepository struct {
	db *gorm.DB
}

// NewAssociateRepository creates a new associate repository
func NewAssociateRepository(db *gorm.DB) *AssociateRepository {
	return &AssociateRepository{db: db}
}

// Create creates a new associate
func (r *AssociateRepository) Create(ctx context.Context, associate *entities.Associate) error {
	m := r.toModel(associate)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets an associate by ID
func (r *AssociateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Associate, error) {
	var m models.Associate
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets an associate by email
func (r *AssociateRepository) GetByEmail(ctx context.Context, email string) (*entities.Associate, error) {
	var m models.Associate
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update updates the mutable profile and KYC fields of an associate.
// Points, referral count and joined date are never written here.
func (r *AssociateRepository) Update(ctx context.Context, associate *entities.Associate) error {
	updates := map[string]interface{}{
		"name":           associate.Name,
		"shop_name":      associate.ShopName,
		"phone":          associate.Phone.String,
		"kyc_status":     string(associate.KYCStatus),
		"pan_number":     associate.PANNumber.String,
		"aadhaar_number": associate.AadhaarNumber.String,
		"bank_account":   associate.BankAccount.String,
		"bank_ifsc":      associate.BankIFSC.String,
		"updated_at":     time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Associate{}).Where("id = ?", associate.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateKYCStatus updates an associate's KYC status
func (r *AssociateRepository) UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Associate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"kyc_status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CreditReferral atomically increments points and referral count
func (r *AssociateRepository) CreditReferral(ctx context.Context, id uuid.UUID, points int64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Associate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"points":         gorm.Expr("points + ?", points),
			"referral_count": gorm.Expr("referral_count + 1"),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CreditPoints increments points only (payout refunds)
func (r *AssociateRepository) CreditPoints(ctx context.Context, id uuid.UUID, points int64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Associate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"points":     gorm.Expr("points + ?", points),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DebitPoints decrements points, refusing to drive the balance negative
func (r *AssociateRepository) DebitPoints(ctx context.Context, id uuid.UUID, points int64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Associate{}).
		Where("id = ? AND points >= ?", id, points).
		Updates(map[string]interface{}{
			"points":     gorm.Expr("points - ?", points),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists associates with optional search filter, oldest first
func (r *AssociateRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.Associate, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Associate{})

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("name LIKE ? OR shop_name LIKE ? OR email LIKE ?", searchTerm, searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var associateModels []models.Associate
	if err := query.Find(&associateModels).Error; err != nil {
		return nil, 0, err
	}

	associates := make([]*entities.Associate, 0, len(associateModels))
	for i := range associateModels {
		associates = append(associates, r.toEntity(&associateModels[i]))
	}
	return associates, total, nil
}

// ListByKYCStatus lists associates in the given KYC state
func (r *AssociateRepository) ListByKYCStatus(ctx context.Context, status entities.KYCStatus) ([]*entities.Associate, error) {
	var associateModels []models.Associate
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("kyc_status = ?", string(status)).
		Order("created_at ASC").
		Find(&associateModels).Error
	if err != nil {
		return nil, err
	}

	associates := make([]*entities.Associate, 0, len(associateModels))
	for i := range associateModels {
		associates = append(associates, r.toEntity(&associateModels[i]))
	}
	return associates, nil
}

// ListTopByReferralCount returns the top associates ordered by referral count descending
func (r *AssociateRepository) ListTopByReferralCount(ctx context.Context, limit int) ([]*entities.Associate, error) {
	var associateModels []models.Associate
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("referral_count DESC, created_at ASC").
		Limit(limit).
		Find(&associateModels).Error
	if err != nil {
		return nil, err
	}

	associates := make([]*entities.Associate, 0, len(associateModels))
	for i := range associateModels {
		associates = append(associates, r.toEntity(&associateModels[i]))
	}
	return associates, nil
}

// SumPoints returns the total outstanding points liability
func (r *AssociateRepository) SumPoints(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Associate{}).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *AssociateRepository) toModel(e *entities.Associate) *models.Associate {
	return &models.Associate{
		ID:            e.ID,
		Name:          e.Name,
		ShopName:      e.ShopName,
		Email:         e.Email,
		Phone:         e.Phone.String,
		Points:        e.Points,
		ReferralCount: e.ReferralCount,
		QRCodeURL:     e.QRCodeURL,
		JoinedDate:    e.JoinedDate,
		KYCStatus:     string(e.KYCStatus),
		PANNumber:     e.PANNumber.String,
		AadhaarNumber: e.AadhaarNumber.String,
		BankAccount:   e.BankAccount.String,
		BankIFSC:      e.BankIFSC.String,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (r *AssociateRepository) toEntity(m *models.Associate) *entities.Associate {
	return &entities.Associate{
		ID:            m.ID,
		Name:          m.Name,
		ShopName:      m.ShopName,
		Email:         m.Email,
		Phone:         null.NewString(m.Phone, m.Phone != ""),
		Points:        m.Points,
		ReferralCount: m.ReferralCount,
		QRCodeURL:     m.QRCodeURL,
		JoinedDate:    m.JoinedDate,
		KYCStatus:     entities.KYCStatus(m.KYCStatus),
		PANNumber:     null.NewString(m.PANNumber, m.PANNumber != ""),
		AadhaarNumber: null.NewString(m.AadhaarNumber, m.AadhaarNumber != ""),
		BankAccount:   null.NewString(m.BankAccount, m.BankAccount != ""),
		BankIFSC:      null.NewString(m.BankIFSC, m.BankIFSC != ""),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
