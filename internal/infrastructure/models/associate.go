package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Associate struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(100);not null"`
	ShopName      string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone         string    `gorm:"type:varchar(20)"`
	Points        int64     `gorm:"not null;default:0"`
	ReferralCount int64     `gorm:"not null;default:0"`
	QRCodeURL     string    `gorm:"column:qr_code_url;type:varchar(255);not null"`
	JoinedDate    time.Time `gorm:"not null"`
	KYCStatus     string    `gorm:"column:kyc_status;type:varchar(50);not null;default:'NOT_STARTED';index"`
	PANNumber     string    `gorm:"column:pan_number;type:varchar(20)"`
	AadhaarNumber string    `gorm:"type:varchar(20)"`
	BankAccount   string    `gorm:"type:varchar(50)"`
	BankIFSC      string    `gorm:"column:bank_ifsc;type:varchar(20)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
