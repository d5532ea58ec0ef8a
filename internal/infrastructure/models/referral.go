package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Referral struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssociateID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientName      string    `gorm:"type:varchar(100);not null"`
	ServiceInterest string    `gorm:"type:varchar(100);not null"`
	Status          string    `gorm:"type:varchar(50);not null;default:'PENDING';index"`
	PointsAwarded   int64     `gorm:"not null;default:0"`
	Note            string    `gorm:"type:text"`
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
