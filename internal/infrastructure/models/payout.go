package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayoutRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssociateID uuid.UUID `gorm:"type:uuid;not null;index"`
	Points      int64     `gorm:"not null"`
	Amount      string    `gorm:"type:decimal(18,2);not null"`
	Status      string    `gorm:"type:varchar(50);not null;default:'PENDING';index"`
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
