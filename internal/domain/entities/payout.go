package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// PayoutStatus represents the state of a payout request
type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "PENDING"
	PayoutStatusProcessed PayoutStatus = "PROCESSED"
	PayoutStatusCancelled PayoutStatus = "CANCELLED"
)

// PayoutRequest represents a redemption of accumulated points for currency.
// Amount is captured at creation time from the configured conversion rate so
// it stays correct if the rate ever changes.
type PayoutRequest struct {
	ID          uuid.UUID       `json:"id"`
	AssociateID uuid.UUID       `json:"associateId"`
	Points      int64           `json:"points"`
	Amount      decimal.Decimal `json:"amount"`
	Status      PayoutStatus    `json:"status"`
	CreatedAt   time.Time       `json:"timestamp"`
	UpdatedAt   time.Time       `json:"-"`
	ProcessedAt null.Time       `json:"processedAt,omitempty"`
}

// UpdatePayoutStatusInput represents an admin decision on a payout request
type UpdatePayoutStatusInput struct {
	Status PayoutStatus `json:"status" binding:"required"`
}
