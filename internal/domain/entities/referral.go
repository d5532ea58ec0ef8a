package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ReferralStatus represents the lifecycle state of a referral
type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "PENDING"
	ReferralStatusCompleted ReferralStatus = "COMPLETED"
	ReferralStatusRejected  ReferralStatus = "REJECTED"
)

// Referral represents a lead submitted by an associate for a prospective client.
// Once Completed or Rejected a referral is never mutated again.
type Referral struct {
	ID              uuid.UUID      `json:"id"`
	AssociateID     uuid.UUID      `json:"associateId"`
	ClientName      string         `json:"clientName"`
	ServiceInterest string         `json:"serviceInterest"`
	Status          ReferralStatus `json:"status"`
	PointsAwarded   int64          `json:"pointsAwarded"`
	Note            null.String    `json:"note,omitempty"`
	CreatedAt       time.Time      `json:"timestamp"`
	UpdatedAt       time.Time      `json:"-"`
	CompletedAt     null.Time      `json:"completedAt,omitempty"`
}

// SubmitReferralInput represents input for submitting a referral
type SubmitReferralInput struct {
	ClientName      string `json:"clientName" binding:"required,min=2,max=100"`
	ServiceInterest string `json:"serviceInterest" binding:"required"`
	Note            string `json:"note,omitempty"`
}

// CompleteReferralInput carries the points awarded by the fulfillment process
type CompleteReferralInput struct {
	PointsAwarded int64 `json:"pointsAwarded" binding:"required,gt=0"`
}
