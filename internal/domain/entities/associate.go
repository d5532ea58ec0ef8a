package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// KYCStatus represents an associate's KYC verification status
type KYCStatus string

const (
	KYCNotStarted KYCStatus = "NOT_STARTED"
	KYCPending    KYCStatus = "PENDING"
	KYCVerified   KYCStatus = "VERIFIED"
	KYCRejected   KYCStatus = "REJECTED"
)

// Associate represents a shop partner enrolled in the referral program
type Associate struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	ShopName      string      `json:"shopName"`
	Email         string      `json:"email"`
	Phone         null.String `json:"phone,omitempty"`
	Points        int64       `json:"points"`
	ReferralCount int64       `json:"referralCount"`
	QRCodeURL     string      `json:"qrCodeUrl"`
	JoinedDate    time.Time   `json:"joinedDate"`
	KYCStatus     KYCStatus   `json:"kycStatus"`
	PANNumber     null.String `json:"panNumber,omitempty"`
	AadhaarNumber null.String `json:"aadhaarNumber,omitempty"`
	BankAccount   null.String `json:"bankAccount,omitempty"`
	BankIFSC      null.String `json:"bankIfsc,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	DeletedAt     null.Time   `json:"-"`
}

// OnboardAssociateInput represents input for onboarding a new associate
type OnboardAssociateInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	ShopName string `json:"shopName" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone,omitempty"`
}

// SubmitKYCInput represents a KYC submission. Unset fields are left untouched
// (merge-update semantics).
type SubmitKYCInput struct {
	PANNumber     string `json:"panNumber,omitempty"`
	AadhaarNumber string `json:"aadhaarNumber,omitempty"`
	BankAccount   string `json:"bankAccount,omitempty"`
	BankIFSC      string `json:"bankIfsc,omitempty"`
	ShopName      string `json:"shopName,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// ReviewKYCInput represents an admin KYC review decision
type ReviewKYCInput struct {
	Decision KYCStatus `json:"decision" binding:"required"`
}

// AssociateOverview bundles an associate with its derived standing
type AssociateOverview struct {
	Associate          *Associate `json:"associate"`
	EarningsEstimate   string     `json:"earningsEstimate"`
	RedemptionEligible bool       `json:"redemptionEligible"`
	PointsToThreshold  int64      `json:"pointsToThreshold"`
}
