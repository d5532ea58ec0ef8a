package entities

// LedgerMetrics holds the derived program-wide values. They are recomputed on
// demand from current state and never stored.
type LedgerMetrics struct {
	TotalPointsLiability int64        `json:"totalPointsLiability"`
	GrossReferralCount   int64        `json:"grossReferralCount"`
	PendingKYC           []*Associate `json:"pendingKyc"`
	TopAssociates        []*Associate `json:"topAssociatesByReferralCount"`
}
