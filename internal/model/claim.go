package model

// ClaimStatus specifies processing state of claim
type ClaimStatus string

const (
	ClaimStatusPending     ClaimStatus = "PENDING"
	ClaimStatusApproved    ClaimStatus = "APPROVED"
	ClaimStatusRejected    ClaimStatus = "REJECTED"
	ClaimStatusUnderReview ClaimStatus = "UNDER_REVIEW"
	ClaimStatusSettled     ClaimStatus = "SETTLED"
)

// Claim is insurance claim model entity. CustomerPolicy is populated by
// enrichment only; a dangling assignment reference leaves it nil.
type Claim struct {
	ID               int             `json:"id"`
	CustomerPolicyID int             `json:"customerPolicyId"`
	ClaimAmount      float64         `json:"claimAmount"`
	ClaimDate        string          `json:"claimDate"`
	ClaimStatus      ClaimStatus     `json:"claimStatus"`
	Description      string          `json:"description"`
	CustomerPolicy   *CustomerPolicy `json:"customerPolicy,omitempty"`
}
