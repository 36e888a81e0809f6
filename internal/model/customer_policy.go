package model

// AssignmentStatus specifies lifecycle state of customer policy assignment
type AssignmentStatus string

const (
	// AssignmentStatusActive means coverage is in effect
	AssignmentStatusActive AssignmentStatus = "ACTIVE"
	// AssignmentStatusPending means coverage has not started yet
	AssignmentStatusPending AssignmentStatus = "PENDING"
	// AssignmentStatusExpired means coverage period is over
	AssignmentStatusExpired AssignmentStatus = "EXPIRED"
)

// CustomerPolicy links one customer to one policy with coverage dates and premium.
// Customer and Policy are populated by enrichment only and stay nil when the
// referenced row no longer exists.
type CustomerPolicy struct {
	ID            int              `json:"id"`
	CustomerID    int              `json:"customerId"`
	PolicyID      int              `json:"policyId"`
	StartDate     string           `json:"startDate"`
	EndDate       string           `json:"endDate"`
	Status        AssignmentStatus `json:"status"`
	PremiumAmount float64          `json:"premiumAmount"`
	Customer      *Customer        `json:"customer,omitempty"`
	Policy        *Policy          `json:"policy,omitempty"`
}
