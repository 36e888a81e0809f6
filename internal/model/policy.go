package model

// Policy is insurance policy product model entity
type Policy struct {
	ID             int     `json:"id"`
	PolicyName     string  `json:"policyName"`
	PolicyType     string  `json:"policyType"`
	PremiumAmount  float64 `json:"premiumAmount"`
	DurationMonths int     `json:"durationMonths"`
	CoverageAmount float64 `json:"coverageAmount"`
}
