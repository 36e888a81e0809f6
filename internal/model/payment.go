package model

// PaymentMode specifies how payment was performed
type PaymentMode string

const (
	PaymentModeUpi        PaymentMode = "UPI"
	PaymentModeCard       PaymentMode = "CARD"
	PaymentModeNetBanking PaymentMode = "NETBANKING"
	PaymentModeCash       PaymentMode = "CASH"
	PaymentModeCheque     PaymentMode = "CHEQUE"
)

// PaymentStatus specifies settlement state of payment
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Payment is premium payment model entity. CustomerPolicy is populated by
// enrichment only; a dangling assignment reference leaves it nil.
type Payment struct {
	ID               int             `json:"id"`
	CustomerPolicyID int             `json:"customerPolicyId"`
	Amount           float64         `json:"amount"`
	PaymentDate      string          `json:"paymentDate"`
	PaymentMode      PaymentMode     `json:"paymentMode"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	CustomerPolicy   *CustomerPolicy `json:"customerPolicy,omitempty"`
}
