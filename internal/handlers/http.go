package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/insurance/internal/model"
)

type newCustomer struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email,max=100,emaildomain"`
	Phone     string `json:"phone" validate:"required,inphone"`
	Address   string `json:"address" validate:"required,min=5,max=200"`
}

type assignPolicy struct {
	CustomerID    int                    `json:"customerId" validate:"required,gt=0"`
	PolicyID      int                    `json:"policyId" validate:"required,gt=0"`
	StartDate     string                 `json:"startDate" validate:"required,futuredate"`
	EndDate       string                 `json:"endDate" validate:"required,futuredate"`
	Status        model.AssignmentStatus `json:"status" validate:"required,oneof=ACTIVE PENDING EXPIRED"`
	PremiumAmount float64                `json:"premiumAmount" validate:"required,positive,amountrange=500-1000000"`
}

type newPayment struct {
	CustomerPolicyID int                 `json:"customerPolicyId" validate:"required,gt=0"`
	Amount           float64             `json:"amount" validate:"required,positive,amountrange=100-1000000"`
	PaymentDate      string              `json:"paymentDate" validate:"required,pastdate"`
	PaymentMode      model.PaymentMode   `json:"paymentMode" validate:"required,oneof=UPI CARD NETBANKING CASH CHEQUE"`
	PaymentStatus    model.PaymentStatus `json:"paymentStatus" validate:"required,oneof=PAID PENDING FAILED REFUNDED"`
}

type newClaim struct {
	CustomerPolicyID int               `json:"customerPolicyId" validate:"required,gt=0"`
	ClaimAmount      float64           `json:"claimAmount" validate:"required,positive,amountrange=1000-10000000"`
	ClaimDate        string            `json:"claimDate" validate:"required,pastdate"`
	ClaimStatus      model.ClaimStatus `json:"claimStatus" validate:"required,oneof=PENDING APPROVED REJECTED UNDER_REVIEW SETTLED"`
	Description      string            `json:"description" validate:"required,min=10,max=500"`
}

type signup struct {
	FirstName       string `json:"firstName" validate:"required,min=2,max=50"`
	LastName        string `json:"lastName" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,email,max=100"`
	Phone           string `json:"phone" validate:"required,inphone"`
	DateOfBirth     string `json:"dateOfBirth" validate:"required,minage=18"`
	Address         string `json:"address" validate:"required,min=5,max=200"`
	Password        string `json:"password" validate:"required,min=6,max=20"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type session struct {
	Token     string `json:"token"`
	UserID    int    `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type newUser struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// pathID parses :id path parameter, anything but a positive integer is rejected
func pathID(c echo.Context, resource string) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid %s ID", resource))
	}
	return id, nil
}

func bearerToken(c echo.Context) (string, error) {
	authHdr := c.Request().Header.Get("Authorization")
	hdrSplit := strings.Split(authHdr, " ")
	if len(hdrSplit) != 2 {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
	}
	return hdrSplit[1], nil
}
