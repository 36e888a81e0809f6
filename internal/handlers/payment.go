package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/service"
)

// PaymentHandler is http handler for payments endpoint
type PaymentHandler struct {
	paymentSvc service.PaymentService
}

// NewPaymentHandler builds new PaymentHandler
func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// GetAll returns all payments enriched with their assignment
// @Summary     Get all payments
// @Description Returns payments with joined assignment, customer and policy rows
// @Tags        payments
// @Produce     json
// @Success     200 {array}  model.Payment
// @Failure     500 {object} echo.HTTPError
// @Router      /api/payments [get]
func (h *PaymentHandler) GetAll(c echo.Context) error {
	payments, err := h.paymentSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// Post creates new payment
// @Summary     Create new payment
// @Description Creates payment, payment date must not be in the future
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       payment body     newPayment true "New payment data"
// @Success     201     {object} model.Payment
// @Failure     400     {object} echo.HTTPError
// @Failure     500     {object} echo.HTTPError
// @Router      /api/payments [post]
func (h *PaymentHandler) Post(c echo.Context) error {
	var np newPayment
	if err := c.Bind(&np); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&np); err != nil {
		return err
	}

	p, err := h.paymentSvc.Create(c.Request().Context(), &model.Payment{
		CustomerPolicyID: np.CustomerPolicyID,
		Amount:           np.Amount,
		PaymentDate:      np.PaymentDate,
		PaymentMode:      np.PaymentMode,
		PaymentStatus:    np.PaymentStatus,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// DeleteByID deletes payment by id
// @Summary     Delete payment
// @Description Deletes payment with provided id
// @Tags        payments
// @Produce     plain
// @Param       id  path     int true "Payment id"
// @Success     200 {string} string
// @Failure     400 {object} echo.HTTPError
// @Failure     404 {object} echo.HTTPError
// @Router      /api/payments/{id} [delete]
func (h *PaymentHandler) DeleteByID(c echo.Context) error {
	id, err := pathID(c, "payment")
	if err != nil {
		return err
	}

	if err := h.paymentSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("Payment %d deleted successfully", id))
}
