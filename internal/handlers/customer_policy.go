package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/service"
	"github.com/umalmyha/insurance/internal/validation"
)

// CustomerPolicyHandler is http handler for customer-policies endpoint
type CustomerPolicyHandler struct {
	assignmentSvc service.CustomerPolicyService
	datesRule     validation.FormRule
}

// NewCustomerPolicyHandler builds new CustomerPolicyHandler
func NewCustomerPolicyHandler(assignmentSvc service.CustomerPolicyService) *CustomerPolicyHandler {
	return &CustomerPolicyHandler{
		assignmentSvc: assignmentSvc,
		datesRule:     validation.DateComparison("startDate", "endDate"),
	}
}

// GetAll returns all assignments enriched with customer and policy
// @Summary     Get all policy assignments
// @Description Returns assignments with joined customer and policy rows
// @Tags        customer-policies
// @Produce     json
// @Success     200 {array}  model.CustomerPolicy
// @Failure     500 {object} echo.HTTPError
// @Router      /api/customer-policies [get]
func (h *CustomerPolicyHandler) GetAll(c echo.Context) error {
	assignments, err := h.assignmentSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assignments)
}

// Assign creates new customer policy assignment
// @Summary     Assign policy to customer
// @Description Creates assignment, end date must be strictly after start date
// @Tags        customer-policies
// @Accept      json
// @Produce     json
// @Param       assignment body     assignPolicy true "New assignment data"
// @Success     201        {object} model.CustomerPolicy
// @Failure     400        {object} echo.HTTPError
// @Failure     500        {object} echo.HTTPError
// @Router      /api/customer-policies/assign [post]
func (h *CustomerPolicyHandler) Assign(c echo.Context) error {
	var ap assignPolicy
	if err := c.Bind(&ap); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ap); err != nil {
		return err
	}

	form := validation.Form{"startDate": ap.StartDate, "endDate": ap.EndDate}
	fieldErrs := validation.FieldErrors{}
	if fieldErr := h.datesRule(form, fieldErrs); fieldErr != nil {
		return validation.NewPayloadError(fieldErrs)
	}

	cp, err := h.assignmentSvc.Assign(c.Request().Context(), &model.CustomerPolicy{
		CustomerID:    ap.CustomerID,
		PolicyID:      ap.PolicyID,
		StartDate:     ap.StartDate,
		EndDate:       ap.EndDate,
		Status:        ap.Status,
		PremiumAmount: ap.PremiumAmount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cp)
}

// DeleteByID deletes assignment by id
// @Summary     Delete policy assignment
// @Description Deletes assignment with provided id, dependent payments and claims are kept
// @Tags        customer-policies
// @Produce     plain
// @Param       id  path     int true "Assignment id"
// @Success     200 {string} string
// @Failure     400 {object} echo.HTTPError
// @Failure     404 {object} echo.HTTPError
// @Router      /api/customer-policies/{id} [delete]
func (h *CustomerPolicyHandler) DeleteByID(c echo.Context) error {
	id, err := pathID(c, "policy")
	if err != nil {
		return err
	}

	if err := h.assignmentSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("Policy %d deleted successfully", id))
}
