package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/insurance/internal/service"
)

// PolicyHandler is http handler for policies endpoint
type PolicyHandler struct {
	policySvc service.PolicyService
}

// NewPolicyHandler builds new PolicyHandler
func NewPolicyHandler(policySvc service.PolicyService) *PolicyHandler {
	return &PolicyHandler{policySvc: policySvc}
}

// GetAll returns all policy products
// @Summary     Get all policies
// @Description Returns full policy collection
// @Tags        policies
// @Produce     json
// @Success     200 {array}  model.Policy
// @Failure     500 {object} echo.HTTPError
// @Router      /api/policies [get]
func (h *PolicyHandler) GetAll(c echo.Context) error {
	policies, err := h.policySvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, policies)
}
