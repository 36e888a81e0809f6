package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/service"
)

// ClaimHandler is http handler for claims endpoint
type ClaimHandler struct {
	claimSvc service.ClaimService
}

// NewClaimHandler builds new ClaimHandler
func NewClaimHandler(claimSvc service.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimSvc: claimSvc}
}

// GetAll returns all claims enriched with their assignment
// @Summary     Get all claims
// @Description Returns claims with joined assignment, customer and policy rows
// @Tags        claims
// @Produce     json
// @Success     200 {array}  model.Claim
// @Failure     500 {object} echo.HTTPError
// @Router      /api/claims [get]
func (h *ClaimHandler) GetAll(c echo.Context) error {
	claims, err := h.claimSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}

// Post creates new claim
// @Summary     Create new claim
// @Description Creates claim, claim date must not be in the future
// @Tags        claims
// @Accept      json
// @Produce     json
// @Param       claim body     newClaim true "New claim data"
// @Success     201   {object} model.Claim
// @Failure     400   {object} echo.HTTPError
// @Failure     500   {object} echo.HTTPError
// @Router      /api/claims [post]
func (h *ClaimHandler) Post(c echo.Context) error {
	var nc newClaim
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	claim, err := h.claimSvc.Create(c.Request().Context(), &model.Claim{
		CustomerPolicyID: nc.CustomerPolicyID,
		ClaimAmount:      nc.ClaimAmount,
		ClaimDate:        nc.ClaimDate,
		ClaimStatus:      nc.ClaimStatus,
		Description:      nc.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, claim)
}

// DeleteByID deletes claim by id
// @Summary     Delete claim
// @Description Deletes claim with provided id
// @Tags        claims
// @Produce     plain
// @Param       id  path     int true "Claim id"
// @Success     200 {string} string
// @Failure     400 {object} echo.HTTPError
// @Failure     404 {object} echo.HTTPError
// @Router      /api/claims/{id} [delete]
func (h *ClaimHandler) DeleteByID(c echo.Context) error {
	id, err := pathID(c, "claim")
	if err != nil {
		return err
	}

	if err := h.claimSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("Claim %d deleted successfully", id))
}
