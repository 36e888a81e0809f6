package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/service"
)

// CustomerHandler is http handler for customers endpoint
type CustomerHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHandler builds new CustomerHandler
func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

// GetAll returns all customers
// @Summary     Get all customers
// @Description Returns full customer collection
// @Tags        customers
// @Produce     json
// @Success     200 {array}  model.Customer
// @Failure     500 {object} echo.HTTPError
// @Router      /api/customers [get]
func (h *CustomerHandler) GetAll(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Post creates new customer
// @Summary     Create new customer
// @Description Creates customer, email and phone must not be registered yet
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       customer body     newCustomer true "New customer data"
// @Success     201      {object} model.Customer
// @Failure     400      {object} echo.HTTPError
// @Failure     500      {object} echo.HTTPError
// @Router      /api/customers [post]
func (h *CustomerHandler) Post(c echo.Context) error {
	var nc newCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	cust, err := h.customerSvc.Create(c.Request().Context(), &model.Customer{
		FirstName: nc.FirstName,
		LastName:  nc.LastName,
		Email:     nc.Email,
		Phone:     nc.Phone,
		Address:   nc.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cust)
}

// DeleteByID deletes customer by id
// @Summary     Delete customer
// @Description Deletes customer with provided id
// @Tags        customers
// @Produce     plain
// @Param       id  path     int true "Customer id"
// @Success     200 {string} string
// @Failure     400 {object} echo.HTTPError
// @Failure     404 {object} echo.HTTPError
// @Router      /api/customers/{id} [delete]
func (h *CustomerHandler) DeleteByID(c echo.Context) error {
	id, err := pathID(c, "customer")
	if err != nil {
		return err
	}

	if err := h.customerSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("Customer %d deleted successfully", id))
}
