package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/service"
	"github.com/umalmyha/insurance/internal/validation"
)

// login is the only call with a client-facing deadline, a hanging store
// must not keep the login form spinning forever
const loginTimeout = 30 * time.Second

// AuthHTTPHandler is http handler for auth endpoint
type AuthHTTPHandler struct {
	authSvc     service.AuthService
	emailExists validation.AsyncRule
	phoneExists validation.AsyncRule
}

// NewAuthHTTPHandler builds new AuthHTTPHandler
func NewAuthHTTPHandler(authSvc service.AuthService, customers validation.CustomerLookup) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		authSvc:     authSvc,
		emailExists: validation.EmailExists(customers),
		phoneExists: validation.PhoneExists(customers),
	}
}

// Signup signups new user
// @Summary     Signup new account
// @Description Register new account based on provided credentials
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       signup body     signup true "New user data"
// @Success     200    {object} newUser
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/signup [post]
func (h *AuthHTTPHandler) Signup(c echo.Context) error {
	var su signup
	if err := c.Bind(&su); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&su); err != nil {
		return err
	}

	// uniqueness against the customer collection is advisory and fail-open,
	// a failing lookup never blocks registration
	ctx := c.Request().Context()
	pldErr := &validation.PayloadError{}
	if fieldErr := h.emailExists(ctx, su.Email); fieldErr != nil {
		pldErr.Violation("email", fieldErr.Message)
	}
	if fieldErr := h.phoneExists(ctx, su.Phone); fieldErr != nil {
		pldErr.Violation("phone", fieldErr.Message)
	}
	if pldErr.HasViolations() {
		return pldErr
	}

	u, err := h.authSvc.Signup(ctx, &model.User{
		Email:       su.Email,
		FirstName:   su.FirstName,
		LastName:    su.LastName,
		Phone:       su.Phone,
		DateOfBirth: su.DateOfBirth,
		Address:     su.Address,
	}, su.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &newUser{
		ID:    u.ID,
		Email: u.Email,
	})
}

// Login logins user
// @Summary     Login user
// @Description Verifies provided credentials and issues session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login body     login true "User credentials"
// @Success     200   {object} session
// @Failure     400   {object} echo.HTTPError
// @Failure     401   {object} echo.HTTPError
// @Failure     500   {object} echo.HTTPError
// @Router      /api/auth/login [post]
func (h *AuthHTTPHandler) Login(c echo.Context) error {
	var lgn login
	if err := c.Bind(&lgn); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgn); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), loginTimeout)
	defer cancel()

	s, err := h.authSvc.Login(ctx, lgn.Email, lgn.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &session{
		Token:     s.Token,
		UserID:    s.UserID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
	})
}

// Logout logouts user
// @Summary     Logout user
// @Description Removes server-side session of provided token
// @Tags        auth
// @Success     200 "Successful status code"
// @Failure     401 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/auth/logout [post]
func (h *AuthHTTPHandler) Logout(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	if err := h.authSvc.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Me returns session of current user
// @Summary     Get current user
// @Description Returns session data for provided token
// @Tags        auth
// @Produce     json
// @Success     200 {object} session
// @Failure     401 {object} echo.HTTPError
// @Router      /api/auth/me [get]
func (h *AuthHTTPHandler) Me(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	s, err := h.authSvc.CurrentUser(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &session{
		Token:     s.Token,
		UserID:    s.UserID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
	})
}
