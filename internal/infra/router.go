package infra

import (
	stderrors "errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/go-redis/redis/v9"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/insurance/internal/cache"
	"github.com/umalmyha/insurance/internal/config"
	apperrors "github.com/umalmyha/insurance/internal/errors"
	"github.com/umalmyha/insurance/internal/handlers"
	"github.com/umalmyha/insurance/internal/middleware"
	"github.com/umalmyha/insurance/internal/repository"
	"github.com/umalmyha/insurance/internal/service"
	"github.com/umalmyha/insurance/internal/validation"
)

func Router(client *redis.Client, cfg config.Config) (*echo.Echo, error) {
	e := echo.New()

	v, trans, err := Validator(cfg.ValidationCfg.AllowedEmailDomains)
	if err != nil {
		return nil, err
	}
	e.Validator = validation.Echo(v, trans)

	e.HTTPErrorHandler = ErrorHandler(e)

	// Caches
	customerCache := cache.NewRedisCustomerCache(client)
	policyCache := cache.NewRedisPolicyCache(client)

	// Repositories
	customerRepo := repository.NewRedisCustomerRepository(client)
	policyRepo := repository.NewRedisPolicyRepository(client)
	assignmentRepo := repository.NewRedisCustomerPolicyRepository(client)
	paymentRepo := repository.NewRedisPaymentRepository(client)
	claimRepo := repository.NewRedisClaimRepository(client)
	userRepo := repository.NewRedisUserRepository(client)
	sessionRepo := repository.NewRedisSessionRepository(client, cfg.AuthCfg.SessionTimeToLive)

	// Extra functionality
	enricher := service.NewEnricher(customerRepo, policyRepo, assignmentRepo, customerCache, policyCache)

	// Services
	customerSvc := service.NewCustomerService(customerRepo, customerCache)
	policySvc := service.NewPolicyService(policyRepo)
	assignmentSvc := service.NewCustomerPolicyService(assignmentRepo, enricher)
	paymentSvc := service.NewPaymentService(paymentRepo, enricher)
	claimSvc := service.NewClaimService(claimRepo, enricher)
	authSvc := service.NewAuthService(userRepo, sessionRepo)

	// Handlers
	customerHandler := handlers.NewCustomerHandler(customerSvc)
	policyHandler := handlers.NewPolicyHandler(policySvc)
	assignmentHandler := handlers.NewCustomerPolicyHandler(assignmentSvc)
	paymentHandler := handlers.NewPaymentHandler(paymentSvc)
	claimHandler := handlers.NewClaimHandler(claimSvc)
	authHandler := handlers.NewAuthHTTPHandler(authSvc, customerSvc)

	// Middleware
	var apiMw []echo.MiddlewareFunc
	if cfg.LatencyCfg.Enabled {
		apiMw = append(apiMw, middleware.SimulateLatency(cfg.LatencyCfg.ReadDelay, cfg.LatencyCfg.WriteDelay))
	}

	// API routes
	api := e.Group("/api", apiMw...)

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/signup", authHandler.Signup)
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/logout", authHandler.Logout)
	authAPI.GET("/me", authHandler.Me)

	// customers
	customersAPI := api.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.DELETE("/:id", customerHandler.DeleteByID)

	// policies
	policiesAPI := api.Group("/policies")
	policiesAPI.GET("", policyHandler.GetAll)

	// customer-policies
	assignmentsAPI := api.Group("/customer-policies")
	assignmentsAPI.GET("", assignmentHandler.GetAll)
	assignmentsAPI.POST("/assign", assignmentHandler.Assign)
	assignmentsAPI.DELETE("/:id", assignmentHandler.DeleteByID)

	// payments
	paymentsAPI := api.Group("/payments")
	paymentsAPI.GET("", paymentHandler.GetAll)
	paymentsAPI.POST("", paymentHandler.Post)
	paymentsAPI.DELETE("/:id", paymentHandler.DeleteByID)

	// claims
	claimsAPI := api.Group("/claims")
	claimsAPI.GET("", claimHandler.GetAll)
	claimsAPI.POST("", claimHandler.Post)
	claimsAPI.DELETE("/:id", claimHandler.DeleteByID)

	// anything unrecognized is handed to the real backend when configured
	if cfg.ServerCfg.UpstreamURL != "" {
		passthrough, err := Passthrough(cfg.ServerCfg.UpstreamURL)
		if err != nil {
			return nil, err
		}
		e.Any("/*", passthrough)
	}

	return e, nil
}

// Validator builds validator with engine rules and translated messages,
// violation fields are reported by their json names
func Validator(allowedEmailDomains []string) (*validator.Validate, ut.Translator, error) {
	v := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, nil, stderrors.New("failed to find en translator")
	}

	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, nil, err
	}

	if err := validation.Register(v, trans, allowedEmailDomains); err != nil {
		return nil, nil, err
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v, trans, nil
}

// ErrorHandler maps application errors to http statuses, anything
// unrecognized is left to echo
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			bizErr      *apperrors.BusinessErr
			notFoundErr *apperrors.EntryNotFoundErr
			unauthErr   *apperrors.UnauthorizedErr
			pldErr      *validation.PayloadError
		)

		switch {
		case stderrors.As(err, &bizErr):
			_ = c.JSON(http.StatusBadRequest, echo.Map{"message": bizErr.Error()})
		case stderrors.As(err, &notFoundErr):
			_ = c.JSON(http.StatusNotFound, echo.Map{"message": notFoundErr.Error()})
		case stderrors.As(err, &unauthErr):
			_ = c.JSON(http.StatusUnauthorized, echo.Map{"message": unauthErr.Error()})
		case stderrors.As(err, &pldErr):
			_ = c.JSON(http.StatusBadRequest, pldErr)
		default:
			logrus.Errorf("error occurred on request processing - %v", err)
			e.DefaultHTTPErrorHandler(err, c)
		}
	}
}
