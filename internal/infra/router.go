package infra

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/clienthub/clienthub/docs" // swagger docs registration
	"github.com/clienthub/clienthub/internal/auth"
	"github.com/clienthub/clienthub/internal/config"
	"github.com/clienthub/clienthub/internal/handlers"
	"github.com/clienthub/clienthub/internal/middleware"
	"github.com/clienthub/clienthub/internal/service"
	"github.com/clienthub/clienthub/internal/validation"
)

// Router builds echo server with all routes wired
func Router(userSvc service.UserService, customerSvc service.CustomerService, authCfg config.AuthCfg) (*echo.Echo, error) {
	e := echo.New()

	v, err := validation.Default()
	if err != nil {
		return nil, err
	}
	e.Validator = v

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			if err := c.JSON(http.StatusBadRequest, pldErr); err == nil {
				return
			}
		}

		logrus.Errorf("error occurred on request processing - %v", err)
		e.DefaultHTTPErrorHandler(err, c)
	}

	// Extra functionality
	jwtValidator := auth.NewJwtValidator(authCfg.SigningMethod, authCfg.PublicKey)

	// Middleware
	authorizeMw := middleware.Authorize(jwtValidator)

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(userSvc)
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)

	// Swagger
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// API routes
	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth", authorizeMw)
	authAPI.GET("/user", authHandler.GetUser)
	authAPI.DELETE("/user", authHandler.DeleteUser)

	// customers
	customersAPI := api.Group("/customers", authorizeMw)
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.PUT("/:id", customerHandler.Put)
	customersAPI.PATCH("/:id", customerHandler.Patch)
	customersAPI.DELETE("/:id", customerHandler.DeleteByID)

	return e, nil
}
