package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"stagevault/internal/auth"
	"stagevault/internal/cache"
	"stagevault/internal/config"
	"stagevault/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	cacheClient *cache.Client,
	authHandler *handler.AuthHandler,
	navHandler *handler.NavHandler,
	hoursHandler *handler.HoursHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		status := map[string]interface{}{
			"status": "ok",
			"redis":  cacheClient.Healthy(c.Request().Context()),
		}
		return c.JSON(http.StatusOK, status)
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require JWT authentication with session claims)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/session", authHandler.Session)

	// Navigation routes
	secured.GET("/navigate/:page", navHandler.Navigate)
	secured.POST("/overlay/open", navHandler.OpenOverlay)
	secured.POST("/overlay/close", navHandler.CloseOverlay)

	// Hours routes
	secured.GET("/hours/team", hoursHandler.TeamHours)
	secured.GET("/hours/roster", hoursHandler.Roster)
	secured.GET("/hours/people/:person", hoursHandler.PersonHours)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
