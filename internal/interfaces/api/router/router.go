package router

import (
	"fmt"
	"net/http"

	"github.com/Rak-Code/swiftcart-backend/internal/interfaces/api/handler"
	"github.com/Rak-Code/swiftcart-backend/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	ReminderHandler *handler.ReminderHandler
	Logger          logger.Logger
}

// requestValidator adapts go-playground/validator to echo's Validator interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.Validator = &requestValidator{validate: validator.New()}

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Cart
	e.POST("/api/cart", cfg.CartHandler.Add)
	e.PUT("/api/cart", cfg.CartHandler.UpdateQuantity)
	e.GET("/api/cart/:userId", cfg.CartHandler.Get)
	e.DELETE("/api/cart/:userId/clear", cfg.CartHandler.Clear)
	e.DELETE("/api/cart/:userId/:productId", cfg.CartHandler.Remove)

	// Wishlist
	e.POST("/api/wishlist", cfg.WishlistHandler.Add)
	e.GET("/api/wishlist/:userId", cfg.WishlistHandler.Get)
	e.DELETE("/api/wishlist/:userId/clear", cfg.WishlistHandler.Clear)
	e.DELETE("/api/wishlist/:userId/:productId", cfg.WishlistHandler.Remove)

	// Reminders
	e.DELETE("/api/reminders", cfg.ReminderHandler.Cancel)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
