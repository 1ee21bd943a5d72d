package handler

import (
	"net/http"

	"github.com/Rak-Code/swiftcart-backend/internal/application/dto"
	"github.com/Rak-Code/swiftcart-backend/internal/application/service"
	"github.com/Rak-Code/swiftcart-backend/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CartHandler handles cart API requests.
type CartHandler struct {
	cartSvc service.CartService
	log     logger.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartSvc service.CartService, log logger.Logger) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, log: log}
}

// Add handles POST /api/cart.
func (h *CartHandler) Add(c echo.Context) error {
	var req dto.AddCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.cartSvc.AddToCart(c.Request().Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToCartItemResponse(item))
}

// UpdateQuantity handles PUT /api/cart.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req dto.UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.cartSvc.UpdateQuantity(c.Request().Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCartItemResponse(item))
}

// Remove handles DELETE /api/cart/:userId/:productId.
func (h *CartHandler) Remove(c echo.Context) error {
	if err := h.cartSvc.RemoveFromCart(c.Request().Context(), c.Param("userId"), c.Param("productId")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /api/cart/:userId.
func (h *CartHandler) Get(c echo.Context) error {
	items, err := h.cartSvc.GetUserCart(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCartItemResponseList(items))
}

// Clear handles DELETE /api/cart/:userId/clear.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cartSvc.ClearCart(c.Request().Context(), c.Param("userId")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
