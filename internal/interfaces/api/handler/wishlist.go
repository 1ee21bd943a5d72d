package handler

import (
	"net/http"

	"github.com/Rak-Code/swiftcart-backend/internal/application/dto"
	"github.com/Rak-Code/swiftcart-backend/internal/application/service"
	"github.com/Rak-Code/swiftcart-backend/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WishlistHandler handles wishlist API requests.
type WishlistHandler struct {
	wishlistSvc service.WishlistService
	log         logger.Logger
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlistSvc service.WishlistService, log logger.Logger) *WishlistHandler {
	return &WishlistHandler{wishlistSvc: wishlistSvc, log: log}
}

// Add handles POST /api/wishlist.
func (h *WishlistHandler) Add(c echo.Context) error {
	var req dto.AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.wishlistSvc.AddToWishlist(c.Request().Context(), req.UserID, req.ProductID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToWishlistItemResponse(item))
}

// Remove handles DELETE /api/wishlist/:userId/:productId.
func (h *WishlistHandler) Remove(c echo.Context) error {
	if err := h.wishlistSvc.RemoveFromWishlist(c.Request().Context(), c.Param("userId"), c.Param("productId")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /api/wishlist/:userId.
func (h *WishlistHandler) Get(c echo.Context) error {
	items, err := h.wishlistSvc.GetUserWishlist(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToWishlistItemResponseList(items))
}

// Clear handles DELETE /api/wishlist/:userId/clear.
func (h *WishlistHandler) Clear(c echo.Context) error {
	if err := h.wishlistSvc.ClearWishlist(c.Request().Context(), c.Param("userId")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
