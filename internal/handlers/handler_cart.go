package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kbeautyshop/storefront_backend/internal/apperrors"
	portssvc "github.com/kbeautyshop/storefront_backend/internal/core/ports/services"
	"github.com/kbeautyshop/storefront_backend/internal/dto"
	"github.com/kbeautyshop/storefront_backend/internal/middleware"
)

// cartHandler handles HTTP requests for the cart.
type cartHandler struct {
	cartService portssvc.CartSvcFacade
}

func newCartHandler(cs portssvc.CartSvcFacade) *cartHandler {
	return &cartHandler{cartService: cs}
}

// RegisterCartRoutes registers routes related to the cart. The group must be
// behind CartIdentityMiddleware so every request has a resolved cart key.
func RegisterCartRoutes(rg *gin.RouterGroup, cartService portssvc.CartSvcFacade) {
	h := newCartHandler(cartService)

	cart := rg.Group("/cart")
	{
		cart.GET("", h.getCart)
		cart.DELETE("", h.clearCart)
		cart.POST("/items", h.addItem)
		cart.PATCH("/items/:productID", h.updateQuantity)
		cart.DELETE("/items/:productID", h.removeItem)
	}
}

// getCart godoc
// @Summary Get the current cart
// @Description Returns the cart's line items with USD totals and their display-currency rendering.
// @Tags cart
// @Produce json
// @Param lang query string false "Display language (ko, en, ja, zh)"
// @Success 200 {object} dto.CartResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart [get]
func (h *cartHandler) getCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cartKey, ok := middleware.RequireCartKey(c)
	if !ok {
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), cartKey)
	if err != nil {
		logger.Error("Failed to load cart", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart, displayCurrency(c), rates))
}

// addItem godoc
// @Summary Add a product to the cart
// @Description Adds a product, merging quantities when the product is already in the cart. Payloads without a canonical USD price are rejected and the cart is left unchanged.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.AddCartItemRequest true "Product to add"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart/items [post]
func (h *cartHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cartKey, ok := middleware.RequireCartKey(c)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), cartKey, req.ToAddItemInput())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected add-to-cart payload", slog.String("product_id", req.ProductID), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to add item to cart", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add item to cart"})
		return
	}

	logger.Info("Item added to cart", slog.String("product_id", req.ProductID), slog.Int64("item_count", cart.ItemCount()))
	c.JSON(http.StatusOK, dto.ToCartResponse(cart, displayCurrency(c), rates))
}

// updateQuantity godoc
// @Summary Update a line item's quantity
// @Description Sets the quantity for a cart line, clamped to a minimum of 1. Unknown product ids are a no-op.
// @Tags cart
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param quantity body dto.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart/items/{productID} [patch]
func (h *cartHandler) updateQuantity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cartKey, ok := middleware.RequireCartKey(c)
	if !ok {
		return
	}

	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateQuantity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), cartKey, c.Param("productID"), req.Quantity)
	if err != nil {
		logger.Error("Failed to update quantity", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update quantity"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart, displayCurrency(c), rates))
}

// removeItem godoc
// @Summary Remove a line item
// @Description Removes the line with the given product id; removing an absent id leaves the cart unchanged.
// @Tags cart
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.CartResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart/items/{productID} [delete]
func (h *cartHandler) removeItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cartKey, ok := middleware.RequireCartKey(c)
	if !ok {
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), cartKey, c.Param("productID"))
	if err != nil {
		logger.Error("Failed to remove item", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove item"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart, displayCurrency(c), rates))
}

// clearCart godoc
// @Summary Empty the cart
// @Description Removes every line item from the cart.
// @Tags cart
// @Produce json
// @Success 200 {object} dto.CartResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart [delete]
func (h *cartHandler) clearCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cartKey, ok := middleware.RequireCartKey(c)
	if !ok {
		return
	}

	cart, err := h.cartService.Clear(c.Request.Context(), cartKey)
	if err != nil {
		logger.Error("Failed to clear cart", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear cart"})
		return
	}

	logger.Info("Cart cleared")
	c.JSON(http.StatusOK, dto.ToCartResponse(cart, displayCurrency(c), rates))
}
