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

// checkoutHandler handles order submission and retrieval.
type checkoutHandler struct {
	checkoutService portssvc.CheckoutSvcFacade
}

func newCheckoutHandler(cs portssvc.CheckoutSvcFacade) *checkoutHandler {
	return &checkoutHandler{checkoutService: cs}
}

// registerCheckoutRoutes registers checkout routes. The group must be behind
// CartIdentityMiddleware.
func registerCheckoutRoutes(rg *gin.RouterGroup, checkoutService portssvc.CheckoutSvcFacade) {
	h := newCheckoutHandler(checkoutService)

	checkout := rg.Group("/checkout")
	{
		checkout.POST("", h.submitOrder)
		checkout.GET("/orders/:orderID", h.getOrder)
	}
}

// submitOrder godoc
// @Summary Submit an order
// @Description Freezes the current cart into an order and clears the cart on success. An empty cart is rejected.
// @Tags checkout
// @Accept json
// @Produce json
// @Param order body dto.CheckoutRequest true "Order form"
// @Param lang query string false "Display language (ko, en, ja, zh)"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /checkout [post]
func (h *checkoutHandler) submitOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cartKey, ok := middleware.RequireCartKey(c)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid order form: " + err.Error()})
		return
	}

	order, err := h.checkoutService.SubmitOrder(c.Request.Context(), cartKey, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to submit order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit order"})
		return
	}

	logger.Info("Order submitted", slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order, displayCurrency(c), rates))
}

// getOrder godoc
// @Summary Get an order
// @Description Returns a submitted order for the checkout success page.
// @Tags checkout
// @Produce json
// @Param orderID path string true "Order ID"
// @Param lang query string false "Display language (ko, en, ja, zh)"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /checkout/orders/{orderID} [get]
func (h *checkoutHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	order, err := h.checkoutService.GetOrderByID(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
			return
		}
		logger.Error("Failed to get order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order, displayCurrency(c), rates))
}
